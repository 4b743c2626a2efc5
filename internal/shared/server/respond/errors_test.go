package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"string-analyzer/internal/shared/errors"
)

func TestFromErrorMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", errors.InvalidArgumentf("bad %s", "input"), http.StatusBadRequest, "validation_error"},
		{"not found", errors.Mark(errors.New("missing"), errors.ErrNotFound), http.StatusNotFound, "not_found"},
		{"conflict", errors.Wrap(errors.Mark(errors.New("exists"), errors.ErrConflict), "insert"), http.StatusConflict, "conflict"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(resp)
			c.Request = httptest.NewRequest(http.MethodGet, "/strings", nil)

			FromError(c, tc.err)

			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Error.Code)
			}
		})
	}
}

func TestFromErrorReturnsHintsAsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/strings", nil)

	err := errors.WithHint(errors.InvalidArgumentf("unsupported query"), "try: palindromic strings")
	FromError(c, err)

	var body struct {
		Error struct {
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Error.Details) != 1 || body.Error.Details[0] != "try: palindromic strings" {
		t.Fatalf("unexpected details: %v", body.Error.Details)
	}
}
