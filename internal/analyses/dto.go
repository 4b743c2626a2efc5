package analyses

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"string-analyzer/internal/analyzer"
	"string-analyzer/internal/query"
	"string-analyzer/internal/records"
	"string-analyzer/internal/shared/errors"
)

const maxBodySize = 1 << 20 // 1MB

var (
	ErrInvalidBody    = errors.Mark(errors.New("invalid request body"), errors.ErrInvalidArgument)
	ErrMissingValue   = errors.Mark(errors.New("invalid request body or missing 'value' field"), errors.ErrInvalidArgument)
	ErrValueNotString = errors.Mark(errors.New("invalid data type for 'value' (must be string)"), errors.ErrInvalidArgument)
	ErrInvalidParam   = errors.Mark(errors.New("invalid query parameter values or types"), errors.ErrInvalidArgument)
)

// RecordResponse is the outward-facing representation of a record.
type RecordResponse struct {
	ID         string              `json:"id"`
	Value      string              `json:"value"`
	Properties analyzer.Properties `json:"properties"`
	CreatedAt  string              `json:"created_at"`
}

// ListResponse is returned by structured listing.
type ListResponse struct {
	Data           []RecordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied query.Filter     `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language query was understood.
type InterpretedQuery struct {
	Original      string       `json:"original"`
	ParsedFilters query.Filter `json:"parsed_filters"`
}

// NaturalListResponse is returned by natural-language listing.
type NaturalListResponse struct {
	Data             []RecordResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

func toResponse(rec records.Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		Value:      rec.Value,
		Properties: rec.Properties,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toResponses(recs []records.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	return out
}

// decodeValue extracts the text to analyze from a JSON object body. The text
// is read from "value", or from "text" when "value" is absent.
func decodeValue(body io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodySize+1))
	if err != nil {
		return "", errors.Wrap(ErrInvalidBody, err.Error())
	}
	if len(raw) > maxBodySize {
		return "", errors.Wrap(ErrInvalidBody, "body too large")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return "", ErrInvalidBody
	}

	field, ok := fields["value"]
	if !ok {
		field, ok = fields["text"]
	}
	if !ok || bytes.Equal(bytes.TrimSpace(field), []byte("null")) {
		return "", ErrMissingValue
	}

	var text string
	if err := json.Unmarshal(field, &text); err != nil {
		return "", ErrValueNotString
	}
	return text, nil
}

// parseFilter builds a structured filter from query parameters. Absent or
// empty parameters impose no constraint.
func parseFilter(get func(string) string) (query.Filter, error) {
	var f query.Filter

	if raw := strings.TrimSpace(get("is_palindrome")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, errors.Wrapf(ErrInvalidParam, "is_palindrome=%q", raw)
		}
		f.IsPalindrome = query.Bool(v)
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"min_length", &f.MinLength},
		{"max_length", &f.MaxLength},
		{"word_count", &f.WordCount},
	}
	for _, p := range ints {
		raw := strings.TrimSpace(get(p.name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return f, errors.Wrapf(ErrInvalidParam, "%s=%q", p.name, raw)
		}
		*p.dst = query.Int(v)
	}

	f.ContainsCharacter = get("contains_character")
	return f, f.Validate()
}
