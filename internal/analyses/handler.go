package analyses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"string-analyzer/internal/shared/errors"
	"string-analyzer/internal/shared/server/middleware"
	"string-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
//
// Routes that take :value address a record by its raw text; routes under
// /strings/sha256/ address it by its SHA-256 identifier.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches string routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/strings", h.create)
	rg.GET("/strings", h.list)
	rg.GET("/strings/filter-by-natural-language", h.listNatural)
	rg.GET("/strings/sha256/:id", h.getByID)
	rg.DELETE("/strings/sha256/:id", h.deleteByID)
	rg.GET("/strings/:value", h.getByText)
	rg.DELETE("/strings/:value", h.deleteByText)
}

func (h *Handler) create(c *gin.Context) {
	text, err := decodeValue(c.Request.Body)
	if err != nil {
		if errors.Is(err, ErrValueNotString) {
			respond.Error(c, http.StatusUnprocessableEntity, "unprocessable_entity", ErrValueNotString.Error(), nil)
			return
		}
		respond.FromError(c, err)
		return
	}

	rec, err := h.Svc.Analyze(c.Request.Context(), text)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, rec.ID)

	respond.Created(c, toResponse(rec))
}

func (h *Handler) getByText(c *gin.Context) {
	rec, err := h.Svc.GetByText(c.Request.Context(), c.Param("value"))
	if err != nil {
		respond.FromError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, rec.ID)
	respond.OK(c, toResponse(rec))
}

func (h *Handler) getByID(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.FromError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, rec.ID)
	respond.OK(c, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	f, err := parseFilter(c.Query)
	if err != nil {
		respond.FromError(c, err)
		return
	}

	recs, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		respond.FromError(c, err)
		return
	}

	respond.OK(c, ListResponse{
		Data:           toResponses(recs),
		Count:          len(recs),
		FiltersApplied: f,
	})
}

func (h *Handler) listNatural(c *gin.Context) {
	q := c.Query("query")

	result, err := h.Svc.ListNatural(c.Request.Context(), q)
	if err != nil {
		respond.FromError(c, err)
		return
	}

	respond.OK(c, NaturalListResponse{
		Data:  toResponses(result.Records),
		Count: len(result.Records),
		InterpretedQuery: InterpretedQuery{
			Original:      q,
			ParsedFilters: result.Filter,
		},
	})
}

func (h *Handler) deleteByText(c *gin.Context) {
	id, err := h.Svc.DeleteByText(c.Request.Context(), c.Param("value"))
	if err != nil {
		respond.FromError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, id)
	respond.NoContent(c)
}

func (h *Handler) deleteByID(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.FromError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, id)
	respond.NoContent(c)
}
