package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/metrics"
	"github.com/docuvault/dms/internal/core/ports"
)

// SearchHandler serves free-text search over documents.
type SearchHandler struct {
	service ports.DocumentService
}

func NewSearchHandler(service ports.DocumentService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles GET /api/v1/search?q=. Matching is case-insensitive over
// title and content; results come back in creation order.
//
// @Summary      Search documents
// @Tags         search
// @Produce      json
// @Security     AuthToken
// @Param        q    query     string  true  "Free-text query"
// @Success      200  {array}   domain.Document
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	docs, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	metrics.SearchesTotal.Inc()
	return c.JSON(http.StatusOK, docs)
}
