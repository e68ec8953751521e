package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/metrics"
	"github.com/docuvault/dms/internal/core/ports"
)

// DocumentHandler handles document CRUD. Any authenticated user may read
// and create; the service enforces the owner-or-admin gate on mutation.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List handles GET /api/v1/documents.
//
// @Summary      List all documents
// @Tags         documents
// @Produce      json
// @Security     AuthToken
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Get handles GET /api/v1/documents/:id.
//
// @Summary      Get a document by id
// @Tags         documents
// @Produce      json
// @Security     AuthToken
// @Param        id   path      string  true  "Document id"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/documents/{id} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Create handles POST /api/v1/documents. The calling identity becomes the
// document owner.
//
// @Summary      Create a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        body  body      createDocumentRequest  true  "Document details"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.service.Create(c.Request().Context(), identity, ports.CreateDocumentInput{
		Title:   req.Title,
		Content: req.Content,
		TypeID:  req.TypeID,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsCreatedTotal.WithLabelValues(doc.Type.Title).Inc()
	return c.JSON(http.StatusOK, doc)
}

// Update handles PUT /api/v1/documents/:id (owner or admin).
//
// @Summary      Update a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        id    path      string                 true  "Document id"
// @Param        body  body      updateDocumentRequest  true  "Document edits"
// @Success      200   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/documents/{id} [put]
func (h *DocumentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.UpdateDocumentInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/v1/documents/:id (owner or admin).
//
// @Summary      Delete a document
// @Tags         documents
// @Security     AuthToken
// @Param        id  path  string  true  "Document id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
