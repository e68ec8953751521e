package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/core/ports"
)

// TypeHandler handles HTTP requests for document types. Reads require any
// authenticated identity; mutations are admin-gated by the router.
type TypeHandler struct {
	service ports.TypeService
}

func NewTypeHandler(service ports.TypeService) *TypeHandler {
	return &TypeHandler{service: service}
}

// List handles GET /api/v1/types.
//
// @Summary      List all document types
// @Tags         types
// @Produce      json
// @Security     AuthToken
// @Success      200  {array}   domain.DocumentType
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/types [get]
func (h *TypeHandler) List(c echo.Context) error {
	types, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}

// Get handles GET /api/v1/types/:id.
//
// @Summary      Get a document type by id
// @Tags         types
// @Produce      json
// @Security     AuthToken
// @Param        id   path      string  true  "Type id"
// @Success      200  {object}  domain.DocumentType
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/types/{id} [get]
func (h *TypeHandler) Get(c echo.Context) error {
	t, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Create handles POST /api/v1/types.
//
// @Summary      Create a document type
// @Tags         types
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        body  body      typeRequest  true  "Type title"
// @Success      200   {object}  domain.DocumentType
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/types [post]
func (h *TypeHandler) Create(c echo.Context) error {
	var req typeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Create(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Update handles PUT /api/v1/types/:id.
//
// @Summary      Update a document type title
// @Tags         types
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        id    path      string       true  "Type id"
// @Param        body  body      typeRequest  true  "New title"
// @Success      200   {object}  domain.DocumentType
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/types/{id} [put]
func (h *TypeHandler) Update(c echo.Context) error {
	var req typeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/v1/types/:id.
//
// @Summary      Delete a document type
// @Tags         types
// @Security     AuthToken
// @Param        id  path  string  true  "Type id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/types/{id} [delete]
func (h *TypeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
