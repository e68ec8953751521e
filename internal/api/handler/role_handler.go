package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/core/ports"
)

// RoleHandler handles HTTP requests for role management. Every route is
// admin-gated by the router.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /api/v1/roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Security     AuthToken
// @Success      200  {array}   domain.Role
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get handles GET /api/v1/roles/:id.
//
// @Summary      Get a role by id
// @Tags         roles
// @Produce      json
// @Security     AuthToken
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create handles POST /api/v1/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        body  body      roleRequest  true  "Role title"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Update handles PUT /api/v1/roles/:id.
//
// @Summary      Update a role title
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        id    path      string       true  "Role id"
// @Param        body  body      roleRequest  true  "New title"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete handles DELETE /api/v1/roles/:id.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     AuthToken
// @Param        id  path  string  true  "Role id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
