package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/metrics"
	"github.com/docuvault/dms/internal/api/middleware"
	"github.com/docuvault/dms/internal/core/ports"
)

// UserHandler handles account routes: signup, login, logout and profile CRUD.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /api/v1/users/signup.
//
// @Summary      Create a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details; role is an existing role title"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Login handles POST /api/v1/users/login. The issued token is returned in
// the x-auth-token response header as well as the body.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.Response().Header().Set(middleware.HeaderAuthToken, token)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout handles POST /api/v1/users/logout. Tokens are only invalidated by
// expiry, so this is a stateless acknowledgement telling the client to
// discard its copy.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out, discard your token"})
}

// List handles GET /api/v1/users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     AuthToken
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/v1/users/:id (self or admin).
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     AuthToken
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/v1/users/:id (self or admin).
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     AuthToken
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Profile edits"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/v1/users/:id (self or admin).
//
// @Summary      Delete a user
// @Tags         users
// @Security     AuthToken
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
