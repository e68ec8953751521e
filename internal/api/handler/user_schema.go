package handler

import "github.com/docuvault/dms/internal/core/domain"

type signupRequest struct {
	Firstname string `json:"firstname" validate:"required,min=2,max=50"`
	Lastname  string `json:"lastname"  validate:"required,min=2,max=50"`
	Username  string `json:"username"  validate:"required,min=3,max=30"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=5"`
	Role      string `json:"role"      validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest carries profile edits; absent fields stay unchanged.
type updateUserRequest struct {
	Firstname string `json:"firstname" validate:"omitempty,min=2,max=50"`
	Lastname  string `json:"lastname"  validate:"omitempty,min=2,max=50"`
	Username  string `json:"username"  validate:"omitempty,min=3,max=30"`
	Password  string `json:"password"  validate:"omitempty,min=5"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
