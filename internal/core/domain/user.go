package domain

import (
	"errors"
	"time"
)

// AdminRole is the sentinel role title that grants administrative rights.
const AdminRole = "admin"

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUnknownRole = errors.New("unknown role")

// RoleRef is the role snapshot embedded in a user at signup time.
// A later role rename does not propagate to existing users.
type RoleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// User models an account holder in the system.
type User struct {
	ID           string    `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         RoleRef   `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin derives the admin flag from the embedded role snapshot.
func (u *User) IsAdmin() bool {
	return u.Role.Title == AdminRole
}
