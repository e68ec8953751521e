package domain

import "errors"

var ErrRoleNotFound = errors.New("role not found")
var ErrDuplicateRole = errors.New("role title already exists")

// Role is a user role. Titles are a natural key, unique across the
// collection and length-bounded at the transport layer.
type Role struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
