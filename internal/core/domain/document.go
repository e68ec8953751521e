package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")
var ErrForbidden = errors.New("access forbidden")

// TypeRef is the document-type snapshot embedded in a document.
type TypeRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Document is the core aggregate. OwnerID references the creating user;
// the reference is validated at creation only, never afterwards.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"owner_id"`
	Type      TypeRef   `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanModify reports whether the given identity may mutate this document:
// the owner or any admin.
func (d *Document) CanModify(id Identity) bool {
	return id.IsAdmin || id.UserID == d.OwnerID
}
