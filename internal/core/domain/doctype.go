package domain

import "errors"

var ErrTypeNotFound = errors.New("document type not found")
var ErrDuplicateType = errors.New("document type title already exists")

// ErrUnknownType marks a document create referencing a type that does not
// exist. Distinct from ErrTypeNotFound so that a bad reference in a payload
// surfaces as a validation failure, not a missing-resource lookup.
var ErrUnknownType = errors.New("invalid document type")

// DocumentType categorises documents. Titles are a natural key.
type DocumentType struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
