package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// CreateDocumentInput carries the data for a new document. TypeID must
// reference an existing document type at creation time.
type CreateDocumentInput struct {
	Title   string
	Content string
	TypeID  string
}

// UpdateDocumentInput carries document edits. Empty fields are left unchanged.
type UpdateDocumentInput struct {
	Title   string
	Content string
}

// DocumentService defines document use-cases. Mutations are owner-gated:
// only the document owner or an admin identity may update or delete.
type DocumentService interface {
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	Create(ctx context.Context, identity domain.Identity, in CreateDocumentInput) (*domain.Document, error)
	Update(ctx context.Context, identity domain.Identity, id string, in UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, identity domain.Identity, id string) error
	Search(ctx context.Context, query string) ([]domain.Document, error)
}
