package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// DocumentRepository defines persistence for documents.
type DocumentRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
	// Search performs a case-insensitive match of query against document
	// title and content, ordered by creation.
	Search(ctx context.Context, query string) ([]domain.Document, error)
}
