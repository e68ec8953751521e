package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// TypeRepository defines persistence for document types.
type TypeRepository interface {
	List(ctx context.Context) ([]domain.DocumentType, error)
	FindByID(ctx context.Context, id string) (*domain.DocumentType, error)
	FindByTitle(ctx context.Context, title string) (*domain.DocumentType, error)
	Create(ctx context.Context, t *domain.DocumentType) (*domain.DocumentType, error)
	Update(ctx context.Context, t *domain.DocumentType) (*domain.DocumentType, error)
	Delete(ctx context.Context, id string) error
}
