package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// TypeService defines use-case operations over document types.
type TypeService interface {
	List(ctx context.Context) ([]domain.DocumentType, error)
	Get(ctx context.Context, id string) (*domain.DocumentType, error)
	Create(ctx context.Context, title string) (*domain.DocumentType, error)
	Update(ctx context.Context, id, title string) (*domain.DocumentType, error)
	Delete(ctx context.Context, id string) error
}
