package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// RoleService defines use-case operations over roles. All of them are
// admin-gated at the transport layer.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Create(ctx context.Context, title string) (*domain.Role, error)
	Update(ctx context.Context, id, title string) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
