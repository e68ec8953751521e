package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// RoleRepository defines persistence for user roles.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByTitle(ctx context.Context, title string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
