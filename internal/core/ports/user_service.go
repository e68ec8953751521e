package ports

import (
	"context"

	"github.com/docuvault/dms/internal/core/domain"
)

// SignupInput carries all data needed to create a new account.
// Role is a role title and must resolve to an existing role.
type SignupInput struct {
	Firstname string
	Lastname  string
	Username  string
	Email     string
	Password  string
	Role      string
}

// UpdateUserInput carries profile edits. Empty fields are left unchanged.
type UpdateUserInput struct {
	Firstname string
	Lastname  string
	Username  string
	Password  string
}

// UserService defines account use-cases: signup, login and profile CRUD.
type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed auth token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
