package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

// UserService implements signup, login and profile management.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens *TokenManager
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, tokens *TokenManager, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, tokens: tokens, log: log}
}

// Signup creates a new account after uniqueness and role-existence checks.
// The role is referenced by title and embedded as a snapshot; the password
// is hashed before it ever reaches the repository.
func (s *UserService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if existing, err := s.users.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role, err := s.roles.FindByTitle(ctx, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrUnknownRole
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleRef{ID: role.ID, Title: role.Title},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", role.Title).Msg("user signed up")
	return created, nil
}

// Login verifies the password hash and issues an auth token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, IsAdmin: user.IsAdmin()})
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Bool("is_admin", user.IsAdmin()).Msg("user logged in")
	return token, user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies profile edits. Only non-empty fields change; a new
// password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Firstname != "" {
		user.Firstname = in.Firstname
	}
	if in.Lastname != "" {
		user.Lastname = in.Lastname
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
