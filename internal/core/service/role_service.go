package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

// RoleService implements role CRUD. Title bounds are enforced at the
// transport layer; uniqueness of the natural key is enforced here (and
// again by the unique index on the collection).
type RoleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, title string) (*domain.Role, error) {
	if err := s.checkTitleFree(ctx, title, ""); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Role{Title: title})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("role_id", created.ID).Str("title", title).Msg("role created")
	return created, nil
}

func (s *RoleService) Update(ctx context.Context, id, title string) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkTitleFree(ctx, title, role.ID); err != nil {
		return nil, err
	}

	role.Title = title
	return s.repo.Update(ctx, role)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("role_id", id).Msg("role deleted")
	return nil
}

// checkTitleFree reports ErrDuplicateRole when the title is already taken
// by a role other than selfID. Comparison is case-sensitive.
func (s *RoleService) checkTitleFree(ctx context.Context, title, selfID string) error {
	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrDuplicateRole
	}
	return nil
}
