package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

// TypeService implements document-type CRUD, mirroring RoleService.
type TypeService struct {
	repo ports.TypeRepository
	log  zerolog.Logger
}

func NewTypeService(repo ports.TypeRepository, log zerolog.Logger) *TypeService {
	return &TypeService{repo: repo, log: log}
}

func (s *TypeService) List(ctx context.Context) ([]domain.DocumentType, error) {
	return s.repo.List(ctx)
}

func (s *TypeService) Get(ctx context.Context, id string) (*domain.DocumentType, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TypeService) Create(ctx context.Context, title string) (*domain.DocumentType, error) {
	if err := s.checkTitleFree(ctx, title, ""); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.DocumentType{Title: title})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("type_id", created.ID).Str("title", title).Msg("document type created")
	return created, nil
}

func (s *TypeService) Update(ctx context.Context, id, title string) (*domain.DocumentType, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkTitleFree(ctx, title, t.ID); err != nil {
		return nil, err
	}

	t.Title = title
	return s.repo.Update(ctx, t)
}

func (s *TypeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("type_id", id).Msg("document type deleted")
	return nil
}

func (s *TypeService) checkTitleFree(ctx context.Context, title, selfID string) error {
	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrTypeNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.ErrDuplicateType
	}
	return nil
}
