package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

// SearchCache abstracts the TTL'd search-result cache (Redis). A nil cache
// disables caching without changing search behaviour.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]domain.Document, bool, error)
	Set(ctx context.Context, query string, docs []domain.Document) error
}

// DocumentService implements document CRUD with owner-gated mutation and
// free-text search.
type DocumentService struct {
	docs  ports.DocumentRepository
	types ports.TypeRepository
	cache SearchCache
	log   zerolog.Logger
}

func NewDocumentService(docs ports.DocumentRepository, types ports.TypeRepository, cache SearchCache, log zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, types: types, cache: cache, log: log}
}

func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docs.List(ctx)
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docs.FindByID(ctx, id)
}

// Create persists a new document owned by the calling identity. The type
// reference must exist now; it is not re-checked afterwards.
func (s *DocumentService) Create(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error) {
	t, err := s.types.FindByID(ctx, in.TypeID)
	if err != nil {
		if errors.Is(err, domain.ErrTypeNotFound) {
			return nil, domain.ErrUnknownType
		}
		return nil, err
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		Title:     in.Title,
		Content:   in.Content,
		OwnerID:   identity.UserID,
		Type:      domain.TypeRef{ID: t.ID, Title: t.Title},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("document_id", created.ID).Str("owner_id", identity.UserID).Msg("document created")
	return created, nil
}

// Update applies edits after the owner-gate: only the owner or an admin may
// mutate a document.
func (s *DocumentService) Update(ctx context.Context, identity domain.Identity, id string, in ports.UpdateDocumentInput) (*domain.Document, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.CanModify(identity) {
		return nil, domain.ErrForbidden
	}

	if in.Title != "" {
		doc.Title = in.Title
	}
	if in.Content != "" {
		doc.Content = in.Content
	}
	doc.UpdatedAt = time.Now().UTC()

	return s.docs.Update(ctx, doc)
}

func (s *DocumentService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !doc.CanModify(identity) {
		return domain.ErrForbidden
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("document_id", id).Str("requested_by", identity.UserID).Msg("document deleted")
	return nil
}

// Search matches query case-insensitively against title and content.
// Results come back in creation order. Cache failures are logged and
// ignored; the repository stays the source of truth.
func (s *DocumentService) Search(ctx context.Context, query string) ([]domain.Document, error) {
	query = strings.TrimSpace(query)

	if s.cache != nil {
		docs, hit, err := s.cache.Get(ctx, query)
		if err != nil {
			s.log.Warn().Err(err).Msg("search cache read failed")
		} else if hit {
			return docs, nil
		}
	}

	docs, err := s.docs.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, docs); err != nil {
			s.log.Warn().Err(err).Msg("search cache write failed")
		}
	}

	return docs, nil
}
