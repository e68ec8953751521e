package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

type stubDocRepo struct {
	docs     map[string]*domain.Document
	order    []string
	next     int
	searches int
}

func newStubDocRepo() *stubDocRepo {
	return &stubDocRepo{docs: make(map[string]*domain.Document)}
}

func (r *stubDocRepo) List(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.docs[id])
	}
	return out, nil
}

func (r *stubDocRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *doc
	return &clone, nil
}

func (r *stubDocRepo) Create(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	r.next++
	clone := *doc
	clone.ID = "doc-" + strconv.Itoa(r.next)
	r.docs[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubDocRepo) Update(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	if _, ok := r.docs[doc.ID]; !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *doc
	r.docs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDocRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(r.docs, id)
	for i, did := range r.order {
		if did == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubDocRepo) Search(_ context.Context, query string) ([]domain.Document, error) {
	r.searches++
	q := strings.ToLower(query)
	var out []domain.Document
	for _, id := range r.order {
		doc := r.docs[id]
		if strings.Contains(strings.ToLower(doc.Title), q) || strings.Contains(strings.ToLower(doc.Content), q) {
			out = append(out, *doc)
		}
	}
	return out, nil
}

type stubSearchCache struct {
	entries map[string][]domain.Document
	getErr  error
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{entries: make(map[string][]domain.Document)}
}

func (c *stubSearchCache) Get(_ context.Context, query string) ([]domain.Document, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	docs, ok := c.entries[query]
	return docs, ok, nil
}

func (c *stubSearchCache) Set(_ context.Context, query string, docs []domain.Document) error {
	c.entries[query] = docs
	return nil
}

func newDocService(docs *stubDocRepo, types *stubTypeRepo, cache SearchCache) *DocumentService {
	return NewDocumentService(docs, types, cache, zerolog.Nop())
}

func createDoc(t *testing.T, svc *DocumentService, owner domain.Identity, typeID, title string) *domain.Document {
	t.Helper()
	doc, err := svc.Create(context.Background(), owner, ports.CreateDocumentInput{
		Title:   title,
		Content: "body of " + title,
		TypeID:  typeID,
	})
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return doc
}

func TestDocumentService_Create(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	svc := newDocService(newStubDocRepo(), types, nil)

	owner := domain.Identity{UserID: "user-1"}
	doc := createDoc(t, svc, owner, dt.ID, "Q3 invoice")

	if doc.OwnerID != "user-1" {
		t.Fatalf("owner not set from identity: %q", doc.OwnerID)
	}
	if doc.Type.ID != dt.ID || doc.Type.Title != "invoice" {
		t.Fatalf("unexpected type snapshot: %+v", doc.Type)
	}
}

func TestDocumentService_Create_UnknownType(t *testing.T) {
	svc := newDocService(newStubDocRepo(), newStubTypeRepo(), nil)

	_, err := svc.Create(context.Background(), domain.Identity{UserID: "user-1"}, ports.CreateDocumentInput{
		Title:   "orphan",
		Content: "no type",
		TypeID:  "nosuch",
	})
	if err != domain.ErrUnknownType {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestDocumentService_Update_Owner(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	svc := newDocService(newStubDocRepo(), types, nil)

	owner := domain.Identity{UserID: "user-1"}
	doc := createDoc(t, svc, owner, dt.ID, "draft")

	updated, err := svc.Update(context.Background(), owner, doc.ID, ports.UpdateDocumentInput{Title: "final"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "final" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Content != doc.Content {
		t.Fatalf("content should be unchanged")
	}
}

func TestDocumentService_Update_NotOwner(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	svc := newDocService(newStubDocRepo(), types, nil)

	doc := createDoc(t, svc, domain.Identity{UserID: "user-1"}, dt.ID, "draft")

	_, err := svc.Update(context.Background(), domain.Identity{UserID: "user-2"}, doc.ID, ports.UpdateDocumentInput{Title: "hijack"})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDocumentService_Update_AdminOverride(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	svc := newDocService(newStubDocRepo(), types, nil)

	doc := createDoc(t, svc, domain.Identity{UserID: "user-1"}, dt.ID, "draft")

	admin := domain.Identity{UserID: "user-9", IsAdmin: true}
	if _, err := svc.Update(context.Background(), admin, doc.ID, ports.UpdateDocumentInput{Title: "moderated"}); err != nil {
		t.Fatalf("admin update should succeed, got %v", err)
	}
}

func TestDocumentService_Delete_NotOwner(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	svc := newDocService(newStubDocRepo(), types, nil)

	doc := createDoc(t, svc, domain.Identity{UserID: "user-1"}, dt.ID, "draft")

	if err := svc.Delete(context.Background(), domain.Identity{UserID: "user-2"}, doc.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), doc.ID); err != nil {
		t.Fatalf("document should still exist: %v", err)
	}
}

func TestDocumentService_Delete_NotFound(t *testing.T) {
	svc := newDocService(newStubDocRepo(), newStubTypeRepo(), nil)

	if err := svc.Delete(context.Background(), domain.Identity{UserID: "user-1"}, "missing"); err != domain.ErrDocumentNotFound {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentService_Search(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	docs := newStubDocRepo()
	svc := newDocService(docs, types, nil)

	owner := domain.Identity{UserID: "user-1"}
	createDoc(t, svc, owner, dt.ID, "quarterly report")
	createDoc(t, svc, owner, dt.ID, "meeting notes")

	found, err := svc.Search(context.Background(), "  report ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Title != "quarterly report" {
		t.Fatalf("unexpected results: %+v", found)
	}
}

func TestDocumentService_Search_CacheHit(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	docs := newStubDocRepo()
	cache := newStubSearchCache()
	svc := newDocService(docs, types, cache)

	owner := domain.Identity{UserID: "user-1"}
	createDoc(t, svc, owner, dt.ID, "quarterly report")

	if _, err := svc.Search(context.Background(), "report"); err != nil {
		t.Fatalf("first search: %v", err)
	}
	if _, err := svc.Search(context.Background(), "report"); err != nil {
		t.Fatalf("second search: %v", err)
	}
	if docs.searches != 1 {
		t.Fatalf("expected one repository search, got %d", docs.searches)
	}
}

func TestDocumentService_Search_CacheErrorFallsThrough(t *testing.T) {
	types := newStubTypeRepo()
	dt := types.seed("invoice")
	docs := newStubDocRepo()
	cache := newStubSearchCache()
	cache.getErr = errors.New("cache down")
	svc := newDocService(docs, types, cache)

	owner := domain.Identity{UserID: "user-1"}
	createDoc(t, svc, owner, dt.ID, "quarterly report")

	found, err := svc.Search(context.Background(), "report")
	if err != nil {
		t.Fatalf("search should survive cache failure: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("unexpected results: %+v", found)
	}
	if docs.searches != 1 {
		t.Fatalf("repository should have been queried, got %d searches", docs.searches)
	}
}
