package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/middleware"
	"github.com/docuvault/dms/internal/core/domain"
	"github.com/docuvault/dms/internal/core/ports"
)

type stubDocumentService struct {
	listFn   func(ctx context.Context) ([]domain.Document, error)
	getFn    func(ctx context.Context, id string) (*domain.Document, error)
	createFn func(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error)
	updateFn func(ctx context.Context, identity domain.Identity, id string, in ports.UpdateDocumentInput) (*domain.Document, error)
	deleteFn func(ctx context.Context, identity domain.Identity, id string) error
	searchFn func(ctx context.Context, query string) ([]domain.Document, error)
}

func (s *stubDocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.listFn(ctx)
}

func (s *stubDocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.getFn(ctx, id)
}

func (s *stubDocumentService) Create(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error) {
	return s.createFn(ctx, identity, in)
}

func (s *stubDocumentService) Update(ctx context.Context, identity domain.Identity, id string, in ports.UpdateDocumentInput) (*domain.Document, error) {
	return s.updateFn(ctx, identity, id, in)
}

func (s *stubDocumentService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	return s.deleteFn(ctx, identity, id)
}

func (s *stubDocumentService) Search(ctx context.Context, query string) ([]domain.Document, error) {
	return s.searchFn(ctx, query)
}

func TestDocumentHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		createFn: func(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error) {
			if identity.UserID != "user-1" {
				t.Fatalf("unexpected identity: %+v", identity)
			}
			if in.Title != "Q3 invoice" || in.TypeID != "type-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Document{
				ID:      "doc-1",
				Title:   in.Title,
				Content: in.Content,
				OwnerID: identity.UserID,
				Type:    domain.TypeRef{ID: in.TypeID, Title: "invoice"},
			}, nil
		},
	}
	h := NewDocumentHandler(stub)

	c, rec := postJSON(e, "/api/v1/documents",
		`{"title":"Q3 invoice","content":"totals for the quarter","type_id":"type-1"}`)
	c.Set(middleware.ContextKeyIdentity, domain.Identity{UserID: "user-1"})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDocumentHandler_Create_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		createFn: func(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDocumentHandler(stub)

	c, _ := postJSON(e, "/api/v1/documents",
		`{"title":"Q3 invoice","content":"totals","type_id":"type-1"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestDocumentHandler_Create_MissingTypeID(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		createFn: func(ctx context.Context, identity domain.Identity, in ports.CreateDocumentInput) (*domain.Document, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDocumentHandler(stub)

	c, _ := postJSON(e, "/api/v1/documents", `{"title":"Q3 invoice","content":"totals"}`)
	c.Set(middleware.ContextKeyIdentity, domain.Identity{UserID: "user-1"})

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestDocumentHandler_Update_ForwardsIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		updateFn: func(ctx context.Context, identity domain.Identity, id string, in ports.UpdateDocumentInput) (*domain.Document, error) {
			if !identity.IsAdmin {
				t.Fatalf("admin flag lost: %+v", identity)
			}
			if id != "doc-1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return &domain.Document{ID: id, Title: in.Title}, nil
		},
	}
	h := NewDocumentHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/documents/doc-1", strings.NewReader(`{"title":"final"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")
	c.Set(middleware.ContextKeyIdentity, domain.Identity{UserID: "user-9", IsAdmin: true})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDocumentHandler_Delete_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		deleteFn: func(ctx context.Context, identity domain.Identity, id string) error {
			return domain.ErrForbidden
		},
	}
	h := NewDocumentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/doc-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")
	c.Set(middleware.ContextKeyIdentity, domain.Identity{UserID: "user-2"})

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDocumentHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubDocumentService{
		deleteFn: func(ctx context.Context, identity domain.Identity, id string) error {
			return nil
		},
	}
	h := NewDocumentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/doc-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")
	c.Set(middleware.ContextKeyIdentity, domain.Identity{UserID: "user-1"})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
