package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/api/middleware"
	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

type stubClientService struct {
	ports.ClientService
	clients   []domain.Client
	appended  []ports.NewMediaInput
	removedAt int
}

func (s *stubClientService) ListClients(context.Context) ([]domain.Client, error) {
	return s.clients, nil
}

func (s *stubClientService) AddClient(_ context.Context, in ports.NewClientInput) (*domain.Client, error) {
	c := domain.Client{ID: "new", Name: in.Name, Email: in.Email, Password: in.Password}
	s.clients = append(s.clients, c)
	return &c, nil
}

func (s *stubClientService) AppendMedia(_ context.Context, clientID string, items []ports.NewMediaInput) ([]domain.MediaItem, error) {
	if clientID != "client1" {
		return nil, domain.ErrClientNotFound
	}
	s.appended = items
	out := make([]domain.MediaItem, len(items))
	for i, in := range items {
		out[i] = domain.MediaItem{ID: "m" + string(rune('1'+i)), Type: in.Type, URL: in.URL}
	}
	return out, nil
}

func (s *stubClientService) RemoveMediaAt(_ context.Context, _ string, index int) error {
	s.removedAt = index
	return nil
}

func (s *stubClientService) Gallery(_ context.Context, clientID string) ([]domain.MediaItem, error) {
	if clientID != "client1" {
		return nil, domain.ErrClientNotFound
	}
	return []domain.MediaItem{{ID: "m1", Type: domain.MediaImage, URL: "u"}}, nil
}

func TestClientHandler_ListOmitsPasswords(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{clients: []domain.Client{{ID: "client1", Name: "John Doe", Email: "john.doe@email.com", Password: "password123"}}}
	handler := NewClientHandler(stub)

	rec := httptest.NewRecorder()
	if err := handler.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/clients", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password: %s", rec.Body.String())
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["gallery"] == nil {
		t.Fatalf("expected one client with an empty gallery array, got %+v", resp)
	}
}

func TestClientHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"pw","sessionType":"Portrait"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/clients", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(stub.clients) != 1 || stub.clients[0].Password != "pw" {
		t.Fatalf("service not called with input: %+v", stub.clients)
	}
}

func TestClientHandler_AppendMedia(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"items":[{"type":"image","url":"a"},{"type":"video","url":"b"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/clients/client1/media", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("client1")

	if err := handler.AppendMedia(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(stub.appended) != 2 || stub.appended[1].Type != domain.MediaVideo {
		t.Fatalf("unexpected items passed to service: %+v", stub.appended)
	}
}

func TestClientHandler_RemoveMediaAt_BadIndex(t *testing.T) {
	e := newTestEcho()
	handler := NewClientHandler(&stubClientService{})

	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id", "index")
	c.SetParamValues("client1", "first")

	if err := handler.RemoveMediaAt(c); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestGalleryHandler(t *testing.T) {
	e := newTestEcho()
	handler := NewGalleryHandler(&stubClientService{})

	for _, tt := range []struct {
		id   string
		want int
	}{{"client1", 1}, {"remote-only", 0}} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/gallery", nil), rec)
		c.Set(middleware.ContextKeyPrincipal, &domain.Principal{Kind: domain.KindClient, ID: tt.id})

		if err := handler.Get(c); err != nil {
			t.Fatalf("%s: handler error: %v", tt.id, err)
		}
		var resp struct {
			Items []domain.MediaItem `json:"items"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(resp.Items) != tt.want || resp.Items == nil {
			t.Fatalf("%s: got %d items, want %d", tt.id, len(resp.Items), tt.want)
		}
	}
}

func TestClientHandler_Create_RejectsInvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"name":"Ann","email":"not-an-email","password":""}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/clients", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	err := handler.Create(e.NewContext(req, httptest.NewRecorder()))
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", err)
	}
	if len(stub.clients) != 0 {
		t.Fatalf("service must not be called on invalid input")
	}
}

func TestClientHandler_AppendMedia_RejectsEmptyBatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{}
	handler := NewClientHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/clients/client1/media", strings.NewReader(`{"items":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("client1")

	if err := handler.AppendMedia(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.appended != nil {
		t.Fatalf("service must not be called on an empty batch")
	}
}

type stubConfirmer struct{ tokens []string }

func (s *stubConfirmer) Confirm(_ context.Context, token string) error {
	s.tokens = append(s.tokens, token)
	return nil
}

func TestConfirmationHandler_RequiresToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubConfirmer{}
	handler := NewConfirmationHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/confirmations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if err := handler.Confirm(e.NewContext(req, httptest.NewRecorder())); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/confirmations", strings.NewReader(`{"token":"abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler.Confirm(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || len(stub.tokens) != 1 || stub.tokens[0] != "abc" {
		t.Fatalf("confirm not forwarded: %d %v", rec.Code, stub.tokens)
	}
}
