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

	"github.com/labos-hq/labos-backend/internal/core/domain"
	"github.com/labos-hq/labos-backend/internal/core/ports"
)

type stubWorkUnitService struct {
	createFn       func(ctx context.Context, caller domain.Caller, input ports.CreateWorkUnitInput) (*domain.WorkUnit, error)
	listFn         func(ctx context.Context) ([]domain.WorkUnit, error)
	updateStatusFn func(ctx context.Context, caller domain.Caller, id int64, status string) error
}

func (s *stubWorkUnitService) Create(ctx context.Context, caller domain.Caller, input ports.CreateWorkUnitInput) (*domain.WorkUnit, error) {
	return s.createFn(ctx, caller, input)
}

func (s *stubWorkUnitService) List(ctx context.Context) ([]domain.WorkUnit, error) {
	return s.listFn(ctx)
}

func (s *stubWorkUnitService) UpdateStatus(ctx context.Context, caller domain.Caller, id int64, status string) error {
	return s.updateStatusFn(ctx, caller, id, status)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, username, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("username", username)
	c.Set("role", role)
	return c
}

func TestWorkUnitHandler_Create_IgnoresSuppliedStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubWorkUnitService{
		createFn: func(ctx context.Context, caller domain.Caller, input ports.CreateWorkUnitInput) (*domain.WorkUnit, error) {
			return &domain.WorkUnit{
				ID:        1,
				ProjectID: input.ProjectID,
				Title:     input.Title,
				Owner:     input.Owner,
				Status:    domain.StatusIdea,
			}, nil
		},
	}
	handler := NewWorkUnitHandler(stub)

	// A caller-supplied status field is dropped at the wire: it has no
	// place to bind to.
	body := strings.NewReader(`{"project_id":1,"title":"Build rig","owner":"builder1","status":"done"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "aman", domain.RoleAdmin)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != domain.StatusIdea {
		t.Fatalf("expected status %q, got %v", domain.StatusIdea, resp["status"])
	}
}

func TestWorkUnitHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubWorkUnitService{
		createFn: func(ctx context.Context, caller domain.Caller, input ports.CreateWorkUnitInput) (*domain.WorkUnit, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewWorkUnitHandler(stub)

	body := strings.NewReader(`{"title":"Build rig"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "aman", domain.RoleAdmin)

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestWorkUnitHandler_Create_NoClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewWorkUnitHandler(&stubWorkUnitService{})

	body := strings.NewReader(`{"project_id":1,"title":"Build rig","owner":"builder1"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestWorkUnitHandler_UpdateStatus_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubWorkUnitService{
		updateStatusFn: func(ctx context.Context, caller domain.Caller, id int64, status string) error {
			if caller.Username != "builder1" || id != 7 || status != "in_progress" {
				t.Fatalf("unexpected args: %+v %d %s", caller, id, status)
			}
			return nil
		},
	}
	handler := NewWorkUnitHandler(stub)

	body := strings.NewReader(`{"status":"in_progress"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units/7/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "builder1", domain.RoleBuilder)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success true, got %v", resp)
	}
}

func TestWorkUnitHandler_UpdateStatus_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubWorkUnitService{
		updateStatusFn: func(ctx context.Context, caller domain.Caller, id int64, status string) error {
			return domain.ErrForbidden
		},
	}
	handler := NewWorkUnitHandler(stub)

	body := strings.NewReader(`{"status":"done"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units/7/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "builder2", domain.RoleBuilder)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.UpdateStatus(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestWorkUnitHandler_UpdateStatus_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewWorkUnitHandler(&stubWorkUnitService{})

	body := strings.NewReader(`{"status":"done"}`)
	req := httptest.NewRequest(http.MethodPost, "/work-units/abc/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "builder1", domain.RoleBuilder)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.UpdateStatus(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestWorkUnitHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubWorkUnitService{
		listFn: func(ctx context.Context) ([]domain.WorkUnit, error) {
			return []domain.WorkUnit{
				{ID: 1, ProjectID: 1, Title: "Build rig", Owner: "builder1", Status: "idea"},
				{ID: 2, ProjectID: 1, Title: "Wire sensors", Owner: "builder1", Status: "in_progress"},
			}, nil
		},
	}
	handler := NewWorkUnitHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/work-units", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "builder1", domain.RoleBuilder)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 work units, got %d", len(resp))
	}
	if resp[0]["title"] != "Build rig" || resp[1]["status"] != "in_progress" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
