package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	listFunc   func(ctx context.Context) ([]*model.Project, error)
	createFunc func(ctx context.Context, project *model.Project) error
	updateFunc func(ctx context.Context, project *model.Project) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) Create(ctx context.Context, project *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, project *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// pathRequest builds a request routed through a mux pattern so that
// r.PathValue works in the handler under test.
func pathRequest(t *testing.T, pattern, method, target, body string, fn http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)

	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// GET /api/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_List_Success(t *testing.T) {
	mock := &mockProjectService{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return []*model.Project{
				{ID: "p2", Title: "Newer", Year: "2025", Tags: []string{"go"}},
				{ID: "p1", Title: "Older", Year: "2023", Tags: []string{}},
			}, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var projects []*model.Project
	if err := json.NewDecoder(rec.Body).Decode(&projects); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != "p2" {
		t.Errorf("expected service order preserved, got %q first", projects[0].ID)
	}
}

// TestProjectHandler_List_Empty verifies nil from service becomes [] not null.
func TestProjectHandler_List_Empty(t *testing.T) {
	mock := &mockProjectService{}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [] body, got %q", body)
	}
}

func TestProjectHandler_List_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		listFunc: func(ctx context.Context) ([]*model.Project, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Create_Success(t *testing.T) {
	var captured *model.Project
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			captured = project
			project.ID = "generated-id"
			return nil
		},
	}
	h := NewProjectHandler(mock)

	body := `{"title":"Portfolio Site","description":"my site","year":"2026","tags":["go","postgres"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Create to be called")
	}
	if captured.Title != "Portfolio Site" {
		t.Errorf("expected title forwarded, got %q", captured.Title)
	}

	var resp model.Project
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "generated-id" {
		t.Errorf("expected generated id in response, got %q", resp.ID)
	}
}

func TestProjectHandler_Create_TitleRequired(t *testing.T) {
	mock := &mockProjectService{}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"description":"no title"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without title, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "title_required" {
		t.Errorf("expected error=title_required, got %q", resp["error"])
	}
}

func TestProjectHandler_Create_InvalidJSON(t *testing.T) {
	mock := &mockProjectService{}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestProjectHandler_Create_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			return errors.New("insert failed")
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"title":"X"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// PUT /api/projects/{id} tests
// ---------------------------------------------------------------------------

// TestProjectHandler_Update_IDFromPath verifies the path id wins over any
// id in the body.
func TestProjectHandler_Update_IDFromPath(t *testing.T) {
	var captured *model.Project
	mock := &mockProjectService{
		updateFunc: func(ctx context.Context, project *model.Project) error {
			captured = project
			return nil
		},
	}
	h := NewProjectHandler(mock)

	body := `{"id":"body-id","title":"Renamed"}`
	rec := pathRequest(t, "PUT /api/projects/{id}", http.MethodPut, "/api/projects/path-id", body, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Update to be called")
	}
	if captured.ID != "path-id" {
		t.Errorf("expected id from path, got %q", captured.ID)
	}
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	mock := &mockProjectService{
		updateFunc: func(ctx context.Context, project *model.Project) error {
			return repository.ErrNotFound
		},
	}
	h := NewProjectHandler(mock)

	rec := pathRequest(t, "PUT /api/projects/{id}", http.MethodPut, "/api/projects/missing", `{"title":"X"}`, h.Update)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing project, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/projects/{id} tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Delete_Success(t *testing.T) {
	var deletedID string
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := NewProjectHandler(mock)

	rec := pathRequest(t, "DELETE /api/projects/{id}", http.MethodDelete, "/api/projects/p1", "", h.Delete)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != "p1" {
		t.Errorf("expected delete of p1, got %q", deletedID)
	}
	var resp map[string]bool
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success=true in response")
	}
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewProjectHandler(mock)

	rec := pathRequest(t, "DELETE /api/projects/{id}", http.MethodDelete, "/api/projects/missing", "", h.Delete)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
