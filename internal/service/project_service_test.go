package service

import (
	"context"
	"errors"
	"testing"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

const uploadedImage = "http://localhost:8080/uploads/project-images/project-100.png"
const uploadedImage2 = "http://localhost:8080/uploads/project-images/project-200.png"

// ---------------------------------------------------------------------------
// mockProjectRepo — in-memory ProjectRepository for unit tests
// ---------------------------------------------------------------------------

type mockProjectRepo struct {
	projects  map[string]*model.Project
	createErr error
	updateErr error
	deleteErr error
	listErr   error
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*model.Project)}
}

func (r *mockProjectRepo) List(ctx context.Context) ([]*model.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*model.Project
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

func (r *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *mockProjectRepo) Create(ctx context.Context, project *model.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	project.ID = "generated"
	r.projects[project.ID] = project
	return nil
}

func (r *mockProjectRepo) Update(ctx context.Context, project *model.Project) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.projects[project.ID]; !ok {
		return repository.ErrNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.projects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

// TestProjectService_Create_IgnoresCallerID verifies the store assigns
// the id even when the caller supplies one.
func TestProjectService_Create_IgnoresCallerID(t *testing.T) {
	repo := newMockProjectRepo()
	svc := NewProjectService(repo, NewImageCleaner(&recordingStorage{}, "http://localhost:8080"))

	p := &model.Project{ID: "caller-id", Title: "X"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != "generated" {
		t.Errorf("expected store-assigned id, got %q", p.ID)
	}
}

// ---------------------------------------------------------------------------
// Update tests — image lifecycle
// ---------------------------------------------------------------------------

// TestProjectService_Update_ImageChanged verifies the old uploaded image
// is deleted exactly once when the reference changes.
func TestProjectService_Update_ImageChanged(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: uploadedImage}
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	err := svc.Update(context.Background(), &model.Project{ID: "p1", Title: "X", Image: uploadedImage2})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(store.deleted) != 1 {
		t.Fatalf("expected exactly 1 blob delete, got %d", len(store.deleted))
	}
	if store.deleted[0] != "project-images/project-100.png" {
		t.Errorf("expected old image deleted, got %q", store.deleted[0])
	}
}

// TestProjectService_Update_ImageUnchanged verifies no blob is touched
// when the reference stays the same.
func TestProjectService_Update_ImageUnchanged(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: uploadedImage}
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	err := svc.Update(context.Background(), &model.Project{ID: "p1", Title: "Renamed", Image: uploadedImage})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no blob deletes, got %v", store.deleted)
	}
}

// TestProjectService_Update_RowFailureSkipsCleanup verifies no cleanup
// runs when the row update fails.
func TestProjectService_Update_RowFailureSkipsCleanup(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: uploadedImage}
	repo.updateErr = errors.New("deadlock")
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	err := svc.Update(context.Background(), &model.Project{ID: "p1", Title: "X", Image: uploadedImage2})
	if err == nil {
		t.Fatal("expected update error")
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no cleanup after failed row update, got %v", store.deleted)
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	repo := newMockProjectRepo()
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	err := svc.Update(context.Background(), &model.Project{ID: "missing", Title: "X"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests — image lifecycle
// ---------------------------------------------------------------------------

func TestProjectService_Delete_CleansUploadedImage(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: uploadedImage}
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.projects) != 0 {
		t.Error("expected row deleted")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "project-images/project-100.png" {
		t.Errorf("expected image blob deleted, got %v", store.deleted)
	}
}

// TestProjectService_Delete_SymbolicImageKept verifies non-URL refs are
// never deleted from storage.
func TestProjectService_Delete_SymbolicImageKept(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: "placeholder"}
	store := &recordingStorage{}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no blob deletes for symbolic ref, got %v", store.deleted)
	}
}

// TestProjectService_Delete_BlobFailureAccepted verifies a failed blob
// delete does not fail the entity delete.
func TestProjectService_Delete_BlobFailureAccepted(t *testing.T) {
	repo := newMockProjectRepo()
	repo.projects["p1"] = &model.Project{ID: "p1", Title: "X", Image: uploadedImage}
	store := &recordingStorage{deleteErr: errors.New("storage down")}
	svc := NewProjectService(repo, NewImageCleaner(store, "http://localhost:8080"))

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Errorf("expected delete to succeed despite blob failure, got %v", err)
	}
	if len(repo.projects) != 0 {
		t.Error("expected row deleted")
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	repo := newMockProjectRepo()
	svc := NewProjectService(repo, NewImageCleaner(&recordingStorage{}, "http://localhost:8080"))

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
