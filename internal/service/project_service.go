package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	// Create inserts a new project. The store assigns the id; any
	// caller-supplied id is ignored.
	Create(ctx context.Context, project *model.Project) error
	// Update replaces the project's fields. If the stored image reference
	// changes, the previous uploaded image is deleted best-effort after
	// the row update succeeds.
	Update(ctx context.Context, project *model.Project) error
	// Delete removes the project and, best-effort, its uploaded image.
	Delete(ctx context.Context, id string) error
}

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo    repository.ProjectRepository
	cleaner *ImageCleaner
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository, cleaner *ImageCleaner) ProjectService {
	return &projectServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	project.ID = ""
	return s.repo.Create(ctx, project)
}

// Update reads the current row first to learn the old image reference,
// replaces the row, then cleans up the old image if it changed. The two
// steps are not transactional; a row update that succeeds while cleanup
// fails is logged and accepted.
func (s *projectServiceImpl) Update(ctx context.Context, project *model.Project) error {
	existing, err := s.repo.GetByID(ctx, project.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, project); err != nil {
		return err
	}
	if existing.Image != project.Image {
		s.cleaner.Cleanup(ctx, existing.Image, "projects")
	}
	return nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Cleanup(ctx, existing.Image, "projects")
	return nil
}
