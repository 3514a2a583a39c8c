package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// ExperienceService は職歴 CRUD のビジネスロジック。
// Experience は画像参照フィールドを持たないため、画像クリーンアップは無い。
type ExperienceService interface {
	List(ctx context.Context) ([]*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id string) error
}

type experienceServiceImpl struct {
	repo repository.ExperienceRepository
}

// NewExperienceService は ExperienceService を生成する
func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceServiceImpl{repo: repo}
}

func (s *experienceServiceImpl) List(ctx context.Context) ([]*model.Experience, error) {
	return s.repo.List(ctx)
}

func (s *experienceServiceImpl) Create(ctx context.Context, exp *model.Experience) error {
	exp.ID = ""
	return s.repo.Create(ctx, exp)
}

func (s *experienceServiceImpl) Update(ctx context.Context, exp *model.Experience) error {
	return s.repo.Update(ctx, exp)
}

func (s *experienceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
