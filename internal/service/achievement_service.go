package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// AchievementService は実績 CRUD のビジネスロジック
type AchievementService interface {
	List(ctx context.Context) ([]*model.Achievement, error)
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, achievement *model.Achievement) error
	Delete(ctx context.Context, id string) error
}

type achievementServiceImpl struct {
	repo    repository.AchievementRepository
	cleaner *ImageCleaner
}

// NewAchievementService は AchievementService を生成する
func NewAchievementService(repo repository.AchievementRepository, cleaner *ImageCleaner) AchievementService {
	return &achievementServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *achievementServiceImpl) List(ctx context.Context) ([]*model.Achievement, error) {
	return s.repo.List(ctx)
}

func (s *achievementServiceImpl) Create(ctx context.Context, achievement *model.Achievement) error {
	achievement.ID = ""
	return s.repo.Create(ctx, achievement)
}

func (s *achievementServiceImpl) Update(ctx context.Context, achievement *model.Achievement) error {
	existing, err := s.repo.GetByID(ctx, achievement.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, achievement); err != nil {
		return err
	}
	if existing.Image != achievement.Image {
		s.cleaner.Cleanup(ctx, existing.Image, "achievements")
	}
	return nil
}

func (s *achievementServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Cleanup(ctx, existing.Image, "achievements")
	return nil
}
