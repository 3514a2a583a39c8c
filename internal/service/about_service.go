package service

import (
	"context"
	"errors"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// AboutService defines the business logic for the singleton about profile.
type AboutService interface {
	// Get returns the profile, or repository.ErrNotFound if none has been
	// saved yet.
	Get(ctx context.Context) (*model.AboutProfile, error)
	// Upsert replaces the profile in place. A changed profile image
	// triggers best-effort cleanup of the previous uploaded image.
	Upsert(ctx context.Context, about *model.AboutProfile) error
}

type aboutServiceImpl struct {
	repo    repository.AboutRepository
	cleaner *ImageCleaner
}

// NewAboutService creates an AboutService backed by the given repository.
func NewAboutService(repo repository.AboutRepository, cleaner *ImageCleaner) AboutService {
	return &aboutServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *aboutServiceImpl) Get(ctx context.Context) (*model.AboutProfile, error) {
	return s.repo.Get(ctx)
}

func (s *aboutServiceImpl) Upsert(ctx context.Context, about *model.AboutProfile) error {
	existing, err := s.repo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.repo.Upsert(ctx, about); err != nil {
		return err
	}
	if existing != nil && existing.ProfileImage != about.ProfileImage {
		s.cleaner.Cleanup(ctx, existing.ProfileImage, "profile")
	}
	return nil
}
