package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// CatalogService はサービスセクション（提供サービス）CRUD のビジネスロジック
type CatalogService interface {
	List(ctx context.Context) ([]*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	repo    repository.ServiceRepository
	cleaner *ImageCleaner
}

// NewCatalogService は CatalogService を生成する
func NewCatalogService(repo repository.ServiceRepository, cleaner *ImageCleaner) CatalogService {
	return &catalogServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Service, error) {
	return s.repo.List(ctx)
}

func (s *catalogServiceImpl) Create(ctx context.Context, svc *model.Service) error {
	svc.ID = ""
	return s.repo.Create(ctx, svc)
}

func (s *catalogServiceImpl) Update(ctx context.Context, svc *model.Service) error {
	existing, err := s.repo.GetByID(ctx, svc.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, svc); err != nil {
		return err
	}
	if existing.Icon != svc.Icon {
		s.cleaner.Cleanup(ctx, existing.Icon, "services")
	}
	return nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Cleanup(ctx, existing.Icon, "services")
	return nil
}
