package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// ServiceRepository は提供サービス永続化のインターフェース
type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string) error
}
