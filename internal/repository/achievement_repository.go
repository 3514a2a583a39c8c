package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// AchievementRepository は実績永続化のインターフェース
type AchievementRepository interface {
	List(ctx context.Context) ([]*model.Achievement, error)
	GetByID(ctx context.Context, id string) (*model.Achievement, error)
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, achievement *model.Achievement) error
	Delete(ctx context.Context, id string) error
}
