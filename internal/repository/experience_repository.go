package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// ExperienceRepository は職歴永続化のインターフェース
type ExperienceRepository interface {
	List(ctx context.Context) ([]*model.Experience, error)
	GetByID(ctx context.Context, id string) (*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id string) error
}
