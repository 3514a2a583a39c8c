package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// SkillRepository はスキル永続化のインターフェース
type SkillRepository interface {
	List(ctx context.Context) ([]*model.Skill, error)
	GetByID(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
}

// SkillCategoryRepository はスキルカテゴリ永続化のインターフェース
type SkillCategoryRepository interface {
	List(ctx context.Context) ([]*model.SkillCategory, error)
	GetByID(ctx context.Context, id string) (*model.SkillCategory, error)
	Create(ctx context.Context, category *model.SkillCategory) error
	Update(ctx context.Context, category *model.SkillCategory) error
	Delete(ctx context.Context, id string) error
}
