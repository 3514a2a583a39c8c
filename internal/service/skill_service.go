package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// SkillService はスキル CRUD のビジネスロジック
type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
}

type skillServiceImpl struct {
	repo    repository.SkillRepository
	cleaner *ImageCleaner
}

// NewSkillService は SkillService を生成する
func NewSkillService(repo repository.SkillRepository, cleaner *ImageCleaner) SkillService {
	return &skillServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *skillServiceImpl) List(ctx context.Context) ([]*model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillServiceImpl) Create(ctx context.Context, skill *model.Skill) error {
	skill.ID = ""
	return s.repo.Create(ctx, skill)
}

// Update はスキルを全置換で更新する。アイコンがアップロード画像から別の値に
// 変わった場合は旧画像をベストエフォートで削除する
func (s *skillServiceImpl) Update(ctx context.Context, skill *model.Skill) error {
	existing, err := s.repo.GetByID(ctx, skill.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, skill); err != nil {
		return err
	}
	if existing.Icon != skill.Icon {
		s.cleaner.Cleanup(ctx, existing.Icon, "skills")
	}
	return nil
}

func (s *skillServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Cleanup(ctx, existing.Icon, "skills")
	return nil
}

// SkillCategoryService はスキルカテゴリ CRUD のビジネスロジック
type SkillCategoryService interface {
	List(ctx context.Context) ([]*model.SkillCategory, error)
	Create(ctx context.Context, category *model.SkillCategory) error
	Update(ctx context.Context, category *model.SkillCategory) error
	Delete(ctx context.Context, id string) error
}

type skillCategoryServiceImpl struct {
	repo    repository.SkillCategoryRepository
	cleaner *ImageCleaner
}

// NewSkillCategoryService は SkillCategoryService を生成する
func NewSkillCategoryService(repo repository.SkillCategoryRepository, cleaner *ImageCleaner) SkillCategoryService {
	return &skillCategoryServiceImpl{repo: repo, cleaner: cleaner}
}

func (s *skillCategoryServiceImpl) List(ctx context.Context) ([]*model.SkillCategory, error) {
	return s.repo.List(ctx)
}

func (s *skillCategoryServiceImpl) Create(ctx context.Context, category *model.SkillCategory) error {
	category.ID = ""
	return s.repo.Create(ctx, category)
}

func (s *skillCategoryServiceImpl) Update(ctx context.Context, category *model.SkillCategory) error {
	existing, err := s.repo.GetByID(ctx, category.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return err
	}
	if existing.Icon != category.Icon {
		s.cleaner.Cleanup(ctx, existing.Icon, "skill-categories")
	}
	return nil
}

func (s *skillCategoryServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleaner.Cleanup(ctx, existing.Icon, "skill-categories")
	return nil
}
