package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgSkillCategoryRepository は SkillCategoryRepository の PostgreSQL 実装
type PgSkillCategoryRepository struct {
	pool PgxPool
}

// NewPgSkillCategoryRepository は PgSkillCategoryRepository を生成する
func NewPgSkillCategoryRepository(pool PgxPool) *PgSkillCategoryRepository {
	return &PgSkillCategoryRepository{pool: pool}
}

const skillCategoryColumns = `id, key, title, description, icon, skills, created_at, updated_at`

func scanSkillCategory(row pgx.Row) (*model.SkillCategory, error) {
	var c model.SkillCategory
	err := row.Scan(&c.ID, &c.Key, &c.Title, &c.Description, &c.Icon, &c.Skills, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List は全カテゴリを作成日時の昇順で取得する（表示順 = 登録順）
func (r *PgSkillCategoryRepository) List(ctx context.Context) ([]*model.SkillCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+skillCategoryColumns+` FROM skill_categories ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*model.SkillCategory
	for rows.Next() {
		c, err := scanSkillCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID は ID でカテゴリを取得する
func (r *PgSkillCategoryRepository) GetByID(ctx context.Context, id string) (*model.SkillCategory, error) {
	c, err := scanSkillCategory(r.pool.QueryRow(ctx,
		`SELECT `+skillCategoryColumns+` FROM skill_categories WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Create はカテゴリを作成し、生成された id とタイムスタンプを書き戻す
func (r *PgSkillCategoryRepository) Create(ctx context.Context, category *model.SkillCategory) error {
	if category.Skills == nil {
		category.Skills = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO skill_categories (key, title, description, icon, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		category.Key, category.Title, category.Description, category.Icon, category.Skills,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// Update はカテゴリを全置換で更新する。行が無ければ ErrNotFound
func (r *PgSkillCategoryRepository) Update(ctx context.Context, category *model.SkillCategory) error {
	if category.Skills == nil {
		category.Skills = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE skill_categories
		 SET key = $1, title = $2, description = $3, icon = $4, skills = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		category.Key, category.Title, category.Description, category.Icon, category.Skills, category.ID,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はカテゴリを削除する。行が無ければ ErrNotFound
func (r *PgSkillCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skill_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
