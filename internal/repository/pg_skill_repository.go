package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgSkillRepository は SkillRepository の PostgreSQL 実装
type PgSkillRepository struct {
	pool PgxPool
}

// NewPgSkillRepository は PgSkillRepository を生成する
func NewPgSkillRepository(pool PgxPool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

const skillColumns = `id, name, category, level, icon, created_at, updated_at`

func scanSkill(row pgx.Row) (*model.Skill, error) {
	var s model.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Icon, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List は全スキルを習熟度の降順で取得する
func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY level DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// GetByID は ID でスキルを取得する
func (r *PgSkillRepository) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	s, err := scanSkill(r.pool.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// Create はスキルを作成し、生成された id とタイムスタンプを書き戻す
func (r *PgSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, level, icon)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		skill.Name, skill.Category, skill.Level, skill.Icon,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

// Update はスキルを全置換で更新する。行が無ければ ErrNotFound
func (r *PgSkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE skills SET name = $1, category = $2, level = $3, icon = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		skill.Name, skill.Category, skill.Level, skill.Icon, skill.ID,
	).Scan(&skill.CreatedAt, &skill.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はスキルを削除する。行が無ければ ErrNotFound
func (r *PgSkillRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
