package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgExperienceRepository は ExperienceRepository の PostgreSQL 実装
type PgExperienceRepository struct {
	pool PgxPool
}

// NewPgExperienceRepository は PgExperienceRepository を生成する
func NewPgExperienceRepository(pool PgxPool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

const experienceColumns = `id, company, role, period, description, achievements, current, created_at, updated_at`

func scanExperience(row pgx.Row) (*model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Company, &e.Role, &e.Period, &e.Description, &e.Achievements, &e.Current, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List は全職歴を取得する。現職を先頭に、残りは登録順
func (r *PgExperienceRepository) List(ctx context.Context) ([]*model.Experience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experience ORDER BY current DESC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID は ID で職歴を取得する
func (r *PgExperienceRepository) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	e, err := scanExperience(r.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experience WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// Create は職歴を作成し、生成された id とタイムスタンプを書き戻す
func (r *PgExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	if exp.Achievements == nil {
		exp.Achievements = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO experience (company, role, period, description, achievements, current)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		exp.Company, exp.Role, exp.Period, exp.Description, exp.Achievements, exp.Current,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)
}

// Update は職歴を全置換で更新する。行が無ければ ErrNotFound
func (r *PgExperienceRepository) Update(ctx context.Context, exp *model.Experience) error {
	if exp.Achievements == nil {
		exp.Achievements = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE experience
		 SET company = $1, role = $2, period = $3, description = $4, achievements = $5, current = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		exp.Company, exp.Role, exp.Period, exp.Description, exp.Achievements, exp.Current, exp.ID,
	).Scan(&exp.CreatedAt, &exp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete は職歴を削除する。行が無ければ ErrNotFound
func (r *PgExperienceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
