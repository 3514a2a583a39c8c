package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgAchievementRepository は AchievementRepository の PostgreSQL 実装
type PgAchievementRepository struct {
	pool PgxPool
}

// NewPgAchievementRepository は PgAchievementRepository を生成する
func NewPgAchievementRepository(pool PgxPool) *PgAchievementRepository {
	return &PgAchievementRepository{pool: pool}
}

const achievementColumns = `id, title, description, image, date, credential_url, created_at, updated_at`

func scanAchievement(row pgx.Row) (*model.Achievement, error) {
	var a model.Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Image, &a.Date, &a.CredentialURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List は全実績を日付の降順で取得する
func (r *PgAchievementRepository) List(ctx context.Context) ([]*model.Achievement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+achievementColumns+` FROM achievements ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []*model.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// GetByID は ID で実績を取得する
func (r *PgAchievementRepository) GetByID(ctx context.Context, id string) (*model.Achievement, error) {
	a, err := scanAchievement(r.pool.QueryRow(ctx,
		`SELECT `+achievementColumns+` FROM achievements WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// Create は実績を作成し、生成された id とタイムスタンプを書き戻す
func (r *PgAchievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO achievements (title, description, image, date, credential_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		achievement.Title, achievement.Description, achievement.Image, achievement.Date, achievement.CredentialURL,
	).Scan(&achievement.ID, &achievement.CreatedAt, &achievement.UpdatedAt)
}

// Update は実績を全置換で更新する。行が無ければ ErrNotFound
func (r *PgAchievementRepository) Update(ctx context.Context, achievement *model.Achievement) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE achievements
		 SET title = $1, description = $2, image = $3, date = $4, credential_url = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		achievement.Title, achievement.Description, achievement.Image, achievement.Date, achievement.CredentialURL, achievement.ID,
	).Scan(&achievement.CreatedAt, &achievement.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete は実績を削除する。行が無ければ ErrNotFound
func (r *PgAchievementRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
