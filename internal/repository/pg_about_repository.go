package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgAboutRepository は AboutRepository の PostgreSQL 実装
type PgAboutRepository struct {
	pool PgxPool
}

// NewPgAboutRepository は PgAboutRepository を生成する
func NewPgAboutRepository(pool PgxPool) *PgAboutRepository {
	return &PgAboutRepository{pool: pool}
}

// Get はプロフィールを取得する。レコードが無い場合は ErrNotFound を返す
func (r *PgAboutRepository) Get(ctx context.Context) (*model.AboutProfile, error) {
	var a model.AboutProfile
	err := r.pool.QueryRow(ctx,
		`SELECT name, title, bio, location, email, profile_image, github, linkedin, twitter, resume
		 FROM about WHERE id = $1`,
		model.AboutID,
	).Scan(&a.Name, &a.Title, &a.Bio, &a.Location, &a.Email, &a.ProfileImage, &a.GitHub, &a.LinkedIn, &a.Twitter, &a.Resume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert はプロフィールを全置換で保存する（id は常に固定値）
func (r *PgAboutRepository) Upsert(ctx context.Context, about *model.AboutProfile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO about (id, name, title, bio, location, email, profile_image, github, linkedin, twitter, resume, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, title = EXCLUDED.title, bio = EXCLUDED.bio,
		   location = EXCLUDED.location, email = EXCLUDED.email, profile_image = EXCLUDED.profile_image,
		   github = EXCLUDED.github, linkedin = EXCLUDED.linkedin, twitter = EXCLUDED.twitter,
		   resume = EXCLUDED.resume, updated_at = NOW()`,
		model.AboutID, about.Name, about.Title, about.Bio, about.Location, about.Email,
		about.ProfileImage, about.GitHub, about.LinkedIn, about.Twitter, about.Resume,
	)
	return err
}
