package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool PgxPool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool PgxPool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

const serviceColumns = `id, title, description, icon, tags, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Tags, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List は全サービスを作成日時の昇順で取得する
func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetByID は ID でサービスを取得する
func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// Create はサービスを作成し、生成された id とタイムスタンプを書き戻す
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	if svc.Tags == nil {
		svc.Tags = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO services (title, description, icon, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		svc.Title, svc.Description, svc.Icon, svc.Tags,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

// Update はサービスを全置換で更新する。行が無ければ ErrNotFound
func (r *PgServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	if svc.Tags == nil {
		svc.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE services SET title = $1, description = $2, icon = $3, tags = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		svc.Title, svc.Description, svc.Icon, svc.Tags, svc.ID,
	).Scan(&svc.CreatedAt, &svc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はサービスを削除する。行が無ければ ErrNotFound
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
