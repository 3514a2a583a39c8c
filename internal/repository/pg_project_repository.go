package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool PgxPool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool PgxPool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, title, description, long_description, image, tags, live_url, github_url, featured, year, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image, &p.Tags,
		&p.LiveURL, &p.GitHubURL, &p.Featured, &p.Year, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List は全プロジェクトを年の降順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create はプロジェクトを作成し、生成された id とタイムスタンプを書き戻す
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.Tags == nil {
		project.Tags = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, long_description, image, tags, live_url, github_url, featured, year)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.LongDescription, project.Image, project.Tags,
		project.LiveURL, project.GitHubURL, project.Featured, project.Year,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

// Update はプロジェクトを全置換で更新する。行が無ければ ErrNotFound
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	if project.Tags == nil {
		project.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, long_description = $3, image = $4, tags = $5,
		     live_url = $6, github_url = $7, featured = $8, year = $9, updated_at = NOW()
		 WHERE id = $10
		 RETURNING created_at, updated_at`,
		project.Title, project.Description, project.LongDescription, project.Image, project.Tags,
		project.LiveURL, project.GitHubURL, project.Featured, project.Year, project.ID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はプロジェクトを削除する。行が無ければ ErrNotFound
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
