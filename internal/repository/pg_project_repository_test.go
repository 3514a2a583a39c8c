package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/folium/backend/internal/model"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

var projectRows = []string{"id", "title", "description", "long_description", "image", "tags",
	"live_url", "github_url", "featured", "year", "created_at", "updated_at"}

func TestPgProjectRepository_List_OrderedByYearDesc(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPgProjectRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM projects ORDER BY year DESC`).
		WillReturnRows(pgxmock.NewRows(projectRows).
			AddRow("p2", "Newer", "d", "ld", "", []string{"go"}, "", "", true, "2025", now, now).
			AddRow("p1", "Older", "d", "ld", "", []string{}, "", "", false, "2023", now, now))

	projects, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "p2", projects[0].ID)
	require.Equal(t, []string{"go"}, projects[0].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgProjectRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPgProjectRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestPgProjectRepository_Create_WritesBackGeneratedFields verifies the
// RETURNING values end up on the struct.
func TestPgProjectRepository_Create_WritesBackGeneratedFields(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPgProjectRepository(mock)
	now := time.Now()

	p := &model.Project{Title: "X", Description: "d", Year: "2026"}
	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs("X", "d", "", "", []string{}, "", "", false, "2026").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("new-id", now, now))

	require.NoError(t, r.Create(context.Background(), p))
	require.Equal(t, "new-id", p.ID)
	require.Equal(t, now, p.CreatedAt)
	require.NotNil(t, p.Tags, "nil tags should be normalized to empty array")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgProjectRepository_Update_NotFound(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPgProjectRepository(mock)

	mock.ExpectQuery(`UPDATE projects`).
		WithArgs("X", "", "", "", []string{}, "", "", false, "", "missing").
		WillReturnError(pgx.ErrNoRows)

	err := r.Update(context.Background(), &model.Project{ID: "missing", Title: "X"})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgProjectRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPgProjectRepository(mock)

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(context.Background(), "p1"))

	// 行が無い場合は ErrNotFound
	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(context.Background(), "missing"), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
