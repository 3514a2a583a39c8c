package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/folium/backend/internal/model"
)

// PgMessageRepository は MessageRepository の PostgreSQL 実装
type PgMessageRepository struct {
	pool PgxPool
}

// NewPgMessageRepository は PgMessageRepository を生成する
func NewPgMessageRepository(pool PgxPool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

const messageColumns = `id, name, email, subject, message, read, created_at`

func scanMessage(row pgx.Row) (*model.Message, error) {
	var m model.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List は全メッセージを新しい順で取得する
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create はメッセージを未読状態で保存し、生成された id とタイムスタンプを書き戻す
func (r *PgMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	msg.Read = false
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, subject, message, read)
		 VALUES ($1, $2, $3, $4, FALSE)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// SetRead は既読フラグを変更する。行が無ければ ErrNotFound
func (r *PgMessageRepository) SetRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx,
		`UPDATE messages SET read = $1 WHERE id = $2
		 RETURNING `+messageColumns, read, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// UnreadCount は未読メッセージ数を返す
func (r *PgMessageRepository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE NOT read`).Scan(&count)
	return count, err
}

// Delete はメッセージを削除する。行が無ければ ErrNotFound
func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
