package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// MessageRepository はお問い合わせメッセージ永続化のインターフェース
type MessageRepository interface {
	List(ctx context.Context) ([]*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	// SetRead は既読フラグを変更し、更新後のメッセージを返す
	SetRead(ctx context.Context, id string, read bool) (*model.Message, error)
	UnreadCount(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
