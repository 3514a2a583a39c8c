package repository

import (
	"context"

	"github.com/folium/backend/internal/model"
)

// AboutRepository はプロフィール（単一レコード）永続化のインターフェース
type AboutRepository interface {
	Get(ctx context.Context) (*model.AboutProfile, error)
	Upsert(ctx context.Context, about *model.AboutProfile) error
}
