package storage

import (
	"context"
	"io"
)

// Storage は画像ファイルの保存・削除を抽象化するインターフェース。
// ローカルファイルシステム実装の他、S3 / Cloudflare R2 等に差し替え可能。
// バケットごとにオブジェクトを分離し、Save は公開 URL を返す。
type Storage interface {
	// Save はバケット内の key にファイルを保存し、公開 URL を返す。
	// 同 key が既に存在する場合は上書きする。
	Save(ctx context.Context, bucket, key string, data io.Reader, contentType string) (url string, err error)

	// Delete はバケット内の key に対応するファイルを削除する。
	// 存在しない key の削除はエラーにしない。
	Delete(ctx context.Context, bucket, key string) error
}
