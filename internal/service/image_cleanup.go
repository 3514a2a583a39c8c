package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/folium/backend/internal/storage"
)

// IsUploadedRef reports whether ref points at an uploaded blob (http/https
// URL) rather than a symbolic icon name. Symbolic names must never be
// deleted from storage.
func IsUploadedRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// ExtractObjectKey は公開 URL からバケット内のオブジェクトキーを取り出す。
// URL のパスは .../uploads/<bucket>/<key...> の形を想定し、"uploads" マーカーの
// 次のセグメント（バケット名）より後ろ全てをキーとして返す。
// 形が合わない URL は ok=false（削除をスキップする）。
func ExtractObjectKey(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "uploads" && i+2 <= len(parts)-1 {
			return strings.Join(parts[i+2:], "/"), true
		}
	}
	return "", false
}

// ImageCleaner removes orphaned uploaded images after an entity update or
// delete. Cleanup is best-effort: a failed blob delete is logged and never
// fails the entity mutation that triggered it, so a row mutation that
// succeeds while cleanup fails leaves a stale blob behind (accepted).
type ImageCleaner struct {
	storage storage.Storage
	host    string // 公開 URL のホスト。他ホストの URL は削除対象にしない
}

// NewImageCleaner は ImageCleaner を生成する。publicBaseURL はこのサーバが
// 配信する画像 URL のオリジン。
func NewImageCleaner(store storage.Storage, publicBaseURL string) *ImageCleaner {
	host := ""
	if u, err := url.Parse(publicBaseURL); err == nil {
		host = u.Host
	}
	return &ImageCleaner{storage: store, host: host}
}

// Cleanup は oldRef がこのサーバ上のアップロード済み画像 URL である場合のみ、
// 対応する blob を削除する。空文字・シンボリックなアイコン名・外部ホストの
// URL は何もしない。entityContext（"projects" 等）から削除対象のバケットを決める。
func (c *ImageCleaner) Cleanup(ctx context.Context, oldRef, entityContext string) {
	if oldRef == "" || !IsUploadedRef(oldRef) {
		return
	}
	u, err := url.Parse(oldRef)
	if err != nil {
		slog.Warn("image cleanup: unparseable url", "url", oldRef)
		return
	}
	if c.host != "" && u.Host != c.host {
		slog.Warn("image cleanup: foreign host, skipping", "url", oldRef)
		return
	}
	key, ok := ExtractObjectKey(oldRef)
	if !ok {
		slog.Warn("image cleanup: unrecognized url shape", "url", oldRef)
		return
	}
	bucket := storage.BucketForContext(entityContext)
	if err := c.storage.Delete(ctx, bucket, key); err != nil {
		slog.Error("image cleanup failed", "error", err, "bucket", bucket, "key", key)
	}
}
