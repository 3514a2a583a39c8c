package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidKey はバケット外を指すオブジェクトキーを表す。
var ErrInvalidKey = errors.New("storage: invalid object key")

// LocalStorage はローカルファイルシステムに画像を保存する Storage 実装。
// <baseDir>/<bucket>/<key> に書き込み、<publicBaseURL>/uploads/<bucket>/<key>
// を公開 URL として返す。
type LocalStorage struct {
	baseDir       string // ディスク上のルートディレクトリ (例: "./uploads")
	publicBaseURL string // 公開 URL のオリジン (例: "http://localhost:8080")
}

// NewLocalStorage は LocalStorage を生成する。
func NewLocalStorage(baseDir, publicBaseURL string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, publicBaseURL: publicBaseURL}
}

// objectPath はキーをバケット配下のパスに解決する。キーは呼び出し側
// （クエリパラメータや保存済み URL）から来ることがあるため、".." や
// バックスラッシュを含むキー、解決結果がバケットの外に出るキーは
// ErrInvalidKey で拒否する。
func (s *LocalStorage) objectPath(bucket, key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	root := filepath.Join(s.baseDir, bucket)
	dest := filepath.Join(root, key)
	if !strings.HasPrefix(dest, root+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return dest, nil
}

func (s *LocalStorage) Save(_ context.Context, bucket, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.objectPath(bucket, key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	// 上書きモード: 同名ファイルが存在しても os.Create が切り詰めて書き直す
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.publicBaseURL + "/uploads/" + bucket + "/" + key, nil
}

func (s *LocalStorage) Delete(_ context.Context, bucket, key string) error {
	dest, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
