package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/folium/backend/internal/storage"
)

// reDataURI は data URI のプレフィックス（"data:image/png;base64," 等）にマッチする
var reDataURI = regexp.MustCompile(`^data:image/\w+;base64,`)

// UploadHandler は画像のアップロード・削除を処理する
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler は UploadHandler を生成する
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// uploadRequest is the expected JSON body for POST /api/upload/{bucket}.
type uploadRequest struct {
	File        string `json:"file"`     // base64 data URI
	FileName    string `json:"fileName"` // original filename, extension is kept
	ContentType string `json:"contentType"`
}

// objectKey はバケット名と現在時刻からオブジェクトキーを導出する。
// 例: project-images + "shot.png" → "project-1735689600000.png"
func objectKey(bucket, fileName string, now time.Time) string {
	prefix := strings.TrimSuffix(bucket, "-images")
	prefix = strings.TrimSuffix(prefix, "-image")
	ext := path.Ext(fileName)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s-%d%s", prefix, now.UnixMilli(), ext)
}

// Upload は POST /api/upload/{bucket} を処理する（認証必須）。
// 許可リスト外のバケットと必須項目欠落は 400、ストレージには書き込まない。
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	bucket := r.PathValue("bucket")
	if !storage.IsAllowedBucket(bucket) {
		writeError(w, http.StatusBadRequest, "invalid_bucket")
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.File == "" || req.FileName == "" {
		writeError(w, http.StatusBadRequest, "file_and_filename_required")
		return
	}

	// data URI プレフィックスを除去してデコード
	b64 := reDataURI.ReplaceAllString(req.File, "")
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_base64")
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := objectKey(bucket, req.FileName, time.Now())
	url, err := h.storage.Save(r.Context(), bucket, key, bytes.NewReader(data), contentType)
	if err != nil {
		slog.Error("upload failed", "error", err, "bucket", bucket, "key", key)
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":  url,
		"path": bucket + "/" + key,
	})
}

// Delete は DELETE /api/upload/{bucket}?fileName=... を処理する（認証必須）。
// 管理・デバッグ用途の直接削除。通常の削除はエンティティ更新経由で行われる
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bucket := r.PathValue("bucket")
	if !storage.IsAllowedBucket(bucket) {
		writeError(w, http.StatusBadRequest, "invalid_bucket")
		return
	}

	fileName := r.URL.Query().Get("fileName")
	if fileName == "" {
		writeError(w, http.StatusBadRequest, "filename_required")
		return
	}

	if err := h.storage.Delete(r.Context(), bucket, fileName); err != nil {
		if errors.Is(err, storage.ErrInvalidKey) {
			writeError(w, http.StatusBadRequest, "invalid_filename")
			return
		}
		slog.Error("delete failed", "error", err, "bucket", bucket, "key", fileName)
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
