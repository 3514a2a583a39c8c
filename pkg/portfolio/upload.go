package portfolio

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/folium/backend/internal/storage"
)

// Upload is the result of a successful image upload.
type Upload struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// UploadImage encodes raw image bytes as a data URI and uploads them to
// the bucket mapped to entityContext ("projects", "about", ...).
// The returned URL is what should be stored on the entity.
func (c *Client) UploadImage(ctx context.Context, entityContext, fileName, contentType string, data []byte) (*Upload, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	bucket := storage.BucketForContext(entityContext)
	body := map[string]string{
		"file":        "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		"fileName":    fileName,
		"contentType": contentType,
	}
	var up Upload
	if err := c.doJSON(ctx, http.MethodPost, "/api/upload/"+bucket, body, &up); err != nil {
		return nil, err
	}
	return &up, nil
}

// DeleteUpload removes an uploaded object by bucket and file name.
func (c *Client) DeleteUpload(ctx context.Context, bucket, fileName string) error {
	path := "/api/upload/" + bucket + "?fileName=" + url.QueryEscape(fileName)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
