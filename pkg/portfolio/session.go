package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const sessionFile = "session.json"

// sessionMarker はログイン成功時にローカルへ置くトークンと有効期限。
// 期限切れのマーカーは存在しないものとして扱う。
type sessionMarker struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges the admin password for a session token and stores it
// in the state dir. The token is attached to every later mutation.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp struct {
		Success   bool      `json:"success"`
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	body := map[string]string{"password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}

	marker := sessionMarker{Token: resp.Token, ExpiresAt: resp.ExpiresAt}
	if err := os.MkdirAll(c.stateDir, 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(marker)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.stateDir, sessionFile), b, 0o600)
}

// Logout discards the stored session marker.
func (c *Client) Logout() error {
	err := os.Remove(filepath.Join(c.stateDir, sessionFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsAuthenticated reports whether a non-expired session marker exists.
func (c *Client) IsAuthenticated() bool {
	marker, ok := c.readSession()
	return ok && time.Now().Before(marker.ExpiresAt)
}

// sessionToken returns the stored token, or "" when absent or expired.
func (c *Client) sessionToken() string {
	marker, ok := c.readSession()
	if !ok || time.Now().After(marker.ExpiresAt) {
		return ""
	}
	return marker.Token
}

func (c *Client) readSession() (sessionMarker, bool) {
	var marker sessionMarker
	if c.stateDir == "" {
		return marker, false
	}
	b, err := os.ReadFile(filepath.Join(c.stateDir, sessionFile))
	if err != nil {
		return marker, false
	}
	if err := json.Unmarshal(b, &marker); err != nil {
		return marker, false
	}
	return marker, true
}
