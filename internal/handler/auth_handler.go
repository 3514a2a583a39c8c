package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/folium/backend/pkg/auth"
)

// AuthHandler は管理者ログインを処理する
type AuthHandler struct {
	adminPassword string
	sessionSecret []byte
}

// NewAuthHandler は AuthHandler を生成する
func NewAuthHandler(adminPassword string, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{adminPassword: adminPassword, sessionSecret: sessionSecret}
}

// loginResponse is the JSON response for a successful login.
type loginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login は POST /api/auth/login を処理する。
// パスワード一致で 24 時間有効なセッショントークンを発行する
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password_required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid_password")
		return
	}

	token, exp, err := auth.CreateSessionToken(h.sessionSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, ExpiresAt: exp})
}
