package handler

import "net/http"

// Health は GET /api/health を処理する
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
