package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

// AboutHandler はプロフィールの取得・保存を処理する
type AboutHandler struct {
	aboutService service.AboutService
}

// NewAboutHandler は AboutHandler を生成する
func NewAboutHandler(aboutService service.AboutService) *AboutHandler {
	return &AboutHandler{aboutService: aboutService}
}

// Get は GET /api/about を処理する。未登録の場合は null を返す
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutService.Get(r.Context())
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

// Update は PUT /api/about を処理する（全置換 upsert・認証必須）
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var about model.AboutProfile
	if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.aboutService.Upsert(r.Context(), &about); err != nil {
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &about)
}
