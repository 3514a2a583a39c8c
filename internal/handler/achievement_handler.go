package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

// AchievementHandler は実績 CRUD の HTTP ハンドラ
type AchievementHandler struct {
	achievementService service.AchievementService
}

// NewAchievementHandler は AchievementHandler を生成する
func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// List は GET /api/achievements を処理する（日付の降順）
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if achievements == nil {
		achievements = []*model.Achievement{}
	}
	writeJSON(w, http.StatusOK, achievements)
}

// Create は POST /api/achievements を処理する（認証必須）
func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var achievement model.Achievement
	if err := json.NewDecoder(r.Body).Decode(&achievement); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if achievement.Title == "" {
		writeError(w, http.StatusBadRequest, "title_required")
		return
	}

	if err := h.achievementService.Create(r.Context(), &achievement); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, &achievement)
}

// Update は PUT /api/achievements/{id} を処理する（全置換・認証必須）
func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var achievement model.Achievement
	if err := json.NewDecoder(r.Body).Decode(&achievement); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	achievement.ID = id

	if err := h.achievementService.Update(r.Context(), &achievement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &achievement)
}

// Delete は DELETE /api/achievements/{id} を処理する（認証必須）。
// 紐づくアップロード画像があればストレージからも削除する
func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.achievementService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
