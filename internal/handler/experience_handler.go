package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

// ExperienceHandler は職歴 CRUD の HTTP ハンドラ
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

// NewExperienceHandler は ExperienceHandler を生成する
func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// List は GET /api/experience を処理する（現職優先）
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.experienceService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if entries == nil {
		entries = []*model.Experience{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create は POST /api/experience を処理する（認証必須）
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var exp model.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if exp.Company == "" {
		writeError(w, http.StatusBadRequest, "company_required")
		return
	}

	if err := h.experienceService.Create(r.Context(), &exp); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, &exp)
}

// Update は PUT /api/experience/{id} を処理する（全置換・認証必須）
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var exp model.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	exp.ID = id

	if err := h.experienceService.Update(r.Context(), &exp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &exp)
}

// Delete は DELETE /api/experience/{id} を処理する（認証必須）
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.experienceService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
