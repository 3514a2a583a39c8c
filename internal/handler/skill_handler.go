package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

// SkillHandler はスキル CRUD の HTTP ハンドラ
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler は SkillHandler を生成する
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// List は GET /api/skills を処理する（習熟度の降順）
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// Create は POST /api/skills を処理する（認証必須）
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var skill model.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if skill.Name == "" {
		writeError(w, http.StatusBadRequest, "name_required")
		return
	}

	if err := h.skillService.Create(r.Context(), &skill); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, &skill)
}

// Update は PUT /api/skills/{id} を処理する（全置換・認証必須）
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var skill model.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	skill.ID = id

	if err := h.skillService.Update(r.Context(), &skill); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &skill)
}

// Delete は DELETE /api/skills/{id} を処理する（認証必須）
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.skillService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SkillCategoryHandler はスキルカテゴリ CRUD の HTTP ハンドラ
type SkillCategoryHandler struct {
	categoryService service.SkillCategoryService
}

// NewSkillCategoryHandler は SkillCategoryHandler を生成する
func NewSkillCategoryHandler(categoryService service.SkillCategoryService) *SkillCategoryHandler {
	return &SkillCategoryHandler{categoryService: categoryService}
}

// List は GET /api/skill-categories を処理する（登録順）
func (h *SkillCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if categories == nil {
		categories = []*model.SkillCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// Create は POST /api/skill-categories を処理する（認証必須）
func (h *SkillCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var category model.SkillCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if category.Title == "" {
		writeError(w, http.StatusBadRequest, "title_required")
		return
	}

	if err := h.categoryService.Create(r.Context(), &category); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, &category)
}

// Update は PUT /api/skill-categories/{id} を処理する（全置換・認証必須）
func (h *SkillCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var category model.SkillCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	category.ID = id

	if err := h.categoryService.Update(r.Context(), &category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &category)
}

// Delete は DELETE /api/skill-categories/{id} を処理する（認証必須）
func (h *SkillCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
