package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

// ServiceHandler は提供サービス CRUD の HTTP ハンドラ
type ServiceHandler struct {
	catalogService service.CatalogService
}

// NewServiceHandler は ServiceHandler を生成する
func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// List は GET /api/services を処理する（登録順）
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// Create は POST /api/services を処理する（認証必須）
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if svc.Title == "" {
		writeError(w, http.StatusBadRequest, "title_required")
		return
	}

	if err := h.catalogService.Create(r.Context(), &svc); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, &svc)
}

// Update は PUT /api/services/{id} を処理する（全置換・認証必須）
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	svc.ID = id

	if err := h.catalogService.Update(r.Context(), &svc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, &svc)
}

// Delete は DELETE /api/services/{id} を処理する（認証必須）
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
