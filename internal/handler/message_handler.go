package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
	"github.com/folium/backend/internal/service"
)

const maxMessageLength = 5000

// MessageHandler handles contact form submission and the admin inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// submitRequest is the expected JSON body for POST /api/messages.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/messages (public).
// email and message are required; message max 5000 chars.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.messageService.Submit(r.Context(), msg); err != nil {
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// List handles GET /api/messages (admin only), newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Update handles PUT /api/messages/{id} (admin only). The read flag is
// the only mutable field.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	var req struct {
		Read bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	msg, err := h.messageService.SetRead(r.Context(), id, req.Read)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// MarkRead handles PATCH /api/messages/{id}/read (admin only).
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	msg, err := h.messageService.SetRead(r.Context(), id, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// UnreadCount handles GET /api/messages/unread-count (admin only).
// A store failure degrades to {count: 0} so the admin nav badge never
// breaks the layout.
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.messageService.UnreadCount(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]int{"count": 0})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Delete handles DELETE /api/messages/{id} (admin only).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}

	if err := h.messageService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
