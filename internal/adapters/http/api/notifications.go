// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// NotificationHandler handles notification requests.
type NotificationHandler struct {
	deps Dependencies
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(deps Dependencies) *NotificationHandler {
	return &NotificationHandler{deps: deps}
}

// HandleList handles GET /notifications requests. Notifications come
// back bucketed into a trailing-24h "Today" group and "Earlier".
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Notifications(r.Context()))
}

// HandleMarkRead handles POST /notifications/{id}/read requests.
func (h *NotificationHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.MarkRead(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead handles POST /notifications/read-all requests and
// reports how many notifications were newly marked.
func (h *NotificationHandler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	marked := h.deps.MarkAllRead(r.Context())
	writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
}
