// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// EventChatHandler handles public livestream room requests.
type EventChatHandler struct {
	deps Dependencies
}

// NewEventChatHandler creates a new event chat handler.
func NewEventChatHandler(deps Dependencies) *EventChatHandler {
	return &EventChatHandler{deps: deps}
}

// HandleList handles GET /event-chat requests.
func (h *EventChatHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.EventChat(r.Context()))
}
