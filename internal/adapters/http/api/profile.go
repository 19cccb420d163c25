// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ProfileHandler handles attendee profile requests.
type ProfileHandler struct {
	deps Dependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps Dependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleGetMe handles GET /me requests.
func (h *ProfileHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.CurrentUser(r.Context()))
}
