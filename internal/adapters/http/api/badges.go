// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// BadgesHandler handles navigation badge requests.
type BadgesHandler struct {
	deps Dependencies
}

// NewBadgesHandler creates a new badges handler.
func NewBadgesHandler(deps Dependencies) *BadgesHandler {
	return &BadgesHandler{deps: deps}
}

// HandleGetBadges handles GET /badges requests. Counts are recomputed
// from current state on every call.
func (h *BadgesHandler) HandleGetBadges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Badges(r.Context()))
}
