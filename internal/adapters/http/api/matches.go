// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// MatchHandler handles match lifecycle commands.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// HandleMarkViewed handles POST /matches/{id}/viewed requests.
func (h *MatchHandler) HandleMarkViewed(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	status, err := h.deps.MarkViewed(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{ID: id, Status: string(status)})
}

// HandleConnect handles POST /matches/{id}/connect requests. On success
// the newly minted trial partnership is returned.
func (h *MatchHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.Connect(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleDismiss handles POST /matches/{id}/dismiss requests.
func (h *MatchHandler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	status, err := h.deps.Dismiss(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{ID: id, Status: string(status)})
}
