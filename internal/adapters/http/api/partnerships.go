// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// PartnershipHandler handles partnership and thread requests.
type PartnershipHandler struct {
	deps Dependencies
}

// NewPartnershipHandler creates a new partnership handler.
func NewPartnershipHandler(deps Dependencies) *PartnershipHandler {
	return &PartnershipHandler{deps: deps}
}

// HandleList handles GET /partnerships requests.
func (h *PartnershipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Partnerships(r.Context()))
}

// HandleGetMessages handles GET /partnerships/{id}/messages requests.
// Messages come back bucketed by calendar day for display separators.
func (h *PartnershipHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	groups, err := h.deps.ThreadGroups(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

type postMessageRequest struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
	IsOwn    bool   `json:"is_own"`
}

// HandlePostMessage handles POST /partnerships/{id}/messages requests.
func (h *PartnershipHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.AppendMessage(r.Context(), id, req.SenderID, req.Text, req.IsOwn)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleOpen handles POST /partnerships/{id}/open requests. Opening a
// thread resets its unread counter.
func (h *PartnershipHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	p, err := h.deps.OpenThread(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
