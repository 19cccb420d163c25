// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// ScheduleHandler handles festival programme requests.
type ScheduleHandler struct {
	deps Dependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps Dependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

type bookmarkResponse struct {
	ID           string `json:"id"`
	IsBookmarked bool   `json:"is_bookmarked"`
}

// HandleGetSessions handles GET /sessions?day=&type=&bookmarked= requests.
// Day 0 (or absent) selects every day.
func (h *ScheduleHandler) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	day := 0
	if raw := query.Get("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		day = parsed
	}
	bookmarkedOnly := query.Get("bookmarked") == "true"

	views := h.deps.Sessions(r.Context(), day, query.Get("type"), bookmarkedOnly)
	writeJSON(w, http.StatusOK, views)
}

// HandleToggleBookmark handles POST /sessions/{id}/bookmark requests.
func (h *ScheduleHandler) HandleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	bookmarked, err := h.deps.ToggleBookmark(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookmarkResponse{ID: id, IsBookmarked: bookmarked})
}
