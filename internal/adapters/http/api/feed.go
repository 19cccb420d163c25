// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/craftaddis/whisper/internal/domain/matching"
)

// FeedHandler handles whisper feed requests.
type FeedHandler struct {
	deps Dependencies
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(deps Dependencies) *FeedHandler {
	return &FeedHandler{deps: deps}
}

// HandleGetFeed handles GET /feed?search=&category= requests.
// Both parameters are optional; an absent or "All" category means no
// category narrowing.
func (h *FeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	q := matching.Query{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	if q.Category == "" {
		q.Category = matching.CategoryAll
	}
	views := h.deps.Feed(r.Context(), q)
	writeJSON(w, http.StatusOK, views)
}
