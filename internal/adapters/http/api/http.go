// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftaddis/whisper/internal/adapters/dataset"
	"github.com/craftaddis/whisper/internal/adapters/state"
	"github.com/craftaddis/whisper/internal/domain/aggregate"
	"github.com/craftaddis/whisper/internal/domain/matching"
	"github.com/craftaddis/whisper/internal/domain/model"
	"github.com/craftaddis/whisper/internal/domain/timeline"
	"github.com/craftaddis/whisper/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	// Signed-in attendee
	CurrentUser(ctx context.Context) model.Profile

	// Feed queries
	Feed(ctx context.Context, q matching.Query) []types.MatchView

	// Match lifecycle commands
	MarkViewed(ctx context.Context, matchID string) (model.MatchStatus, error)
	Connect(ctx context.Context, matchID string) (model.TrialPartnership, error)
	Dismiss(ctx context.Context, matchID string) (model.MatchStatus, error)

	// Partnerships and threads
	Partnerships(ctx context.Context) []model.TrialPartnership
	Partnership(ctx context.Context, partnershipID string) (model.TrialPartnership, error)
	ThreadGroups(ctx context.Context, partnershipID string) ([]timeline.Group[model.ChatMessage], error)
	AppendMessage(ctx context.Context, partnershipID, senderID, text string, isOwn bool) (model.TrialPartnership, error)
	OpenThread(ctx context.Context, partnershipID string) (model.TrialPartnership, error)

	// Schedule
	Sessions(ctx context.Context, day int, sessionType string, bookmarkedOnly bool) []types.SessionView
	ToggleBookmark(ctx context.Context, sessionID string) (bool, error)

	// Notifications
	Notifications(ctx context.Context) []timeline.Group[types.NotificationView]
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) int

	// Livestream room
	EventChat(ctx context.Context) []model.EventChatMessage

	// Navigation badges
	Badges(ctx context.Context) aggregate.Badges
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	feedHandler         *FeedHandler
	matchHandler        *MatchHandler
	partnershipHandler  *PartnershipHandler
	scheduleHandler     *ScheduleHandler
	notificationHandler *NotificationHandler
	badgesHandler       *BadgesHandler
	eventChatHandler    *EventChatHandler
	profileHandler      *ProfileHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		feedHandler:         NewFeedHandler(deps),
		matchHandler:        NewMatchHandler(deps),
		partnershipHandler:  NewPartnershipHandler(deps),
		scheduleHandler:     NewScheduleHandler(deps),
		notificationHandler: NewNotificationHandler(deps),
		badgesHandler:       NewBadgesHandler(deps),
		eventChatHandler:    NewEventChatHandler(deps),
		profileHandler:      NewProfileHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /me", MetricsMiddleware(s.profileHandler.HandleGetMe, "me"))
	mux.HandleFunc("GET /feed", MetricsMiddleware(s.feedHandler.HandleGetFeed, "feed"))
	mux.HandleFunc("POST /matches/{id}/viewed", MetricsMiddleware(s.matchHandler.HandleMarkViewed, "match_viewed"))
	mux.HandleFunc("POST /matches/{id}/connect", MetricsMiddleware(s.matchHandler.HandleConnect, "match_connect"))
	mux.HandleFunc("POST /matches/{id}/dismiss", MetricsMiddleware(s.matchHandler.HandleDismiss, "match_dismiss"))

	mux.HandleFunc("GET /partnerships", MetricsMiddleware(s.partnershipHandler.HandleList, "partnerships"))
	mux.HandleFunc("GET /partnerships/{id}/messages", MetricsMiddleware(s.partnershipHandler.HandleGetMessages, "partnership_messages"))
	mux.HandleFunc("POST /partnerships/{id}/messages", MetricsMiddleware(s.partnershipHandler.HandlePostMessage, "partnership_post_message"))
	mux.HandleFunc("POST /partnerships/{id}/open", MetricsMiddleware(s.partnershipHandler.HandleOpen, "partnership_open"))

	mux.HandleFunc("GET /sessions", MetricsMiddleware(s.scheduleHandler.HandleGetSessions, "sessions"))
	mux.HandleFunc("POST /sessions/{id}/bookmark", MetricsMiddleware(s.scheduleHandler.HandleToggleBookmark, "session_bookmark"))

	mux.HandleFunc("GET /notifications", MetricsMiddleware(s.notificationHandler.HandleList, "notifications"))
	mux.HandleFunc("POST /notifications/{id}/read", MetricsMiddleware(s.notificationHandler.HandleMarkRead, "notification_read"))
	mux.HandleFunc("POST /notifications/read-all", MetricsMiddleware(s.notificationHandler.HandleMarkAllRead, "notifications_read_all"))

	mux.HandleFunc("GET /event-chat", MetricsMiddleware(s.eventChatHandler.HandleList, "event_chat"))
	mux.HandleFunc("GET /badges", MetricsMiddleware(s.badgesHandler.HandleGetBadges, "badges"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates engine error kinds onto HTTP statuses.
// NotFound -> 404, InvalidTransition -> 409, Validation -> 400.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, state.ErrNotFound) || errors.Is(err, dataset.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, state.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err)
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
