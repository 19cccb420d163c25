// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/craftaddis/whisper/internal/adapters/dataset"
	"github.com/craftaddis/whisper/internal/adapters/state"
	"github.com/craftaddis/whisper/internal/domain/aggregate"
	"github.com/craftaddis/whisper/internal/domain/matching"
	"github.com/craftaddis/whisper/internal/domain/model"
	"github.com/craftaddis/whisper/internal/domain/timeline"
	"github.com/craftaddis/whisper/internal/domain/types"
	"github.com/craftaddis/whisper/pkg/logger"
	"github.com/craftaddis/whisper/pkg/metrics"
)

// Service wires the dataset provider, the state tracker and the
// matching engine behind one synchronous facade. Every query is a pure
// function of (base collections, overlay state, parameters); every
// command completes before it returns.
type Service struct {
	mu sync.RWMutex

	data    dataset.Dataset
	tracker state.Tracker
	engine  *matching.Engine

	// Configuration
	tierHigh   float64
	tierMedium float64
	now        func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataset replaces the built-in seed provider.
func WithDataset(ds dataset.Dataset) Option {
	return func(s *Service) {
		if ds != nil {
			s.data = ds
		}
	}
}

// WithTierThresholds sets the high/medium tier score cutoffs.
func WithTierThresholds(high, medium float64) Option {
	return func(s *Service) {
		if high > medium && medium > 0 {
			s.tierHigh = high
			s.tierMedium = medium
		}
	}
}

// WithClock overrides the time source used for minting timestamps and
// temporal grouping. Tests use this for determinism.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		tierHigh:   85,
		tierMedium: 70,
		now:        time.Now,
		logger:     nil, // resolved on Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.data == nil {
		s.data = dataset.Seed(s.now())
		s.logger.Info(ctx, "using built-in seed dataset")
	}
	s.tracker = state.NewInMemoryTracker(ctx, s.data)
	s.engine = matching.New(matching.WithTierThresholds(s.tierHigh, s.tierMedium))

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("matches", len(s.tracker.Matches(ctx))),
		logger.Int("sessions", len(s.data.Sessions(ctx))),
	)
	return nil
}

// Stop shuts the service down. State is session-scoped and simply
// dropped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// CurrentUser returns the signed-in attendee profile.
func (s *Service) CurrentUser(ctx context.Context) model.Profile {
	return s.data.CurrentUser(ctx)
}

// Feed returns the whisper feed narrowed by q, in canonical score
// order, with live status and derived tier per row.
func (s *Service) Feed(ctx context.Context, q matching.Query) []types.MatchView {
	matches := s.engine.Filter(s.tracker.Matches(ctx), q)
	views := make([]types.MatchView, len(matches))
	for i, m := range matches {
		views[i] = types.MatchView{
			ID:          m.ID,
			Name:        m.User.Name,
			Discipline:  m.User.Discipline,
			AvatarURL:   m.User.AvatarURL,
			Location:    m.User.Location,
			IsLocal:     m.User.IsLocal,
			IsOnline:    m.User.IsOnline,
			Score:       model.ClampScore(m.MatchScore),
			Tier:        s.engine.TierOf(m.MatchScore),
			MyIntent:    m.MyIntent,
			TheirIntent: m.TheirIntent,
			Keywords:    s.engine.KeywordChips(m),
			Status:      m.Status,
			CreatedAt:   m.CreatedAt,
		}
	}
	return views
}

// MarkViewed moves a match from new to viewed.
func (s *Service) MarkViewed(ctx context.Context, matchID string) (model.MatchStatus, error) {
	status, err := s.tracker.MarkViewed(ctx, matchID)
	if err != nil {
		return "", err
	}
	return status, nil
}

// Connect transitions a match to connected and returns the minted
// trial partnership.
func (s *Service) Connect(ctx context.Context, matchID string) (model.TrialPartnership, error) {
	p, err := s.tracker.Connect(ctx, matchID, s.now())
	if err != nil {
		if errors.Is(err, state.ErrInvalidTransition) {
			metrics.RecordTransitionRejected()
		}
		return model.TrialPartnership{}, err
	}
	metrics.RecordConnect()
	s.logger.Info(ctx, "match connected",
		logger.String("match_id", matchID),
		logger.String("partnership_id", p.ID),
	)
	return p, nil
}

// Dismiss transitions a match to dismissed.
func (s *Service) Dismiss(ctx context.Context, matchID string) (model.MatchStatus, error) {
	status, err := s.tracker.Dismiss(ctx, matchID)
	if err != nil {
		if errors.Is(err, state.ErrInvalidTransition) {
			metrics.RecordTransitionRejected()
		}
		return "", err
	}
	metrics.RecordDismiss()
	return status, nil
}

// Partnerships returns all partnerships with overlay state applied.
func (s *Service) Partnerships(ctx context.Context) []model.TrialPartnership {
	return s.tracker.Partnerships(ctx)
}

// Partnership returns one partnership by id.
func (s *Service) Partnership(ctx context.Context, partnershipID string) (model.TrialPartnership, error) {
	return s.tracker.Partnership(ctx, partnershipID)
}

// Thread returns a partnership's message history in send order.
func (s *Service) Thread(ctx context.Context, partnershipID string) ([]model.ChatMessage, error) {
	return s.tracker.Thread(ctx, partnershipID)
}

// ThreadGroups returns the thread bucketed by calendar day for display
// separators.
func (s *Service) ThreadGroups(ctx context.Context, partnershipID string) ([]timeline.Group[model.ChatMessage], error) {
	thread, err := s.tracker.Thread(ctx, partnershipID)
	if err != nil {
		return nil, err
	}
	return timeline.GroupByCalendarDay(thread, func(m model.ChatMessage) time.Time { return m.SentAt }, s.now()), nil
}

// AppendMessage appends a message to a partnership thread. Own-authored
// messages leave the unread counter alone; partner messages bump it.
func (s *Service) AppendMessage(ctx context.Context, partnershipID, senderID, text string, isOwn bool) (model.TrialPartnership, error) {
	msg := model.ChatMessage{
		SenderID: senderID,
		Text:     text,
		SentAt:   s.now(),
		IsOwn:    isOwn,
	}
	p, err := s.tracker.AppendMessage(ctx, partnershipID, msg)
	if err != nil {
		return model.TrialPartnership{}, err
	}
	metrics.RecordMessageAppended()
	return p, nil
}

// OpenThread resets a partnership's unread counter.
func (s *Service) OpenThread(ctx context.Context, partnershipID string) (model.TrialPartnership, error) {
	return s.tracker.OpenThread(ctx, partnershipID)
}

// Sessions returns the programme for a day, optionally narrowed by
// session type and bookmark state. Day 0 selects every day.
func (s *Service) Sessions(ctx context.Context, day int, sessionType string, bookmarkedOnly bool) []types.SessionView {
	views := make([]types.SessionView, 0)
	for _, sess := range s.data.Sessions(ctx) {
		if day != 0 && sess.Day != day {
			continue
		}
		if sessionType != "" && sessionType != "All" && string(sess.Type) != sessionType {
			continue
		}
		bookmarked := s.tracker.IsBookmarked(ctx, sess.ID)
		if bookmarkedOnly && !bookmarked {
			continue
		}
		views = append(views, types.SessionView{ScheduleSession: sess, IsBookmarked: bookmarked})
	}
	return views
}

// ToggleBookmark flips a session bookmark and returns the new state.
func (s *Service) ToggleBookmark(ctx context.Context, sessionID string) (bool, error) {
	return s.tracker.ToggleBookmark(ctx, sessionID)
}

// Notifications returns notifications bucketed into Today (trailing
// 24h) and Earlier, with read flags and relative ages applied.
func (s *Service) Notifications(ctx context.Context) []timeline.Group[types.NotificationView] {
	now := s.now()
	views := make([]types.NotificationView, 0)
	for _, n := range s.data.Notifications(ctx) {
		views = append(views, types.NotificationView{
			ID:          n.ID,
			Type:        n.Type,
			Title:       n.Title,
			Body:        n.Body,
			IsRead:      s.tracker.IsRead(ctx, n.ID),
			When:        timeline.Relative(n.CreatedAt, now),
			ReferenceID: n.ReferenceID,
			CreatedAt:   n.CreatedAt,
		})
	}
	return timeline.GroupByRecency(views, func(v types.NotificationView) time.Time { return v.CreatedAt }, now)
}

// MarkRead marks one notification read.
func (s *Service) MarkRead(ctx context.Context, notificationID string) error {
	return s.tracker.MarkRead(ctx, notificationID)
}

// MarkAllRead marks every notification read and returns how many were
// newly marked.
func (s *Service) MarkAllRead(ctx context.Context) int {
	return s.tracker.MarkAllRead(ctx)
}

// EventChat returns the public livestream room history.
func (s *Service) EventChat(ctx context.Context) []model.EventChatMessage {
	return s.data.EventChat(ctx)
}

// Badges recounts the navigation badge numbers from current state.
// Always a direct recount, never a cached running total.
func (s *Service) Badges(ctx context.Context) aggregate.Badges {
	b := aggregate.Badges{
		UnreadMessages:      aggregate.TotalUnread(s.tracker.Partnerships(ctx)),
		UnreadNotifications: aggregate.UnreadNotifications(s.data.Notifications(ctx), s.tracker.ReadSet(ctx)),
		BookmarkedSessions:  aggregate.BookmarkedCount(s.data.Sessions(ctx), s.tracker.Bookmarks(ctx)),
	}
	metrics.UpdateUnreadMessages(b.UnreadMessages)
	metrics.UpdateUnreadNotifications(b.UnreadNotifications)
	metrics.UpdateBookmarkedSessions(b.BookmarkedSessions)
	return b
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}
	if !s.started {
		return stats
	}

	counts := s.tracker.StatusCounts(ctx)
	for status, n := range counts {
		metrics.UpdateMatchStatus(string(status), n)
	}
	stats["matches"] = len(s.tracker.Matches(ctx))
	stats["matchStatus"] = counts
	stats["partnerships"] = len(s.tracker.Partnerships(ctx))
	stats["sessions"] = len(s.data.Sessions(ctx))
	stats["notifications"] = len(s.data.Notifications(ctx))
	return stats
}
