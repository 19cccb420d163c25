package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/craftaddis/whisper/internal/adapters/dataset"
	"github.com/craftaddis/whisper/internal/domain/model"
)

// InMemoryTracker implements Tracker over the seed collections of a
// Dataset. One RWMutex guards all overlays: the engine is effectively
// single-actor, and when it is not, serializing mutations preserves the
// transition and counter invariants without finer-grained locking.
type InMemoryTracker struct {
	mu sync.RWMutex

	matches    []model.WhisperMatch // canonical order, Status kept current
	matchIndex map[string]int

	partnerships []model.TrialPartnership // overlay applied in place
	partnerIndex map[string]int
	threads      map[string][]model.ChatMessage

	notifications []model.AppNotification
	readSet       map[string]bool

	sessionIDs map[string]bool
	bookmarks  map[string]bool

	newID func() string
}

// NewInMemoryTracker snapshots the base collections from ds and starts
// tracking overlays on top of them.
func NewInMemoryTracker(ctx context.Context, ds dataset.Dataset, opts ...Option) *InMemoryTracker {
	t := &InMemoryTracker{
		matches:       ds.Matches(ctx),
		partnerships:  ds.Partnerships(ctx),
		notifications: ds.Notifications(ctx),
		matchIndex:    make(map[string]int),
		partnerIndex:  make(map[string]int),
		threads:       make(map[string][]model.ChatMessage),
		readSet:       make(map[string]bool),
		sessionIDs:    make(map[string]bool),
		bookmarks:     make(map[string]bool),
		newID:         func() string { return uuid.New().String() },
	}
	for i, m := range t.matches {
		t.matchIndex[m.ID] = i
	}
	for i, p := range t.partnerships {
		t.partnerIndex[p.ID] = i
		if thread, err := ds.Thread(ctx, p.ID); err == nil {
			t.threads[p.ID] = thread
		}
	}
	for _, s := range ds.Sessions(ctx) {
		t.sessionIDs[s.ID] = true
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *InMemoryTracker) Matches(_ context.Context) []model.WhisperMatch {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.WhisperMatch, len(t.matches))
	copy(out, t.matches)
	return out
}

func (t *InMemoryTracker) Status(_ context.Context, matchID string) (model.MatchStatus, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.matchIndex[matchID]
	if !ok {
		return "", ErrNotFound
	}
	return t.matches[i].Status, nil
}

func (t *InMemoryTracker) MarkViewed(_ context.Context, matchID string) (model.MatchStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.matchIndex[matchID]
	if !ok {
		return "", ErrNotFound
	}
	if t.matches[i].Status == model.MatchNew {
		t.matches[i].Status = model.MatchViewed
	}
	return t.matches[i].Status, nil
}

func (t *InMemoryTracker) Connect(_ context.Context, matchID string, now time.Time) (model.TrialPartnership, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.matchIndex[matchID]
	if !ok {
		return model.TrialPartnership{}, ErrNotFound
	}
	m := t.matches[i]
	if m.Status.Terminal() {
		return model.TrialPartnership{}, &TransitionError{ID: matchID, From: m.Status, To: model.MatchConnected}
	}

	t.matches[i].Status = model.MatchConnected

	p := model.TrialPartnership{
		ID:            t.newID(),
		Partner:       m.User,
		Status:        model.PartnershipActive,
		MyIntent:      m.MyIntent,
		PartnerIntent: m.TheirIntent,
		LastMessageAt: now,
		CreatedAt:     now,
	}
	t.partnerIndex[p.ID] = len(t.partnerships)
	t.partnerships = append(t.partnerships, p)
	t.threads[p.ID] = nil
	return p, nil
}

func (t *InMemoryTracker) Dismiss(_ context.Context, matchID string) (model.MatchStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.matchIndex[matchID]
	if !ok {
		return "", ErrNotFound
	}
	if s := t.matches[i].Status; s.Terminal() && s != model.MatchDismissed {
		return "", &TransitionError{ID: matchID, From: s, To: model.MatchDismissed}
	}
	t.matches[i].Status = model.MatchDismissed
	return model.MatchDismissed, nil
}

func (t *InMemoryTracker) ToggleBookmark(_ context.Context, sessionID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.sessionIDs[sessionID] {
		return false, ErrNotFound
	}
	if t.bookmarks[sessionID] {
		delete(t.bookmarks, sessionID)
		return false, nil
	}
	t.bookmarks[sessionID] = true
	return true, nil
}

func (t *InMemoryTracker) IsBookmarked(_ context.Context, sessionID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bookmarks[sessionID]
}

func (t *InMemoryTracker) Bookmarks(_ context.Context) map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySet(t.bookmarks)
}

func (t *InMemoryTracker) MarkRead(_ context.Context, notificationID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.notificationExists(notificationID) {
		return ErrNotFound
	}
	t.readSet[notificationID] = true
	return nil
}

func (t *InMemoryTracker) MarkAllRead(_ context.Context) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	marked := 0
	for _, n := range t.notifications {
		if !t.readSet[n.ID] {
			t.readSet[n.ID] = true
			marked++
		}
	}
	return marked
}

func (t *InMemoryTracker) IsRead(_ context.Context, notificationID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.readSet[notificationID]
}

func (t *InMemoryTracker) ReadSet(_ context.Context) map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySet(t.readSet)
}

func (t *InMemoryTracker) Partnerships(_ context.Context) []model.TrialPartnership {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.TrialPartnership, len(t.partnerships))
	copy(out, t.partnerships)
	return out
}

func (t *InMemoryTracker) Partnership(_ context.Context, partnershipID string) (model.TrialPartnership, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.partnerIndex[partnershipID]
	if !ok {
		return model.TrialPartnership{}, ErrNotFound
	}
	return t.partnerships[i], nil
}

func (t *InMemoryTracker) Thread(_ context.Context, partnershipID string) ([]model.ChatMessage, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.partnerIndex[partnershipID]; !ok {
		return nil, ErrNotFound
	}
	thread := t.threads[partnershipID]
	out := make([]model.ChatMessage, len(thread))
	copy(out, thread)
	return out, nil
}

func (t *InMemoryTracker) AppendMessage(_ context.Context, partnershipID string, msg model.ChatMessage) (model.TrialPartnership, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.partnerIndex[partnershipID]
	if !ok {
		return model.TrialPartnership{}, ErrNotFound
	}
	if err := model.ValidateMessageText(msg.Text); err != nil {
		return model.TrialPartnership{}, err
	}
	if msg.ID == "" {
		msg.ID = t.newID()
	}

	t.threads[partnershipID] = append(t.threads[partnershipID], msg)
	t.partnerships[i].LastMessage = msg.Text
	t.partnerships[i].LastMessageAt = msg.SentAt
	if !msg.IsOwn {
		t.partnerships[i].UnreadCount++
	}
	return t.partnerships[i], nil
}

func (t *InMemoryTracker) OpenThread(_ context.Context, partnershipID string) (model.TrialPartnership, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.partnerIndex[partnershipID]
	if !ok {
		return model.TrialPartnership{}, ErrNotFound
	}
	t.partnerships[i].UnreadCount = 0
	return t.partnerships[i], nil
}

func (t *InMemoryTracker) StatusCounts(_ context.Context) map[model.MatchStatus]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := make(map[model.MatchStatus]int, 4)
	for _, m := range t.matches {
		counts[m.Status]++
	}
	return counts
}

// notificationExists must be called with the lock held.
func (t *InMemoryTracker) notificationExists(id string) bool {
	for _, n := range t.notifications {
		if n.ID == id {
			return true
		}
	}
	return false
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
