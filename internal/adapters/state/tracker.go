// Package state owns every mutable overlay layered over the read-only
// base collections: match lifecycle status, session bookmarks, the
// notification read set, partnership threads and unread counters.
//
// Ranking, grouping and aggregation components only ever read this
// state; all mutation flows through a Tracker. Keeping the overlays
// here instead of on the shared records avoids aliasing bugs when one
// profile or session is referenced from several collections.
package state

import (
	"context"
	"time"

	"github.com/craftaddis/whisper/internal/domain/model"
)

// Tracker manages lifecycle state and per-entity overlay flags.
//
// Commands are synchronous and atomic: they either apply fully or
// return a typed error with state untouched. Unknown ids surface as
// ErrNotFound, rejected lifecycle moves as ErrInvalidTransition.
type Tracker interface {
	// Matches returns the base feed with current lifecycle status
	// applied, in canonical (score descending) order.
	Matches(ctx context.Context) []model.WhisperMatch

	// Status returns the current lifecycle state of a match.
	Status(ctx context.Context, matchID string) (model.MatchStatus, error)

	// MarkViewed moves new -> viewed. A no-op for matches already
	// viewed, connected or dismissed.
	MarkViewed(ctx context.Context, matchID string) (model.MatchStatus, error)

	// Connect moves new|viewed -> connected and mints the resulting
	// trial partnership with intents copied from the match and a zero
	// unread counter. Connected and dismissed are terminal, so a
	// second Connect fails with ErrInvalidTransition rather than
	// minting a duplicate partnership.
	Connect(ctx context.Context, matchID string, now time.Time) (model.TrialPartnership, error)

	// Dismiss moves new|viewed -> dismissed. Fails with
	// ErrInvalidTransition from connected.
	Dismiss(ctx context.Context, matchID string) (model.MatchStatus, error)

	// ToggleBookmark flips bookmark membership for a session id and
	// returns the new state. Each call flips exactly once.
	ToggleBookmark(ctx context.Context, sessionID string) (bool, error)

	// IsBookmarked reports bookmark membership.
	IsBookmarked(ctx context.Context, sessionID string) bool

	// Bookmarks returns a copy of the bookmark set.
	Bookmarks(ctx context.Context) map[string]bool

	// MarkRead adds one notification id to the read set. Reads are
	// monotone: there is no unread API.
	MarkRead(ctx context.Context, notificationID string) error

	// MarkAllRead marks every current notification read in one atomic
	// update and returns how many were newly marked. Idempotent.
	MarkAllRead(ctx context.Context) int

	// IsRead reports notification read membership.
	IsRead(ctx context.Context, notificationID string) bool

	// ReadSet returns a copy of the notification read set.
	ReadSet(ctx context.Context) map[string]bool

	// Partnerships returns partnerships with overlay state (last
	// message, unread counter) applied. Seed order is preserved;
	// partnerships minted by Connect append at the end.
	Partnerships(ctx context.Context) []model.TrialPartnership

	// Partnership returns one partnership with overlay applied.
	Partnership(ctx context.Context, partnershipID string) (model.TrialPartnership, error)

	// Thread returns the append-only message history.
	Thread(ctx context.Context, partnershipID string) ([]model.ChatMessage, error)

	// AppendMessage appends msg to the thread, updates the last-message
	// preview, and increments the unread counter iff the message is not
	// own-authored. Rejects empty text with a validation error.
	AppendMessage(ctx context.Context, partnershipID string, msg model.ChatMessage) (model.TrialPartnership, error)

	// OpenThread resets the unread counter to zero atomically with the
	// view transition; messages appended afterwards count again.
	OpenThread(ctx context.Context, partnershipID string) (model.TrialPartnership, error)

	// StatusCounts returns how many matches sit in each lifecycle
	// state, for stats and metrics.
	StatusCounts(ctx context.Context) map[model.MatchStatus]int
}
