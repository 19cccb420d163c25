// Package dataset defines the provider contract for the engine's base
// collections and a built-in seed implementation.
//
// The engine consumes already-materialized, read-only collections; it
// never performs I/O of its own. A provider backed by a remote API can
// replace Seed without touching any engine contract.
package dataset

import (
	"context"

	"github.com/craftaddis/whisper/internal/domain/model"
)

// Dataset supplies the immutable base collections. Accessors return
// defensive copies where callers could otherwise alias internal slices.
type Dataset interface {
	// CurrentUser returns the signed-in attendee profile.
	CurrentUser(ctx context.Context) model.Profile

	// Profiles returns every known attendee profile.
	Profiles(ctx context.Context) []model.Profile

	// Matches returns the whisper-match feed in canonical order:
	// match score descending.
	Matches(ctx context.Context) []model.WhisperMatch

	// Partnerships returns the trial partnerships at seed time.
	Partnerships(ctx context.Context) []model.TrialPartnership

	// Thread returns the seed message history for a partnership.
	// Returns ErrNotFound for an unknown partnership id.
	Thread(ctx context.Context, partnershipID string) ([]model.ChatMessage, error)

	// Sessions returns the full festival programme.
	Sessions(ctx context.Context) []model.ScheduleSession

	// Notifications returns notifications sorted newest first.
	Notifications(ctx context.Context) []model.AppNotification

	// EventChat returns the public livestream room history.
	EventChat(ctx context.Context) []model.EventChatMessage
}
