package state

import (
	"errors"
	"fmt"

	"github.com/craftaddis/whisper/internal/domain/model"
)

// Sentinel kinds for tracker errors.
var (
	// ErrNotFound means a command referenced an unknown entity id.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidTransition means the match state machine rejected the
	// requested move. State is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionError identifies a rejected lifecycle move.
type TransitionError struct {
	ID   string
	From model.MatchStatus
	To   model.MatchStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition for match %s: %s -> %s", e.ID, e.From, e.To)
}

// Unwrap lets callers use errors.Is(err, ErrInvalidTransition).
func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
