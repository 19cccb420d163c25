// Package types contains read-model shapes shared between the service
// facade and the HTTP layer.
package types

import (
	"time"

	"github.com/craftaddis/whisper/internal/domain/matching"
	"github.com/craftaddis/whisper/internal/domain/model"
)

// MatchView is one row of the whisper feed: the base match joined with
// its live lifecycle status and derived strength tier.
type MatchView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Discipline  model.Discipline  `json:"discipline"`
	AvatarURL   string            `json:"avatar_url"`
	Location    string            `json:"location"`
	IsLocal     bool              `json:"is_local"`
	IsOnline    bool              `json:"is_online"`
	Score       float64           `json:"score"`
	Tier        matching.Tier     `json:"tier"`
	MyIntent    string            `json:"my_intent"`
	TheirIntent string            `json:"their_intent"`
	Keywords    []string          `json:"keywords"`
	Status      model.MatchStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// SessionView is a schedule session joined with its bookmark flag.
type SessionView struct {
	model.ScheduleSession
	IsBookmarked bool `json:"is_bookmarked"`
}

// NotificationView is a notification joined with its read flag and a
// pre-formatted relative age.
type NotificationView struct {
	ID          string                 `json:"id"`
	Type        model.NotificationType `json:"type"`
	Title       string                 `json:"title"`
	Body        string                 `json:"body"`
	IsRead      bool                   `json:"is_read"`
	When        string                 `json:"when"`
	ReferenceID string                 `json:"reference_id,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
