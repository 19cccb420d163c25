// Package model contains domain entities passed between layers.
//
// Base entities are supplied read-only by a dataset provider for the
// engine's lifetime. Mutable per-entity flags (match status, bookmarks,
// read sets, unread counters) live in the state tracker, never here.
package model

import "time"

// Stamp records participation or achievement earned at an event.
// Immutable once issued; owned by a Profile.
type Stamp struct {
	ID          string    `json:"id"`
	Type        StampType `json:"type"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	EventName   string    `json:"event_name"`
	IssuedAt    time.Time `json:"issued_at"`
}

// PortfolioLink points at an external portfolio presence.
type PortfolioLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// Profile is an attendee passport.
type Profile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Discipline     Discipline      `json:"discipline"`
	Bio            string          `json:"bio"`
	Location       string          `json:"location"`
	AvatarURL      string          `json:"avatar_url"`
	CurrentIntent  string          `json:"current_intent"` // free text, at most MaxIntentLength chars
	PortfolioLinks []PortfolioLink `json:"portfolio_links"`
	Stamps         []Stamp         `json:"stamps"`
	IsLocal        bool            `json:"is_local"` // physically in venue
	IsOnline       bool            `json:"is_online"`
	DoNotDisturb   bool            `json:"do_not_disturb"`
	JoinedAt       time.Time       `json:"joined_at"`
}

// WhisperMatch is a ranked candidate connection based on intent overlap.
// The candidate Profile is shared, not owned.
type WhisperMatch struct {
	ID              string      `json:"id"`
	User            Profile     `json:"user"`
	MatchScore      float64     `json:"match_score"` // 0..100
	MyIntent        string      `json:"my_intent"`
	TheirIntent     string      `json:"their_intent"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Status          MatchStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// TrialPartnership is a private messaging relationship formed by
// connecting on a match. Intent snapshots are captured at formation
// and immutable thereafter.
type TrialPartnership struct {
	ID            string            `json:"id"`
	Partner       Profile           `json:"partner"`
	Status        PartnershipStatus `json:"status"`
	MyIntent      string            `json:"my_intent"`
	PartnerIntent string            `json:"partner_intent"`
	LastMessage   string            `json:"last_message"`
	LastMessageAt time.Time         `json:"last_message_at"`
	UnreadCount   int               `json:"unread_count"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ChatMessage is one entry in a private partnership thread.
// Immutable once sent; threads are append-only.
type ChatMessage struct {
	ID       string    `json:"id"`
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
	IsOwn    bool      `json:"is_own"`
}

// EventChatSender is the denormalized sender shown in the public room.
type EventChatSender struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Discipline Discipline `json:"discipline"`
	AvatarURL  string     `json:"avatar_url"`
	IsLocal    bool       `json:"is_local"`
}

// EventChatMessage is one entry in the public livestream room.
type EventChatMessage struct {
	ID     string          `json:"id"`
	Sender EventChatSender `json:"sender"`
	Text   string          `json:"text"`
	SentAt time.Time       `json:"sent_at"`
	IsOwn  bool            `json:"is_own"`
}

// Speaker is a session presenter.
type Speaker struct {
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
	AvatarURL  string `json:"avatar_url"`
}

// ScheduleSession is one slot in the festival programme. IsHappeningNow
// is derived externally from wall clock vs start/end; the engine treats
// it as given. The bookmark flag lives in the state tracker.
type ScheduleSession struct {
	ID             string      `json:"id"`
	Day            int         `json:"day"` // 1, 2 or 3
	StartTime      string      `json:"start_time"`
	EndTime        string      `json:"end_time"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Type           SessionType `json:"type"`
	Stage          Stage       `json:"stage"`
	Speakers       []Speaker   `json:"speakers"`
	IsHappeningNow bool        `json:"is_happening_now"`
}

// AppNotification is an in-app notification. The read flag lives in the
// state tracker.
type AppNotification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	CreatedAt   time.Time        `json:"created_at"`
	ReferenceID string           `json:"reference_id,omitempty"`
}
