// Package aggregate computes the derived counts behind navigation
// badges. Every count is a direct recount of the underlying entities on
// each call; there are no independently maintained running totals that
// could drift from the source of truth.
package aggregate

import "github.com/craftaddis/whisper/internal/domain/model"

// Badges bundles the counts consumed by navigation chrome.
type Badges struct {
	UnreadMessages      int `json:"unread_messages"`
	UnreadNotifications int `json:"unread_notifications"`
	BookmarkedSessions  int `json:"bookmarked_sessions"`
}

// TotalUnread sums unread counters across all partnerships.
func TotalUnread(partnerships []model.TrialPartnership) int {
	total := 0
	for _, p := range partnerships {
		total += p.UnreadCount
	}
	return total
}

// UnreadNotifications counts notifications whose id is absent from the
// read set.
func UnreadNotifications(notifications []model.AppNotification, readSet map[string]bool) int {
	count := 0
	for _, n := range notifications {
		if !readSet[n.ID] {
			count++
		}
	}
	return count
}

// BookmarkedCount counts sessions whose id is in the bookmark set.
// Stale bookmark ids with no matching session do not count.
func BookmarkedCount(sessions []model.ScheduleSession, bookmarkSet map[string]bool) int {
	count := 0
	for _, s := range sessions {
		if bookmarkSet[s.ID] {
			count++
		}
	}
	return count
}
