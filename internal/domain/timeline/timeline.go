// Package timeline buckets chronologically ordered items into labeled
// display groups and formats relative timestamps.
//
// Every function takes "now" as an explicit argument; this package
// never reads the wall clock, which keeps grouping deterministic and
// testable.
package timeline

import (
	"fmt"
	"time"
)

// Bucket labels.
const (
	labelToday     = "Today"
	labelYesterday = "Yesterday"
	labelEarlier   = "Earlier"
)

const recencyWindow = 24 * time.Hour

// Group is an ordered run of items under one display label.
type Group[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// GroupByCalendarDay buckets items by whole-calendar-day difference
// from now: "Today", "Yesterday", or a short month/day label. Items are
// assumed sorted ascending by timestamp; consecutive items sharing a
// day merge into one group and input order is preserved. Non-adjacent
// runs of the same day stay separate groups.
func GroupByCalendarDay[T any](items []T, ts func(T) time.Time, now time.Time) []Group[T] {
	groups := make([]Group[T], 0)
	for _, it := range items {
		label := DayLabel(ts(it), now)
		if n := len(groups); n > 0 && groups[n-1].Label == label {
			groups[n-1].Items = append(groups[n-1].Items, it)
			continue
		}
		groups = append(groups, Group[T]{Label: label, Items: []T{it}})
	}
	return groups
}

// GroupByRecency splits items into a trailing-24h "Today" bucket and an
// "Earlier" bucket. Unlike GroupByCalendarDay this is a rolling window,
// not a calendar day. Empty buckets are omitted.
func GroupByRecency[T any](items []T, ts func(T) time.Time, now time.Time) []Group[T] {
	var today, earlier []T
	for _, it := range items {
		if now.Sub(ts(it)) < recencyWindow {
			today = append(today, it)
		} else {
			earlier = append(earlier, it)
		}
	}
	groups := make([]Group[T], 0, 2)
	if len(today) > 0 {
		groups = append(groups, Group[T]{Label: labelToday, Items: today})
	}
	if len(earlier) > 0 {
		groups = append(groups, Group[T]{Label: labelEarlier, Items: earlier})
	}
	return groups
}

// DayLabel formats a timestamp's calendar day relative to now.
func DayLabel(t, now time.Time) string {
	switch calendarDaysBetween(t, now) {
	case 0:
		return labelToday
	case 1:
		return labelYesterday
	default:
		return t.Format("Jan 2")
	}
}

// Relative formats elapsed time with fixed thresholds: minutes under an
// hour, hours under a day, days otherwise.
func Relative(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}
	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < recencyWindow:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}

// calendarDaysBetween counts whole calendar days from t's day to now's
// day, not 24h periods. A message at 23:59 is "Yesterday" one minute
// later.
func calendarDaysBetween(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	tDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	nDay := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(nDay.Sub(tDay).Hours() / 24)
}
