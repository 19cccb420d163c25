package timeline_test

import (
	"testing"
	"time"

	"github.com/craftaddis/whisper/internal/domain/timeline"
	. "github.com/smartystreets/goconvey/convey"
)

type stamped struct {
	id string
	at time.Time
}

func at(s stamped) time.Time { return s.at }

func TestGroupByCalendarDay(t *testing.T) {
	Convey("Given a fixed now", t, func() {
		now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

		Convey("When items span several calendar days, ascending", func() {
			items := []stamped{
				{"a", time.Date(2026, time.February, 26, 9, 0, 0, 0, time.UTC)},
				{"b", time.Date(2026, time.February, 26, 18, 0, 0, 0, time.UTC)},
				{"c", time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC)},
				{"d", time.Date(2026, time.March, 1, 0, 5, 0, 0, time.UTC)},
				{"e", time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)},
			}

			groups := timeline.GroupByCalendarDay(items, at, now)

			Convey("Then adjacent same-day items merge into one labeled group", func() {
				So(groups, ShouldHaveLength, 3)
				So(groups[0].Label, ShouldEqual, "Feb 26")
				So(groups[0].Items, ShouldHaveLength, 2)
				So(groups[1].Label, ShouldEqual, "Yesterday")
				So(groups[1].Items[0].id, ShouldEqual, "c")
				So(groups[2].Label, ShouldEqual, "Today")
				So(groups[2].Items, ShouldHaveLength, 2)
			})

			Convey("And input order is preserved within a group", func() {
				So(groups[2].Items[0].id, ShouldEqual, "d")
				So(groups[2].Items[1].id, ShouldEqual, "e")
			})
		})

		Convey("When grouping uses calendar days, not 24h windows", func() {
			// 11 hours ago but the previous calendar day.
			items := []stamped{{"x", time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC)}}
			groups := timeline.GroupByCalendarDay(items, at, now)
			So(groups[0].Label, ShouldEqual, "Yesterday")
		})

		Convey("When non-adjacent runs share a day", func() {
			// Out-of-order input: the engine must not merge across runs.
			items := []stamped{
				{"a", time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)},
				{"b", time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC)},
				{"c", time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
			}
			groups := timeline.GroupByCalendarDay(items, at, now)
			So(groups, ShouldHaveLength, 3)
			So(groups[0].Label, ShouldEqual, "Today")
			So(groups[1].Label, ShouldEqual, "Yesterday")
			So(groups[2].Label, ShouldEqual, "Today")
		})

		Convey("When the input is empty", func() {
			So(timeline.GroupByCalendarDay(nil, at, now), ShouldBeEmpty)
		})
	})
}

func TestGroupByRecency(t *testing.T) {
	Convey("Given a fixed now", t, func() {
		now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

		Convey("When items straddle the 24h window", func() {
			items := []stamped{
				{"n1", now.Add(-10 * time.Minute)},
				{"n2", now.Add(-26 * time.Hour)},
			}
			groups := timeline.GroupByRecency(items, at, now)

			Convey("Then Today is a rolling window and Earlier holds the rest", func() {
				So(groups, ShouldHaveLength, 2)
				So(groups[0].Label, ShouldEqual, "Today")
				So(groups[0].Items[0].id, ShouldEqual, "n1")
				So(groups[1].Label, ShouldEqual, "Earlier")
				So(groups[1].Items[0].id, ShouldEqual, "n2")
			})
		})

		Convey("When everything is recent", func() {
			items := []stamped{{"n1", now.Add(-23 * time.Hour)}}
			groups := timeline.GroupByRecency(items, at, now)

			Convey("Then the empty Earlier bucket is omitted", func() {
				So(groups, ShouldHaveLength, 1)
				So(groups[0].Label, ShouldEqual, "Today")
			})
		})

		Convey("When everything is old", func() {
			items := []stamped{{"n1", now.Add(-48 * time.Hour)}}
			groups := timeline.GroupByRecency(items, at, now)
			So(groups, ShouldHaveLength, 1)
			So(groups[0].Label, ShouldEqual, "Earlier")
		})

		Convey("When the input is empty", func() {
			So(timeline.GroupByRecency(nil, at, now), ShouldBeEmpty)
		})
	})
}

func TestRelative(t *testing.T) {
	Convey("Given a fixed now", t, func() {
		now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

		Convey("Then the fixed thresholds apply", func() {
			So(timeline.Relative(now.Add(-5*time.Minute), now), ShouldEqual, "5m ago")
			So(timeline.Relative(now.Add(-59*time.Minute), now), ShouldEqual, "59m ago")
			So(timeline.Relative(now.Add(-60*time.Minute), now), ShouldEqual, "1h ago")
			So(timeline.Relative(now.Add(-23*time.Hour), now), ShouldEqual, "23h ago")
			So(timeline.Relative(now.Add(-24*time.Hour), now), ShouldEqual, "1d ago")
			So(timeline.Relative(now.Add(-80*time.Hour), now), ShouldEqual, "3d ago")
		})

		Convey("Then slightly-future timestamps read as just now", func() {
			So(timeline.Relative(now.Add(time.Minute), now), ShouldEqual, "0m ago")
		})
	})
}
