package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/craftaddis/whisper/internal/adapters/state"
	"github.com/craftaddis/whisper/internal/domain/matching"
	"github.com/craftaddis/whisper/internal/domain/model"
	"github.com/craftaddis/whisper/pkg/logger"
	"github.com/craftaddis/whisper/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func startedService(t *testing.T, now time.Time, opts ...Option) *Service {
	t.Helper()

	opts = append(opts, WithClock(func() time.Time { return now }))
	svc := New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceFeed(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service on the seed dataset", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When fetching the unfiltered feed", func() {
			views := svc.Feed(ctx, matching.Query{})

			Convey("Then every row carries status, tier and keywords", func() {
				So(len(views), ShouldEqual, 5)
				So(views[0].ID, ShouldEqual, "wm1")
				So(views[0].Tier, ShouldEqual, matching.TierHigh)
				So(views[0].Status, ShouldEqual, model.MatchNew)
				So(views[0].Keywords, ShouldContain, "creative coding")
				So(views[2].Tier, ShouldEqual, matching.TierMedium)
				So(views[4].Tier, ShouldEqual, matching.TierLow)
			})

			Convey("And canonical score order is preserved", func() {
				for i := 1; i < len(views); i++ {
					So(views[i].Score, ShouldBeLessThanOrEqualTo, views[i-1].Score)
				}
			})
		})

		Convey("When a command changes a match status", func() {
			_, err := svc.MarkViewed(ctx, "wm1")
			So(err, ShouldBeNil)

			Convey("Then the feed reflects it without reordering", func() {
				views := svc.Feed(ctx, matching.Query{})
				So(views[0].ID, ShouldEqual, "wm1")
				So(views[0].Status, ShouldEqual, model.MatchViewed)
			})
		})

		Convey("When thresholds are customized", func() {
			custom := startedService(t, now, WithTierThresholds(90, 80))
			views := custom.Feed(ctx, matching.Query{})
			So(views[0].Tier, ShouldEqual, matching.TierHigh)   // 92
			So(views[1].Tier, ShouldEqual, matching.TierMedium) // 87
			So(views[2].Tier, ShouldEqual, matching.TierLow)    // 76
		})
	})
}

func TestServiceConnect(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When connecting a new match", func() {
			before := len(svc.Partnerships(ctx))
			p, err := svc.Connect(ctx, "wm1")
			So(err, ShouldBeNil)

			Convey("Then exactly one partnership is minted", func() {
				So(len(svc.Partnerships(ctx)), ShouldEqual, before+1)
			})

			Convey("And intent snapshots are copied from the match", func() {
				So(p.Partner.ID, ShouldEqual, "u1")
				So(p.MyIntent, ShouldNotBeEmpty)
				So(p.PartnerIntent, ShouldEqual, p.Partner.CurrentIntent)
				So(p.UnreadCount, ShouldEqual, 0)
				So(p.CreatedAt.Equal(now), ShouldBeTrue)
			})

			Convey("And its thread starts empty", func() {
				thread, err := svc.Thread(ctx, p.ID)
				So(err, ShouldBeNil)
				So(thread, ShouldBeEmpty)
			})

			Convey("And connecting again fails without a second partnership", func() {
				_, err := svc.Connect(ctx, "wm1")
				So(err, ShouldNotBeNil)
				So(len(svc.Partnerships(ctx)), ShouldEqual, before+1)
			})
		})
	})
}

func TestServiceThreads(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When grouping a thread spanning two days", func() {
			groups, err := svc.ThreadGroups(ctx, "p1")
			So(err, ShouldBeNil)

			So(len(groups), ShouldEqual, 2)
			So(groups[0].Label, ShouldEqual, "Yesterday")
			So(groups[1].Label, ShouldEqual, "Today")
		})

		Convey("When appending a message as the partner", func() {
			p, err := svc.AppendMessage(ctx, "p1", "u1", "Bring the type specimens too", false)
			So(err, ShouldBeNil)

			Convey("Then preview and unread update together", func() {
				So(p.LastMessage, ShouldEqual, "Bring the type specimens too")
				So(p.LastMessageAt.Equal(now), ShouldBeTrue)
				So(p.UnreadCount, ShouldEqual, 3)
			})

			Convey("And opening the thread resets unread", func() {
				opened, err := svc.OpenThread(ctx, "p1")
				So(err, ShouldBeNil)
				So(opened.UnreadCount, ShouldEqual, 0)
			})
		})

		Convey("When appending whitespace", func() {
			_, err := svc.AppendMessage(ctx, "p1", "u0", "   \n ", true)
			So(err, ShouldNotBeNil)

			p, perr := svc.Partnership(ctx, "p1")
			So(perr, ShouldBeNil)
			So(p.LastMessage, ShouldEqual, "I can bring the projector tomorrow morning")
		})
	})
}

func TestServiceScheduleAndNotifications(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When listing sessions with filters", func() {
			So(len(svc.Sessions(ctx, 0, "", false)), ShouldEqual, 8)
			So(len(svc.Sessions(ctx, 2, "", false)), ShouldEqual, 2)
			So(len(svc.Sessions(ctx, 1, "Workshop", false)), ShouldEqual, 1)
			So(len(svc.Sessions(ctx, 0, "All", false)), ShouldEqual, 8)
			So(svc.Sessions(ctx, 0, "", true), ShouldBeEmpty)
		})

		Convey("When bookmarking a session", func() {
			on, err := svc.ToggleBookmark(ctx, "s5")
			So(err, ShouldBeNil)
			So(on, ShouldBeTrue)

			views := svc.Sessions(ctx, 2, "", false)
			for _, v := range views {
				So(v.IsBookmarked, ShouldEqual, v.ID == "s5")
			}
		})

		Convey("When listing notifications", func() {
			groups := svc.Notifications(ctx)

			So(len(groups), ShouldEqual, 2)
			So(groups[0].Label, ShouldEqual, "Today")
			So(groups[1].Label, ShouldEqual, "Earlier")
			So(len(groups[0].Items), ShouldEqual, 4)
			So(groups[0].Items[0].When, ShouldEqual, "10m ago")
			So(groups[1].Items[0].When, ShouldEqual, "1d ago")
			So(groups[0].Items[0].IsRead, ShouldBeFalse)
		})

		Convey("When marking notifications read", func() {
			So(svc.MarkRead(ctx, "n1"), ShouldBeNil)
			So(svc.MarkAllRead(ctx), ShouldEqual, 4)
			So(svc.MarkAllRead(ctx), ShouldEqual, 0)

			groups := svc.Notifications(ctx)
			for _, g := range groups {
				for _, n := range g.Items {
					So(n.IsRead, ShouldBeTrue)
				}
			}
		})
	})
}

func TestServiceBadgesAndStats(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When counting badges on fresh state", func() {
			b := svc.Badges(ctx)
			So(b.UnreadMessages, ShouldEqual, 2)
			So(b.UnreadNotifications, ShouldEqual, 5)
			So(b.BookmarkedSessions, ShouldEqual, 0)
		})

		Convey("When state changes, badges recount rather than drift", func() {
			_, err := svc.OpenThread(ctx, "p1")
			So(err, ShouldBeNil)
			So(svc.MarkAllRead(ctx), ShouldEqual, 5)
			_, err = svc.ToggleBookmark(ctx, "s1")
			So(err, ShouldBeNil)

			b := svc.Badges(ctx)
			So(b.UnreadMessages, ShouldEqual, 0)
			So(b.UnreadNotifications, ShouldEqual, 0)
			So(b.BookmarkedSessions, ShouldEqual, 1)
		})

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			So(stats["started"], ShouldBeTrue)
			So(stats["matches"], ShouldEqual, 5)
			So(stats["partnerships"], ShouldEqual, 3)
			So(stats["sessions"], ShouldEqual, 8)
			So(stats["notifications"], ShouldEqual, 5)
		})

		Convey("When the service was never started", func() {
			idle := New(WithClock(func() time.Time { return now }))
			So(idle.GetStats()["started"], ShouldBeFalse)
		})
	})
}

// rejectedTransitions reads the rejected-transition counter off the
// metrics registry.
func rejectedTransitions(t *testing.T) float64 {
	t.Helper()

	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, f := range families {
		if f.GetName() == "whisper_matching_transitions_rejected_total" {
			for _, m := range f.GetMetric() {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestServiceTransitionMetrics(t *testing.T) {
	now := time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC)

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t, now)

		Convey("When a command targets an unknown match", func() {
			before := rejectedTransitions(t)

			_, err := svc.Connect(ctx, "ghost")
			So(errors.Is(err, state.ErrNotFound), ShouldBeTrue)
			_, err = svc.Dismiss(ctx, "ghost")
			So(errors.Is(err, state.ErrNotFound), ShouldBeTrue)

			Convey("Then the rejected-transition counter is untouched", func() {
				So(rejectedTransitions(t), ShouldEqual, before)
			})
		})

		Convey("When the state machine refuses a move", func() {
			_, err := svc.Connect(ctx, "wm1")
			So(err, ShouldBeNil)

			before := rejectedTransitions(t)
			_, err = svc.Connect(ctx, "wm1")
			So(errors.Is(err, state.ErrInvalidTransition), ShouldBeTrue)

			Convey("Then the counter moves by one", func() {
				So(rejectedTransitions(t), ShouldEqual, before+1)
			})
		})
	})
}
