package dataset_test

import (
	"context"
	"testing"
	"time"

	"github.com/craftaddis/whisper/internal/adapters/dataset"
	"github.com/craftaddis/whisper/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeed(t *testing.T) {
	Convey("Given the built-in seed dataset", t, func() {
		ctx := context.Background()
		now := time.Date(2026, time.February, 28, 15, 0, 0, 0, time.UTC)
		ds := dataset.Seed(now)

		Convey("Then the current user is a valid local profile", func() {
			me := ds.CurrentUser(ctx)
			So(me.ID, ShouldEqual, "u0")
			So(me.Discipline.IsValid(), ShouldBeTrue)
			So(model.ValidateIntent(me.CurrentIntent), ShouldBeNil)
		})

		Convey("Then matches arrive in canonical score-descending order", func() {
			matches := ds.Matches(ctx)
			So(len(matches), ShouldBeGreaterThanOrEqualTo, 3)
			for i := 1; i < len(matches); i++ {
				So(matches[i].MatchScore, ShouldBeLessThanOrEqualTo, matches[i-1].MatchScore)
			}
			for _, m := range matches {
				So(m.Status.IsValid(), ShouldBeTrue)
				So(m.MatchScore, ShouldBeBetweenOrEqual, 0, 100)
				So(model.ValidateIntent(m.TheirIntent), ShouldBeNil)
			}
		})

		Convey("Then every partnership has a seed thread", func() {
			for _, p := range ds.Partnerships(ctx) {
				thread, err := ds.Thread(ctx, p.ID)
				So(err, ShouldBeNil)
				So(thread, ShouldNotBeEmpty)
				// Last thread message mirrors the partnership preview.
				So(thread[len(thread)-1].Text, ShouldEqual, p.LastMessage)
			}
		})

		Convey("Then an unknown thread id reports ErrNotFound", func() {
			_, err := ds.Thread(ctx, "nope")
			So(err, ShouldEqual, dataset.ErrNotFound)
		})

		Convey("Then sessions cover all three days with valid enums", func() {
			days := map[int]bool{}
			for _, s := range ds.Sessions(ctx) {
				days[s.Day] = true
				So(s.Type.IsValid(), ShouldBeTrue)
				So(s.Stage.IsValid(), ShouldBeTrue)
			}
			So(days, ShouldResemble, map[int]bool{1: true, 2: true, 3: true})
		})

		Convey("Then notifications are newest first with valid types", func() {
			notifs := ds.Notifications(ctx)
			So(notifs, ShouldNotBeEmpty)
			for i := 1; i < len(notifs); i++ {
				So(notifs[i].CreatedAt.After(notifs[i-1].CreatedAt), ShouldBeFalse)
			}
			for _, n := range notifs {
				So(n.Type.IsValid(), ShouldBeTrue)
			}
		})

		Convey("Then accessors return copies, not aliases", func() {
			a := ds.Matches(ctx)
			a[0].ID = "mutated"
			So(ds.Matches(ctx)[0].ID, ShouldNotEqual, "mutated")
		})
	})
}
