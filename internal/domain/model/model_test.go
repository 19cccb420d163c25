package model_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/craftaddis/whisper/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEnums(t *testing.T) {
	Convey("Given the closed enum sets", t, func() {
		Convey("Then every listed discipline is valid", func() {
			So(len(model.Disciplines()), ShouldEqual, 14)
			for _, d := range model.Disciplines() {
				So(d.IsValid(), ShouldBeTrue)
			}
		})

		Convey("And unknown values are rejected", func() {
			So(model.Discipline("Plumber").IsValid(), ShouldBeFalse)
			So(model.StampType("golden").IsValid(), ShouldBeFalse)
			So(model.MatchStatus("pending").IsValid(), ShouldBeFalse)
			So(model.SessionType("Rave").IsValid(), ShouldBeFalse)
			So(model.Stage("Rooftop").IsValid(), ShouldBeFalse)
			So(model.NotificationType("promo").IsValid(), ShouldBeFalse)
		})

		Convey("And only connected/dismissed are terminal match states", func() {
			So(model.MatchNew.Terminal(), ShouldBeFalse)
			So(model.MatchViewed.Terminal(), ShouldBeFalse)
			So(model.MatchConnected.Terminal(), ShouldBeTrue)
			So(model.MatchDismissed.Terminal(), ShouldBeTrue)
		})
	})
}

func TestValidateIntent(t *testing.T) {
	Convey("Given intent validation", t, func() {
		Convey("When the intent is within bounds", func() {
			So(model.ValidateIntent(""), ShouldBeNil)
			So(model.ValidateIntent("Seeking a filmmaker for a short doc"), ShouldBeNil)
			So(model.ValidateIntent(strings.Repeat("x", 140)), ShouldBeNil)
		})

		Convey("When the intent exceeds 140 characters", func() {
			err := model.ValidateIntent(strings.Repeat("x", 141))
			So(err, ShouldNotBeNil)
			So(errors.Is(err, model.ErrValidation), ShouldBeTrue)
		})

		Convey("When the intent is multibyte text at the boundary", func() {
			// 140 runes, far more than 140 bytes
			So(model.ValidateIntent(strings.Repeat("ፊ", 140)), ShouldBeNil)
			So(errors.Is(model.ValidateIntent(strings.Repeat("ፊ", 141)), model.ErrValidation), ShouldBeTrue)
		})
	})
}

func TestValidateMessageText(t *testing.T) {
	Convey("Given message text validation", t, func() {
		Convey("Then non-empty text passes", func() {
			So(model.ValidateMessageText("hi"), ShouldBeNil)
			So(model.ValidateMessageText("  hi  "), ShouldBeNil)
		})

		Convey("Then empty and whitespace-only text fail", func() {
			So(errors.Is(model.ValidateMessageText(""), model.ErrValidation), ShouldBeTrue)
			So(errors.Is(model.ValidateMessageText("   \n\t"), model.ErrValidation), ShouldBeTrue)
		})
	})
}

func TestClampScore(t *testing.T) {
	Convey("Given score clamping", t, func() {
		So(model.ClampScore(50), ShouldEqual, 50)
		So(model.ClampScore(0), ShouldEqual, 0)
		So(model.ClampScore(100), ShouldEqual, 100)
		So(model.ClampScore(-3), ShouldEqual, 0)
		So(model.ClampScore(180), ShouldEqual, 100)
		So(model.ClampScore(math.NaN()), ShouldEqual, 0)
	})
}
