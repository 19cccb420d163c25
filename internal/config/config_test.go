package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := New()

		Convey("Then defaults are sane", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldNotBeEmpty)
			So(cfg.TierHigh, ShouldBeGreaterThan, cfg.TierMedium)
		})
	})
}
