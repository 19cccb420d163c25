package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager on an isolated registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("Then all metric families register without panic", func() {
			So(m, ShouldNotBeNil)
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			// Counters start unobserved; gauges register eagerly.
			So(families, ShouldNotBeNil)
		})

		Convey("When recording engagement metrics", func() {
			m.connects.Inc()
			m.dismisses.Inc()
			m.messagesAppended.Inc()
			m.transitionsRejected.Inc()
			m.unreadMessages.Set(3)
			m.matchesByStatus.WithLabelValues("new").Set(2)
			m.httpRequests.WithLabelValues("feed", "GET", "200").Inc()
			m.httpRequestDuration.WithLabelValues("feed", "GET", "200").Observe(1.5)

			Convey("Then the registry gathers them", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThanOrEqualTo, 8)
			})
		})
	})

	Convey("Given custom options", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(registry),
			WithNamespace("test"),
			WithSubsystem("unit"),
			WithHistogramBuckets([]float64{1, 10, 100}),
		)

		So(m.namespace, ShouldEqual, "test")
		So(m.subsystem, ShouldEqual, "unit")
		So(m.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then helpers do not panic and the registry serves", func() {
			So(func() {
				RecordConnect()
				RecordDismiss()
				RecordMessageAppended()
				RecordTransitionRejected()
				UpdateUnreadMessages(2)
				UpdateUnreadNotifications(1)
				UpdateBookmarkedSessions(4)
				UpdateMatchStatus("connected", 1)
				RecordHTTPRequest("badges", "GET", "200")
				RecordHTTPRequestDuration("badges", "GET", "200", 0.4)
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)

			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
		})
	})
}
