package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters, exposed through promhttp on /metrics.
type Metrics struct {
	BookingsCreated  prometheus.Counter
	BookingConflicts prometheus.Counter
	GateFailOpens    prometheus.Counter
	GateRedirects    prometheus.Counter
}

// New registers the counters against reg. Tests pass a fresh registry so
// repeated setup does not trip duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of reservations successfully created.",
		}),
		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Number of booking attempts that lost the race for a slot.",
		}),
		GateFailOpens: factory.NewCounter(prometheus.CounterOpts{
			Name: "page_gate_fail_open_total",
			Help: "Number of requests served because the page gate check errored.",
		}),
		GateRedirects: factory.NewCounter(prometheus.CounterOpts{
			Name: "page_gate_redirects_total",
			Help: "Number of requests redirected or blocked by the page gate.",
		}),
	}
}

func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
