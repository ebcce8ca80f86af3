package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking frontend.
type BookingMetrics struct {
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	slotQueries     *prometheus.CounterVec
	bookings        *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookingweb",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total requests issued to the scheduling backend",
		}, []string{"operation", "status"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bookingweb",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency of scheduling backend requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		slotQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookingweb",
			Subsystem: "booking",
			Name:      "slot_queries_total",
			Help:      "Total availability lookups served to booking pages",
		}, []string{"status"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookingweb",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total booking submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.backendRequests, m.backendLatency, m.slotQueries, m.bookings)
	return m
}

func (m *BookingMetrics) ObserveBackendRequest(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(operation, status).Inc()
	m.backendLatency.WithLabelValues(operation).Observe(seconds)
}

func (m *BookingMetrics) ObserveSlotQuery(status string) {
	if m == nil {
		return
	}
	m.slotQueries.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}
