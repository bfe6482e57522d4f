package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BookingMetrics holds the Prometheus collectors for the payment and pricing
// paths.
type BookingMetrics struct {
	ConfirmationsTotal   prometheus.CounterVec
	VerificationDuration prometheus.HistogramVec
	ConversionsTotal     prometheus.CounterVec
	RateFeedRunsTotal    prometheus.CounterVec
}

// NewBookingMetrics registers the collectors on the default registry.
func NewBookingMetrics() *BookingMetrics {
	return &BookingMetrics{
		ConfirmationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_confirmations_total",
				Help: "Payment confirmation attempts by gateway and outcome",
			},
			[]string{"method", "outcome"},
		),

		VerificationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_verification_duration_seconds",
				Help:    "Time spent verifying a payment with the gateway",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"method"},
		),

		ConversionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_conversions_total",
				Help: "Price conversions by outcome (converted, identity, no_rate)",
			},
			[]string{"outcome"},
		),

		RateFeedRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_feed_runs_total",
				Help: "Scheduled rate feed refresh runs by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordConfirmation records one confirmation attempt.
func (m *BookingMetrics) RecordConfirmation(method, outcome string) {
	m.ConfirmationsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordVerificationDuration records how long gateway verification took.
func (m *BookingMetrics) RecordVerificationDuration(method string, seconds float64) {
	m.VerificationDuration.WithLabelValues(method).Observe(seconds)
}

// RecordConversion records one price conversion.
func (m *BookingMetrics) RecordConversion(outcome string) {
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

// RecordRateFeedRun records one refresh cycle of the rate feed updater.
func (m *BookingMetrics) RecordRateFeedRun(outcome string) {
	m.RateFeedRunsTotal.WithLabelValues(outcome).Inc()
}
