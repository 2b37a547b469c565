package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	gradingTotal          *prometheus.CounterVec
	gradingLatencySeconds *prometheus.HistogramVec
	aiFallbacksTotal      prometheus.Counter
	manualReviewTotal     prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used for grading
// observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		gradingTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gyanguru_grading_total",
			Help: "Total number of responses graded, by question type and outcome.",
		}, []string{"type", "outcome"})

		gradingLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gyanguru_grading_latency_seconds",
			Help:    "Latency distribution for single-response grading.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.025, 0.1, 0.5, 1.0, 5.0, 15.0},
		}, []string{"type"})

		aiFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gyanguru_grading_ai_fallbacks_total",
			Help: "Number of subjective grades that fell back to deterministic similarity.",
		})

		manualReviewTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gyanguru_grading_manual_review_total",
			Help: "Number of grades flagged for manual review.",
		})

		prometheus.MustRegister(gradingTotal, gradingLatencySeconds, aiFallbacksTotal, manualReviewTotal)
	})
}

// GradingTotal exposes the counter for graded responses.
func GradingTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return gradingTotal
}

// GradingLatency exposes the latency histogram for grading calls.
func GradingLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return gradingLatencySeconds
}

// AIFallbacks exposes the counter for deterministic fallbacks.
func AIFallbacks() prometheus.Counter {
	RegisterMetrics()
	return aiFallbacksTotal
}

// ManualReview exposes the counter for manual-review flags.
func ManualReview() prometheus.Counter {
	RegisterMetrics()
	return manualReviewTotal
}
