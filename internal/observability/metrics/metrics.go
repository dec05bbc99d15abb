package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the submission pipeline.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	dispatchLatency  *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nobug",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total form submissions by outcome",
		}, []string{"outcome"}),
		dispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nobug",
			Subsystem: "leads",
			Name:      "dispatch_latency_seconds",
			Help:      "Latency of outbound email dispatch",
			Buckets:   prometheus.DefBuckets,
		}, []string{"message"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.dispatchLatency)
	return m
}

func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveDispatchLatency(message string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatchLatency.WithLabelValues(message).Observe(seconds)
}
