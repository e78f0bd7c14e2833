package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records counters for the order composition flow.
type CheckoutMetrics struct {
	linesAdded  prometheus.Counter
	submissions *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	linesAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_lines_added_total",
		Help: "Configured line items committed to carts.",
	})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions by fulfillment method and outcome.",
	}, []string{"method", "outcome"})
	reg.MustRegister(linesAdded, submissions)
	return &CheckoutMetrics{
		linesAdded:  linesAdded,
		submissions: submissions,
	}
}

// IncLineAdded increments the committed-line counter.
func (c *CheckoutMetrics) IncLineAdded() {
	if c == nil || c.linesAdded == nil {
		return
	}
	c.linesAdded.Inc()
}

// IncSubmission records one submission attempt outcome.
func (c *CheckoutMetrics) IncSubmission(method, outcome string) {
	if c == nil || c.submissions == nil {
		return
	}
	c.submissions.WithLabelValues(method, outcome).Inc()
}
