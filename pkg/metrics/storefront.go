package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for cart activity and lead capture.
type StorefrontMetrics struct {
	cartMutations   *prometheus.CounterVec
	leadSubmissions *prometheus.CounterVec
	persistFailures prometheus.Counter
	handoffs        prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart transitions applied, by kind.",
	}, []string{"kind"})
	leadSubmissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_submissions_total",
		Help: "Lead submissions, by source.",
	}, []string{"source"})
	persistFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lead_persist_failures_total",
		Help: "Best-effort lead persistence failures.",
	})
	handoffs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lead_handoffs_total",
		Help: "WhatsApp handoff links produced.",
	})
	reg.MustRegister(cartMutations, leadSubmissions, persistFailures, handoffs)
	return &StorefrontMetrics{
		cartMutations:   cartMutations,
		leadSubmissions: leadSubmissions,
		persistFailures: persistFailures,
		handoffs:        handoffs,
	}
}

// IncCartMutation counts one transition of the given kind.
func (m *StorefrontMetrics) IncCartMutation(kind string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncLeadSubmission counts one lead submission for the given source.
func (m *StorefrontMetrics) IncLeadSubmission(source string) {
	if m == nil || m.leadSubmissions == nil {
		return
	}
	m.leadSubmissions.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncPersistFailure counts one best-effort persistence failure.
func (m *StorefrontMetrics) IncPersistFailure() {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.Inc()
}

// IncHandoff counts one produced handoff link.
func (m *StorefrontMetrics) IncHandoff() {
	if m == nil || m.handoffs == nil {
		return
	}
	m.handoffs.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
