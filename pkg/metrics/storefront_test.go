package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStorefrontMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorefrontMetrics(reg)

	metrics.IncCartMutation("add_item")
	metrics.IncCartMutation("add_item")
	metrics.IncLeadSubmission("cart")
	metrics.IncPersistFailure()
	metrics.IncHandoff()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "kind", "add_item"); err != nil {
		t.Fatalf("fetch cart mutations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected cart_mutations_total=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "lead_submissions_total", "source", "cart"); err != nil {
		t.Fatalf("fetch lead submissions: %v", err)
	} else if got != 1 {
		t.Fatalf("expected lead_submissions_total=1, got %f", got)
	}
}

func TestStorefrontMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *StorefrontMetrics
	metrics.IncCartMutation("clear")
	metrics.IncLeadSubmission("product")
	metrics.IncPersistFailure()
	metrics.IncHandoff()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
