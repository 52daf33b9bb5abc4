package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("limpeza", reg)

	m.SyncTotal.WithLabelValues("success").Inc()
	m.SyncTotal.WithLabelValues("success").Inc()
	m.DriftDetected.WithLabelValues("mirror_missing").Inc()

	if got := testutil.ToFloat64(m.SyncTotal.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 sync successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.DriftDetected.WithLabelValues("mirror_missing")); got != 1 {
		t.Fatalf("expected 1 drift, got %v", got)
	}

	t.Run("second registry does not collide", func(t *testing.T) {
		other := NewMetrics("limpeza", prometheus.NewRegistry())
		if got := testutil.ToFloat64(other.SyncTotal.WithLabelValues("success")); got != 0 {
			t.Fatalf("expected fresh counter, got %v", got)
		}
	})
}
