package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestEnvironmentCollectorRecordsSetup(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewEnvironmentCollector(reg)
	if err != nil {
		t.Fatalf("NewEnvironmentCollector: %v", err)
	}

	collector.BodyConstructed("Sun")
	collector.BodyConstructed("Earth")
	collector.SubModelFailed("Earth", "atmosphere")
	collector.AdapterAttached("Moon", "Earth")
	collector.ObserveSetupDuration(25 * time.Millisecond)
	collector.SetBodyCount(2)

	if got := testutil.ToFloat64(collector.BodiesConstructed); got != 2 {
		t.Fatalf("environment_bodies_constructed_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.SubModelFailures.WithLabelValues("atmosphere")); got != 1 {
		t.Fatalf("environment_submodel_failures_total{domain=atmosphere} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.AdaptersAttached); got != 1 {
		t.Fatalf("environment_frame_adapters_attached_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.EnvironmentBodies); got != 2 {
		t.Fatalf("environment_bodies = %v, want 2", got)
	}
	if count := histogramSampleCount(t, reg, "environment_setup_duration_seconds"); count != 1 {
		t.Fatalf("environment_setup_duration_seconds sample_count = %d, want 1", count)
	}
}

func TestEnvironmentCollectorHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewEnvironmentCollector(reg)
	if err != nil {
		t.Fatalf("NewEnvironmentCollector: %v", err)
	}
	collector.BodyConstructed("Sun")
	collector.SetBodyCount(1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"environment_bodies_constructed_total",
		"environment_frame_adapters_attached_total",
		"environment_setup_duration_seconds",
		"environment_bodies",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
}

func TestNewEnvironmentCollectorIsIdempotentPerRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewEnvironmentCollector(reg)
	if err != nil {
		t.Fatalf("first NewEnvironmentCollector: %v", err)
	}
	second, err := NewEnvironmentCollector(reg)
	if err != nil {
		t.Fatalf("second NewEnvironmentCollector: %v", err)
	}

	first.BodyConstructed("Sun")
	second.BodyConstructed("Earth")
	if got := testutil.ToFloat64(second.BodiesConstructed); got != 2 {
		t.Fatalf("collectors should share registered metrics, got %v", got)
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string) uint64 {
	t.Helper()

	families, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	var histogram *dto.Histogram
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if histogram = m.GetHistogram(); histogram != nil {
				return histogram.GetSampleCount()
			}
		}
	}
	return 0
}
