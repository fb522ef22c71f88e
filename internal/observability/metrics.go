package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EnvironmentCollector bundles Prometheus metrics for environment setup. It
// implements core.SetupObserver, so it can be handed to CreateBodies and
// EnforceGlobalFrame directly.
type EnvironmentCollector struct {
	gatherer prometheus.Gatherer

	BodiesConstructed prometheus.Counter
	SubModelFailures  *prometheus.CounterVec
	AdaptersAttached  prometheus.Counter
	SetupDuration     prometheus.Histogram
	EnvironmentBodies prometheus.Gauge
}

// NewEnvironmentCollector registers setup metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewEnvironmentCollector(reg prometheus.Registerer) (*EnvironmentCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	constructed, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "environment_bodies_constructed_total",
		Help: "Total number of bodies constructed during environment setup.",
	}), "environment_bodies_constructed_total")
	if err != nil {
		return nil, err
	}

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "environment_submodel_failures_total",
		Help: "Total number of per-domain model factory failures, labeled by domain.",
	}, []string{"domain"})
	failures, err = registerCounterVec(reg, failures, "environment_submodel_failures_total")
	if err != nil {
		return nil, err
	}

	adapters, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "environment_frame_adapters_attached_total",
		Help: "Total number of base-frame translation adapters attached by frame enforcement.",
	}), "environment_frame_adapters_attached_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "environment_setup_duration_seconds",
		Help:    "End-to-end environment setup latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}), "environment_setup_duration_seconds")
	if err != nil {
		return nil, err
	}

	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "environment_bodies",
		Help: "Current number of bodies in the environment.",
	}), "environment_bodies")
	if err != nil {
		return nil, err
	}

	return &EnvironmentCollector{
		gatherer:          gatherer,
		BodiesConstructed: constructed,
		SubModelFailures:  failures,
		AdaptersAttached:  adapters,
		SetupDuration:     duration,
		EnvironmentBodies: bodies,
	}, nil
}

// BodyConstructed implements core.SetupObserver.
func (c *EnvironmentCollector) BodyConstructed(string) {
	c.BodiesConstructed.Inc()
}

// SubModelFailed implements core.SetupObserver.
func (c *EnvironmentCollector) SubModelFailed(_, domain string) {
	c.SubModelFailures.WithLabelValues(domain).Inc()
}

// AdapterAttached implements core.SetupObserver.
func (c *EnvironmentCollector) AdapterAttached(_, _ string) {
	c.AdaptersAttached.Inc()
}

// ObserveSetupDuration records one complete setup call.
func (c *EnvironmentCollector) ObserveSetupDuration(d time.Duration) {
	c.SetupDuration.Observe(d.Seconds())
}

// SetBodyCount updates the environment body gauge after a successful setup.
func (c *EnvironmentCollector) SetBodyCount(n int) {
	c.EnvironmentBodies.Set(float64(n))
}

// Handler exposes the collector's registry in Prometheus exposition format.
func (c *EnvironmentCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
