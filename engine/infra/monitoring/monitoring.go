package monitoring

import (
	"context"
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/remindly/remindly/pkg/logger"
)

// Service owns the metrics pipeline: an OpenTelemetry meter backed by a
// Prometheus exporter and a private registry. When disabled it hands out
// no-op instruments so callers never branch.
type Service struct {
	meter       metric.Meter
	registry    *prom.Registry
	initialized bool
}

// NewService creates the monitoring service. Disabled monitoring returns
// a no-op service rather than nil so middleware wiring stays unconditional.
func NewService(ctx context.Context, enabled bool) (*Service, error) {
	log := logger.FromContext(ctx)
	if !enabled {
		log.Debug("Monitoring disabled, using no-op meter")
		return &Service{meter: noop.NewMeterProvider().Meter("remindly")}, nil
	}
	registry := prom.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	return &Service{
		meter:       provider.Meter("remindly"),
		registry:    registry,
		initialized: true,
	}, nil
}

// IsInitialized reports whether real instruments are wired.
func (s *Service) IsInitialized() bool {
	return s.initialized
}

// Meter returns the meter for custom instrumentation.
func (s *Service) Meter() metric.Meter {
	return s.meter
}

// ExporterHandler serves the Prometheus scrape endpoint.
func (s *Service) ExporterHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.initialized {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
