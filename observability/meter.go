package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/asyncit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns the asyncit meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics holds the instruments recorded by drains and partition runs.
type Metrics struct {
	drainTotal    metric.Int64Counter
	drainItems    metric.Int64Counter
	drainDuration metric.Float64Histogram
	outcomes      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	drainTotal, err := meter.Int64Counter("asyncit.drain.total",
		metric.WithDescription("Completed or failed drains by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating asyncit.drain.total counter: %w", err)
	}

	drainItems, err := meter.Int64Counter("asyncit.drain.items",
		metric.WithDescription("Items materialized by drains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating asyncit.drain.items counter: %w", err)
	}

	drainDuration, err := meter.Float64Histogram("asyncit.drain.duration",
		metric.WithDescription("Duration of drains in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating asyncit.drain.duration histogram: %w", err)
	}

	outcomes, err := meter.Int64Counter("asyncit.partition.outcomes",
		metric.WithDescription("Classified partition outcomes by class and strategy"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating asyncit.partition.outcomes counter: %w", err)
	}

	return &Metrics{
		drainTotal:    drainTotal,
		drainItems:    drainItems,
		drainDuration: drainDuration,
		outcomes:      outcomes,
	}, nil
}

// RecordDrain records one finished drain.
func (m *Metrics) RecordDrain(ctx context.Context, operation, status string, items int, capped bool, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
		attribute.Bool("capped", capped),
	)
	m.drainTotal.Add(ctx, 1, attrs)
	m.drainItems.Add(ctx, int64(items), metric.WithAttributes(attribute.String("operation", operation)))
	m.drainDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("operation", operation)))
}

// RecordOutcomes records the classified sizes of one partition run.
func (m *Metrics) RecordOutcomes(ctx context.Context, strategy string, successes, errs int) {
	m.outcomes.Add(ctx, int64(successes), metric.WithAttributes(
		attribute.String("class", "success"),
		attribute.String("strategy", strategy),
	))
	m.outcomes.Add(ctx, int64(errs), metric.WithAttributes(
		attribute.String("class", "error"),
		attribute.String("strategy", strategy),
	))
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns instruments bound to the global meter provider.
// Instruments created before InitMeter forward to the provider once it is set.
// It returns nil if the instruments could not be created.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		m, err := NewMetrics(Meter())
		if err != nil {
			logger.Get("observability").Warn("metrics disabled", logger.ErrorFields("new_metrics", err))
			return
		}
		defaultMetrics = m
	})
	return defaultMetrics
}
