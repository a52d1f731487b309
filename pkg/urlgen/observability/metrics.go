package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records expansion metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordExpansion records one expansion with its placeholder count,
	// result count, duration and error status.
	RecordExpansion(ctx context.Context, placeholders, results int, duration time.Duration, err error)

	// RecordBatchSaved records a batch written to a store.
	RecordBatchSaved(ctx context.Context, store string, urls int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	expansions    metric.Int64Counter
	expandErrors  metric.Int64Counter
	expandLatency metric.Float64Histogram
	resultCount   metric.Int64Histogram
	batchesSaved  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.GetMeterProvider())
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	meter := mp.Meter("urlgen")

	expansions, err := meter.Int64Counter("urlgen.expand.runs",
		metric.WithDescription("Number of template expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandErrors, err := meter.Int64Counter("urlgen.expand.errors",
		metric.WithDescription("Number of failed template expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandLatency, err := meter.Float64Histogram("urlgen.expand.latency_ms",
		metric.WithDescription("Expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	resultCount, err := meter.Int64Histogram("urlgen.expand.results",
		metric.WithDescription("Number of strings produced per expansion"),
	)
	if err != nil {
		return nil, err
	}

	batchesSaved, err := meter.Int64Counter("urlgen.store.batches_saved",
		metric.WithDescription("Number of batches persisted"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		expansions:    expansions,
		expandErrors:  expandErrors,
		expandLatency: expandLatency,
		resultCount:   resultCount,
		batchesSaved:  batchesSaved,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFromProvider returns a MetricsRecorder whose instruments
// are created on mp rather than the global provider.
func NewMetricsRecorderFromProvider(mp metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(mp)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordExpansion records an expansion.
func (m *otelMetrics) RecordExpansion(ctx context.Context, placeholders, results int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.Int("placeholders", placeholders),
		attribute.Bool("success", err == nil),
	)

	m.expansions.Add(ctx, 1, attrs)
	m.expandLatency.Record(ctx, Milliseconds(duration), attrs)
	if err != nil {
		m.expandErrors.Add(ctx, 1, attrs)
		return
	}
	m.resultCount.Record(ctx, int64(results), attrs)
}

// RecordBatchSaved records a persisted batch.
func (m *otelMetrics) RecordBatchSaved(ctx context.Context, store string, urls int) {
	m.batchesSaved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("store", store),
		attribute.Int("urls", urls),
	))
}
