package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	searchCounter  otelmetric.Int64Counter
	searchDuration otelmetric.Float64Histogram
	scoredCounter  otelmetric.Int64Counter
	rejectsCounter otelmetric.Int64Counter
	returnsCounter otelmetric.Int64Counter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	searchCounter, _ := meter.Int64Counter(
		"searches.processed",
		otelmetric.WithDescription("Number of search requests processed"),
	)

	searchDuration, _ := meter.Float64Histogram(
		"searches.duration",
		otelmetric.WithDescription("Search request duration"),
		otelmetric.WithUnit("ms"),
	)

	scoredCounter, _ := meter.Int64Counter(
		"candidates.scored",
		otelmetric.WithDescription("Number of candidates scored"),
	)

	rejectsCounter, _ := meter.Int64Counter(
		"candidates.rejected",
		otelmetric.WithDescription("Number of candidates rejected by score floors"),
	)

	returnsCounter, _ := meter.Int64Counter(
		"candidates.returned",
		otelmetric.WithDescription("Number of candidates returned to callers"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		searchCounter:  searchCounter,
		searchDuration: searchDuration,
		scoredCounter:  scoredCounter,
		rejectsCounter: rejectsCounter,
		returnsCounter: returnsCounter,
	}
}

func (o *Observability) RecordSearch(ctx context.Context, status string) {
	if o.searchCounter != nil {
		o.searchCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordSearchDuration(ctx context.Context, duration time.Duration, status string) {
	if o.searchDuration != nil {
		o.searchDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordCandidateCounts(ctx context.Context, scored, rejected, returned int) {
	if o.scoredCounter != nil {
		o.scoredCounter.Add(ctx, int64(scored))
	}
	if o.rejectsCounter != nil {
		o.rejectsCounter.Add(ctx, int64(rejected))
	}
	if o.returnsCounter != nil {
		o.returnsCounter.Add(ctx, int64(returned))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
