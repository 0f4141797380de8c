package converter

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	conversionsCounter metric.Int64Counter
	durationHistogram  metric.Float64Histogram
	stepsHistogram     metric.Int64Histogram
	errorCounter       metric.Int64Counter
)

// InitMetrics registers custom OTel metric instruments for the converter domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("converter")

	var err error

	conversionsCounter, err = meter.Int64Counter("converter.conversions.total",
		metric.WithDescription("Total number of expressions submitted, by outcome"),
		metric.WithUnit("{expression}"),
	)
	if err != nil {
		return fmt.Errorf("creating conversions counter: %w", err)
	}

	durationHistogram, err = meter.Float64Histogram("converter.conversion.duration",
		metric.WithDescription("Duration of infix to postfix conversions in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	stepsHistogram, err = meter.Int64Histogram("converter.conversion.steps",
		metric.WithDescription("Number of trace steps recorded per conversion"),
		metric.WithUnit("{step}"),
		metric.WithExplicitBucketBoundaries(5, 10, 25, 50, 100, 250),
	)
	if err != nil {
		return fmt.Errorf("creating steps histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("converter.errors.total",
		metric.WithDescription("Total number of rejected converter requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
