package converter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"infix-postfix/internal/handlers"
	"infix-postfix/internal/notation"
	"infix-postfix/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the converter's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("converter")

// maxBodyBytes caps the size of an expression request body.
const maxBodyBytes = 64 << 10

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Convert handles POST /api/convert. The expression is validated first and
// the conversion only runs when validation finds nothing.
func Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "converter.convert",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ConvertRequest
	if err := decodeRequest(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("expression.length", len(req.Expression)))

	if err := notation.Validate(req.Expression); err != nil {
		conversionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "rejected")))
		observability.RecordError(ctx, span, logger, errorCounter, "convert", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	start := time.Now()
	result := notation.Convert(req.Expression)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	conversionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "converted")))
	durationHistogram.Record(ctx, elapsed)
	stepsHistogram.Record(ctx, int64(len(result.Steps)))

	infix := notation.Clean(req.Expression)

	span.AddEvent("conversion.complete", trace.WithAttributes(
		attribute.String("postfix", result.Postfix),
		attribute.Int("steps", len(result.Steps)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("expression.infix", infix),
		attribute.String("expression.postfix", result.Postfix),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("expression converted",
		zap.String("infix", infix),
		zap.String("postfix", result.Postfix),
		zap.Int("steps", len(result.Steps)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, ConvertResponse{
		Infix:   infix,
		Postfix: result.Postfix,
		Steps:   result.Steps,
	})
}

// Validate handles POST /api/validate. A finding is a normal response, not
// an HTTP error.
func Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "converter.validate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ConvertRequest
	if err := decodeRequest(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "validate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := notation.Validate(req.Expression); err != nil {
		resp = ValidateResponse{Error: err.Error()}
		span.AddEvent("validation.finding", trace.WithAttributes(
			attribute.String("finding", err.Error()),
		))
	}

	span.SetAttributes(attribute.Bool("expression.valid", resp.Valid))
	span.SetStatus(codes.Ok, "")

	logger.Debug("expression validated",
		zap.Bool("valid", resp.Valid),
		zap.String("finding", resp.Error),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Examples handles GET /api/examples.
func Examples(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, ExamplesResponse{Examples: notation.Examples()})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst *ConvertRequest) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
