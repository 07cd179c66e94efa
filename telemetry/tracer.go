package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// TracerConfig controls the OTLP exporter.
type TracerConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// InitTracer installs a global tracer provider exporting over OTLP HTTP.
// Tracing is off unless cfg.Enabled is set. The returned function flushes
// and stops the provider and must be called on shutdown.
func InitTracer(ctx context.Context, cfg TracerConfig, logger *slog.Logger) func(context.Context) error {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled {
		logger.Debug("tracing disabled")
		return noop
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		logger.Warn("failed to create OTLP exporter, tracing disabled", "error", err)
		return noop
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
		)),
	)

	otel.SetTracerProvider(tp)
	logger.Info("tracer initialized", "endpoint", cfg.Endpoint, "service", cfg.ServiceName)

	return tp.Shutdown
}
