// Package logger configures the process-wide slog logger and an
// optional OpenTelemetry tracer. Spans go to stdout through the
// stdouttrace exporter; there is no collector in a single-user tool.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

// Config controls logging and tracing behavior.
type Config struct {
	Level          string // DEBUG, INFO, WARN, ERROR
	Format         string // json or text
	TracingEnabled bool
}

var (
	tracer         trace.Tracer = trace.NewNoopTracerProvider().Tracer("diario")
	tracerProvider *sdktrace.TracerProvider
)

// FromEnv reads the logging configuration from DIARIO_LOG_LEVEL,
// DIARIO_LOG_FORMAT and DIARIO_TRACING.
func FromEnv() Config {
	return Config{
		Level:          envOr("DIARIO_LOG_LEVEL", "INFO"),
		Format:         envOr("DIARIO_LOG_FORMAT", "text"),
		TracingEnabled: envOr("DIARIO_TRACING", "false") == "true",
	}
}

// Init installs the global slog logger and, when enabled, the
// OpenTelemetry tracer provider.
func Init(cfg Config) error {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	if cfg.TracingEnabled {
		if err := initTracer(); err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
	}
	return nil
}

// StartSpan begins a span; the returned end function must be called
// when the operation finishes. With tracing disabled this is a no-op.
func StartSpan(ctx context.Context, name string) (context.Context, func()) {
	ctx, span := tracer.Start(ctx, name)
	return ctx, func() { span.End() }
}

// Shutdown flushes any pending spans.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	return tracerProvider.Shutdown(ctx)
}

func initTracer() error {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.Default()),
	)
	otel.SetTracerProvider(tracerProvider)
	tracer = tracerProvider.Tracer("diario")
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
