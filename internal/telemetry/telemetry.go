// Package telemetry provides optional OpenTelemetry tracing for gitplay.
// When enabled, each playground command executes inside a span carrying the
// dispatch key and outcome, exported either to a local file (stdout
// exporter pointed at a file, since the TUI owns the real stdout) or to an
// OTLP/gRPC collector.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/gitplay/internal/config"
	"github.com/zjrosen/gitplay/internal/log"
)

const tracerName = "github.com/zjrosen/gitplay"

// Provider owns the tracer lifecycle. A disabled provider hands out no-op
// tracers and shuts down instantly.
type Provider struct {
	tp   *sdktrace.TracerProvider
	file *os.File
}

// Init builds a tracer provider from config. Disabled telemetry yields a
// working no-op Provider.
func Init(ctx context.Context, cfg config.TelemetryConfig) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}

	p := &Provider{}
	var exporter sdktrace.SpanExporter
	var err error

	switch cfg.Exporter {
	case "stdout":
		out := os.Stdout
		if cfg.File != "" {
			out, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // G304: path comes from config
			if err != nil {
				return nil, fmt.Errorf("opening trace file: %w", err)
			}
			p.file = out
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(out))
	case "otlp":
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unknown telemetry exporter %q", cfg.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s exporter: %w", cfg.Exporter, err)
	}

	p.tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(p.tp)
	log.Info(log.CatTelemetry, "Tracing enabled", "exporter", cfg.Exporter)
	return p, nil
}

// Tracer returns the gitplay tracer, no-op when telemetry is disabled.
func (p *Provider) Tracer() trace.Tracer {
	if p.tp == nil {
		return noop.NewTracerProvider().Tracer(tracerName)
	}
	return p.tp.Tracer(tracerName)
}

// Shutdown flushes pending spans and releases the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tp == nil {
		return nil
	}
	err := p.tp.Shutdown(ctx)
	if p.file != nil {
		if closeErr := p.file.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// TraceCommand wraps one interpreter execution in a span.
func TraceCommand(tracer trace.Tracer, key string, run func()) {
	_, span := tracer.Start(context.Background(), "playground.execute",
		trace.WithAttributes(attribute.String("playground.command", key)),
	)
	defer span.End()
	run()
}
