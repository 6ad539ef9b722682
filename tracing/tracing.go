// SPDX-License-Identifier: MIT

// Package tracing installs an OpenTelemetry tracer provider that prints spans.
package tracing

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies spans emitted by the converter.
const ServiceName = "famplex2bel"

// Shutdown flushes and stops the provider installed by Init.
type Shutdown func(context.Context) error

// Init installs a global tracer provider writing pretty-printed spans to w.
// When enabled is false the global no-op provider is left in place and the
// returned Shutdown does nothing.
func Init(ctx context.Context, w io.Writer, enabled bool) (Shutdown, error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(ServiceName)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer returns the converter's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}
