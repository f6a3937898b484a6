// Package telemetry initializes OpenTelemetry metrics and tracing with OTLP
// exporters over gRPC, and hands out the tracer and meter used by the
// service's instrumented packages.
//
// Exporter endpoints and credentials follow the standard OTEL_EXPORTER_OTLP_*
// environment variables. When Init is never called, Tracer and Meter return
// no-op instruments from the global providers.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies the instruments created by this service.
const instrumentationName = "github.com/jazzy1902/Monad-BlockHackers"

// initMeterProvider sets up an OTLP gRPC MeterProvider using a
// periodic reader and the given Resource. It also registers the
// provider as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider and the W3C trace-context
// propagator, so spans continue across inbound HTTP requests.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with a ServiceName attribute for the given service.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops all telemetry providers.
// Call it at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// NopShutdown is the ShutdownFunc used when telemetry is disabled.
func NopShutdown(context.Context) error { return nil }

// Init configures OpenTelemetry metrics and traces exported over OTLP/gRPC
// and registers them as the global providers. The serviceName identifies the
// telemetry in the observability backend.
//
// The returned ShutdownFunc flushes and stops both providers.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}

// Tracer returns the service tracer from the global TracerProvider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Meter returns the service meter from the global MeterProvider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
