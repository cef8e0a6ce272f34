package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TracingConfig{}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_Enabled(t *testing.T) {
	orig := newExporter
	t.Cleanup(func() { newExporter = orig })
	var optCount int
	newExporter = func(_ context.Context, opts ...otlptracegrpc.Option) (sdktrace.SpanExporter, error) {
		optCount = len(opts)
		return tracetest.NewInMemoryExporter(), nil
	}

	shutdown, err := SetupTracing(context.Background(), TracingConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		SampleRatio: 1,
		ServiceName: "faq-service",
	}, "test")
	require.NoError(t, err)
	require.Equal(t, 2, optCount)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_ExporterError(t *testing.T) {
	orig := newExporter
	t.Cleanup(func() { newExporter = orig })
	newExporter = func(context.Context, ...otlptracegrpc.Option) (sdktrace.SpanExporter, error) {
		return nil, errors.New("dial failed")
	}

	_, err := SetupTracing(context.Background(), TracingConfig{Enabled: true}, "test")
	require.ErrorContains(t, err, "dial failed")
}
