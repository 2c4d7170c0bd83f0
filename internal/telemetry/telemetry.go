// Package telemetry exports preview-controller interactions as OpenTelemetry
// spans. Export is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/gallery"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "folio"
	tracerName         = "folio/gallery"
)

// Exporter records one span per controller event.
// A nil *Exporter is valid and records nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Ensure Exporter implements gallery.Observer.
var _ gallery.Observer = (*Exporter)(nil)

// New creates an OTLP/HTTP exporter from the environment.
// Returns nil, nil when no endpoint is configured.
func New(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing tracer provider.
func NewWithProvider(tp *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: tp,
		tracer:   tp.Tracer(tracerName),
	}
}

// Observe implements gallery.Observer.
func (e *Exporter) Observe(ev gallery.Event) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(context.Background(), "gallery."+ev.Action)
	span.SetAttributes(eventAttributes(ev)...)
	span.End()
}

func eventAttributes(ev gallery.Event) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("folio.action", ev.Action),
		attribute.Bool("folio.preview.open", ev.Selection.Open()),
		attribute.Bool("folio.popup.visible", ev.Popup.Visible),
	}
	if ev.Selection.Open() {
		attrs = append(attrs,
			attribute.String("folio.collection", ev.Selection.Kind.String()),
			attribute.Int("folio.item.index", ev.Selection.Item),
			attribute.Int("folio.image.index", ev.Selection.Image),
			attribute.Int("folio.image.count", ev.Count),
		)
	}
	if ev.Popup.Status != "" {
		attrs = append(attrs, attribute.String("folio.popup.status", ev.Popup.Status))
	}
	return attrs
}

// Shutdown flushes pending spans and stops the provider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
