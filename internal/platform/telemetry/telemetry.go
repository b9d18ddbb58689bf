// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service and owns its metric instruments.
//
//	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
//	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
//	metrics, err := telemetry.NewMetrics(mp)
//
// Both providers must be shut down on exit. A nil *Metrics is valid and
// records nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ScopeName is the instrumentation scope for every tracer and meter the
// service creates.
const ScopeName = "github.com/jsamuelsen11/ore-roller"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrDiceSource  = attribute.Key("ore.dice_source")
	AttrOrigin      = attribute.Key("ore.origin")
)

// ErrUnsupportedExporter is returned for exporter names other than stdout and otlp.
var ErrUnsupportedExporter = errors.New("unsupported telemetry exporter")

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	RollTotal        metric.Int64Counter
	DiceRolled       metric.Int64Counter
	SetWidth         metric.Int64Histogram
	CommandParseFail metric.Int64Counter
}

// InitTracer registers a global TracerProvider and the W3C trace context
// and baggage propagators.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter registers a global MeterProvider with a periodic reader.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates every instrument on a meter scoped to ScopeName.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(ScopeName)
	var m Metrics
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	if m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of requests to the VTT host"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}

	if m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of requests to the VTT host"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}

	if m.RollTotal, err = meter.Int64Counter("ore.rolls.total",
		metric.WithDescription("ORE rolls performed"),
		metric.WithUnit("{roll}"),
	); err != nil {
		return nil, fmt.Errorf("creating ore.rolls.total: %w", err)
	}

	if m.DiceRolled, err = meter.Int64Counter("ore.dice.rolled",
		metric.WithDescription("Individual d10s rolled"),
		metric.WithUnit("{die}"),
	); err != nil {
		return nil, fmt.Errorf("creating ore.dice.rolled: %w", err)
	}

	if m.SetWidth, err = meter.Int64Histogram("ore.set.width",
		metric.WithDescription("Width of each matched set"),
		metric.WithUnit("{die}"),
		metric.WithExplicitBucketBoundaries(2, 3, 4, 5, 6, 8, 10),
	); err != nil {
		return nil, fmt.Errorf("creating ore.set.width: %w", err)
	}

	if m.CommandParseFail, err = meter.Int64Counter("ore.command.parse_errors",
		metric.WithDescription("Rejected /ore commands"),
		metric.WithUnit("{command}"),
	); err != nil {
		return nil, fmt.Errorf("creating ore.command.parse_errors: %w", err)
	}

	return &m, nil
}

// RecordRoll counts one roll of dice dice and the widths of its sets.
func (m *Metrics) RecordRoll(ctx context.Context, origin string, dice int, setWidths []int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrOrigin.String(origin))
	m.RollTotal.Add(ctx, 1, attrs)
	m.DiceRolled.Add(ctx, int64(dice), attrs)
	for _, w := range setWidths {
		m.SetWidth.Record(ctx, int64(w), attrs)
	}
}

// RecordParseError counts one rejected command.
func (m *Metrics) RecordParseError(ctx context.Context) {
	if m == nil {
		return
	}
	m.CommandParseFail.Add(ctx, 1)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort turns "http://otel-collector:4318" into "otel-collector:4318".
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && u.Scheme == "https"
}
