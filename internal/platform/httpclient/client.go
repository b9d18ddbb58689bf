// Package httpclient is the outbound HTTP client used to reach the VTT
// host. Every request passes, in order, through
//
//	circuit breaker -> rate limiter -> header injection -> client span -> retry -> transport
//
// and is counted in the client request metrics.
//
//	client := httpclient.New(&cfg.Host, "vtt-host", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL()+"/api/v1/dice/roll", body)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/ore-roller/internal/platform/config"
	"github.com/jsamuelsen11/ore-roller/internal/platform/telemetry"
)

// Propagated request headers.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for propagation to the host.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation id for propagation to the host.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationIDFromContext returns the id set by WithCorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	peer       string
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter // nil disables rate limiting
	retry      retryPolicy
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New builds a Client for the host described by cfg. peer names the
// downstream in spans, metrics and health reports. metrics may be nil.
func New(cfg *config.HostConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		peer:       peer,
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return c
}

// Do sends req. A non-nil response always has an open body the caller must
// close. When retries on a retryable status run out, Do returns the last
// response together with an error. Breaker rejections and transport
// failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var last *http.Response
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.doWithRetry(spanCtx, req.WithContext(spanCtx))
		if r != nil {
			span.SetAttributes(attribute.Int("http.status_code", r.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		last = r
		return r, err
	})
	if resp == nil {
		// gobreaker drops the result when the callback fails.
		resp = last
	}

	c.record(ctx, req.Method, start, resp, err)

	return resp, err
}

// BaseURL returns the host root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the peer name.
func (c *Client) Name() string {
	return c.peer
}

// CircuitBreakerState reports "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reports the host's availability from the breaker state. No
// request is made.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

func injectHeaders(ctx context.Context, req *http.Request) {
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(HeaderCorrelationID, id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(telemetry.ScopeName).Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.peer),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.peer),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	result := "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
