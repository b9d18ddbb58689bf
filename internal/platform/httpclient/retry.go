package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
)

// jitterFraction bounds the random spread applied to each backoff delay.
const jitterFraction = 0.25

// doWithRetry replays req until it gets a non-retryable outcome or the
// attempts run out. Only idempotent requests are replayed; anything else
// gets a single attempt so a host that applied a POST but failed to answer
// does not see it twice. The body is buffered once so it can be resent.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	attempts := c.retry.maxAttempts
	if !isIdempotent(req) {
		attempts = 1
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		rewind(req, body)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return nil, err
			}
			continue
		}

		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if attempt == attempts-1 {
			return resp, lastErr
		}
		discard(resp)
	}

	return nil, lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains resp so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying host request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): exponential growth capped at maxInterval, then jittered.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	if delay < 0 {
		return 0
	}
	return time.Duration(delay)
}

// isRetryable treats everything except caller cancellation as transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// IdempotencyKeyHeader marks a non-idempotent request as safe to replay.
const IdempotencyKeyHeader = "Idempotency-Key"

// isIdempotent follows the net/http transport rule: safe methods, PUT and
// DELETE, or any request that carries an idempotency key.
func isIdempotent(req *http.Request) bool {
	switch req.Method {
	case "", http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	}
	return req.Header.Get(IdempotencyKeyHeader) != ""
}
