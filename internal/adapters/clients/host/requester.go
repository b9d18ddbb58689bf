package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/platform/httpclient"
)

// Requester runs one JSON exchange with the host: encode, send through the
// resilient client, check the status, translate failures, decode.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to path with reqBody as JSON (nil for none) and decodes
// a wantStatus response into respBody (nil to ignore the body). Any other
// status goes through TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.close(ctx, resp)
	}
	if err != nil {
		// Exhausted retries still hand back the final response.
		if resp != nil && resp.StatusCode != wantStatus {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "host request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, unavailable(err))
	}

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected host status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding %s %s: %w", method, path, err)
		}
	}
	return nil
}

// CircuitBreakerState reports the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) close(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing host response body", slog.Any("error", err))
	}
}
