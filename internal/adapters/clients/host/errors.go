// Package host is the anti-corruption layer over the VTT host REST API. It
// turns the host's dice, chat and notification resources into the dice
// roller, chat client and notifier ports, and maps host failures onto
// domain errors.
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
)

const maxErrorBody = 1 << 20

// problemDetail is the host's RFC 9457 error body.
type problemDetail struct {
	Title  string        `json:"title"`
	Detail string        `json:"detail"`
	Errors []fieldDetail `json:"errors"`
}

type fieldDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a failed host response to a domain error:
// 400/422 become validation errors (field level when the body lists
// fields), 404 not found, and 401, 403, 429 and 5xx unavailable.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = pd.Title
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("host: %s: %w", detail, domain.ErrValidation)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("host refused the extension (%d): %s: %w", code, detail, domain.ErrUnavailable)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("host: %s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("host: unexpected status %d: %s", code, detail)
	}
}

func readProblem(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

func toValidationError(details []fieldDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// unavailable marks transport and breaker failures as ErrUnavailable.
// Caller cancellation passes through unchanged.
func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
