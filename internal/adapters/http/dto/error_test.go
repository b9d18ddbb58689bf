package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
)

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	problem := func(status int, detail string) dto.ErrorResponse {
		return dto.ErrorResponse{
			Type:     "about:blank",
			Title:    http.StatusText(status),
			Status:   status,
			Detail:   detail,
			Instance: "/api/v1/ore/rolls",
		}
	}

	tests := []struct {
		name string
		err  error
		want dto.ErrorResponse
	}{
		{
			name: "not found",
			err:  domain.ErrNotFound,
			want: problem(http.StatusNotFound, domain.ErrNotFound.Error()),
		},
		{
			name: "wrapped not found keeps its status",
			err:  fmt.Errorf("rendering roll: %w", domain.ErrNotFound),
			want: problem(http.StatusNotFound, "rendering roll: "+domain.ErrNotFound.Error()),
		},
		{
			name: "host unavailable",
			err:  fmt.Errorf("rolling dice: %w", domain.ErrUnavailable),
			want: problem(http.StatusBadGateway, "rolling dice: "+domain.ErrUnavailable.Error()),
		},
		{
			name: "unmapped errors hide their message",
			err:  errors.New("sqlite: database is locked"),
			want: problem(http.StatusInternalServerError, "internal error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/ore/rolls", nil)

			if diff := cmp.Diff(tt.want, dto.NewErrorResponse(r, tt.err)); diff != "" {
				t.Errorf("NewErrorResponse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewErrorResponse_StatusOfTypedErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/ore/rolls", nil)

	if got := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{"dice_count": "must be positive"}}); got.Status != http.StatusBadRequest {
		t.Errorf("ValidationError status = %d, want %d", got.Status, http.StatusBadRequest)
	}
	if got := dto.NewErrorResponse(r, &domain.CommandParseError{Text: "/ore abc", Reason: "invalid dice count"}); got.Status != http.StatusUnprocessableEntity {
		t.Errorf("CommandParseError status = %d, want %d", got.Status, http.StatusUnprocessableEntity)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"raw_rolls[2]": "must be 1-10, got 11",
		"raw_rolls[0]": "must be 1-10, got 0",
		"flavor_text":  "too long",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/ore/parse", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}
	if got.Errors[0].Location != "body.flavor_text" {
		t.Errorf("Errors[0].Location = %q, want %q", got.Errors[0].Location, "body.flavor_text")
	}
}

func TestNewErrorResponse_CommandParseError(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/hooks/chat-message", nil)
	got := dto.NewErrorResponse(r, &domain.CommandParseError{Text: "/ore abc", Reason: "invalid dice count"})

	if got.Detail != "Failed parsing ORE command: \n/ore abc" {
		t.Errorf("Detail = %q", got.Detail)
	}
	if len(got.Errors) != 1 || got.Errors[0].Location != "body.content" {
		t.Fatalf("Errors = %+v, want one body.content entry", got.Errors)
	}
	if got.Errors[0].Value != "/ore abc" {
		t.Errorf("Errors[0].Value = %v, want %q", got.Errors[0].Value, "/ore abc")
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/ore/rolls", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{
		"dice_count": "must be positive, got 0",
	}})

	if ct := w.Header().Get("Content-Type"); ct != dto.ContentTypeProblem {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ContentTypeProblem)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.dice_count" {
		t.Errorf("Errors = %+v, want one body.dice_count entry", resp.Errors)
	}
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/slow", nil)

	dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request timed out")

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusGatewayTimeout)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Title != "Gateway Timeout" || resp.Detail != "request timed out" || resp.Instance != "/slow" {
		t.Errorf("problem = %+v", resp)
	}
}
