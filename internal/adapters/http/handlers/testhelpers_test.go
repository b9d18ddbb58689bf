package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func strPtr(s string) *string { return &s }

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != dto.ContentTypeProblem {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ContentTypeProblem)
	}
	return decodeJSON[dto.ErrorResponse](t, rec)
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
