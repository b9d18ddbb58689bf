package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/middleware"
)

func compressed(t *testing.T, body string) http.Handler {
	t.Helper()
	mw, err := middleware.Compression()
	require.NoError(t, err)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, body)
	}))
}

func TestCompression_GzipsLargeBodies(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`<div class="ore-set-roll" data-width="2" data-height="5">2x5</div>`, 50)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ore/rolls/batch", http.NoBody)
	req.Header.Set("Accept-Encoding", "gzip")
	compressed(t, body).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestCompression_PassThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		acceptEncoding string
	}{
		{name: "client does not accept gzip", body: strings.Repeat("x", 4096)},
		{name: "small body", body: `{"status":"ok"}`, acceptEncoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			compressed(t, tt.body).ServeHTTP(rec, req)

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
