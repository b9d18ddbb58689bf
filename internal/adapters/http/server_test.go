package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"go.uber.org/goleak"

	adapthttp "github.com/jsamuelsen11/ore-roller/internal/adapters/http"
	"github.com/jsamuelsen11/ore-roller/internal/platform/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

// startServer runs s in the background and waits until it is listening.
func startServer(t *testing.T, s *adapthttp.Server) <-chan error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case <-s.Ready():
	case err := <-errCh:
		t.Fatalf("Start() returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}
	return errCh
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), nil)

	if s == nil {
		t.Fatal("NewServer returned nil")
	}
	if s.ListenAddr() != nil {
		t.Errorf("ListenAddr() = %v before Start, want nil", s.ListenAddr())
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 8085}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:8085" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8085")
	}
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	s := adapthttp.NewServer(testServerConfig(), handler, discardLogger())
	errCh := startServer(t, s)

	transport := &http.Transport{}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	defer transport.CloseIdleConnections()

	resp, err := client.Get("http://" + s.ListenAddr().String() + "/")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("response = %d %q, want 200 %q", resp.StatusCode, body, "ok")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_ShutdownDefaultTimeout(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), http.NotFoundHandler(), discardLogger())
	errCh := startServer(t, s)

	// No deadline on the context: the default timeout applies.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "256.0.0.1", Port: 1}, http.NotFoundHandler(), discardLogger())

	if err := s.Start(); err == nil {
		t.Fatal("Start() error = nil, want listen error")
	}
}
