package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Host.Enabled {
		t.Error("Host.Enabled = true, want false for local")
	}
	if cfg.ORE.DiceSource != config.DiceSourceLocal {
		t.Errorf("ORE.DiceSource = %q, want %q", cfg.ORE.DiceSource, config.DiceSourceLocal)
	}
	if cfg.Storage.Path != "data/local-chat.db" {
		t.Errorf("Storage.Path = %q, want \"data/local-chat.db\"", cfg.Storage.Path)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if !cfg.Host.Enabled {
		t.Error("Host.Enabled = false, want true for prod")
	}
	if cfg.ORE.DiceSource != config.DiceSourceHost {
		t.Errorf("ORE.DiceSource = %q, want %q", cfg.ORE.DiceSource, config.DiceSourceHost)
	}
	if cfg.Host.RateLimit.RequestsPerSecond != 50 {
		t.Errorf("Host.RateLimit.RequestsPerSecond = %v, want 50", cfg.Host.RateLimit.RequestsPerSecond)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry = %+v, want enabled otlp", cfg.Telemetry)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// From base.yaml, not overridden by local.yaml.
	if cfg.ORE.MaxDice != 50 {
		t.Errorf("ORE.MaxDice = %d, want 50 (from base)", cfg.ORE.MaxDice)
	}
	if cfg.ORE.Template != "ore-roll" {
		t.Errorf("ORE.Template = %q, want \"ore-roll\" (from base)", cfg.ORE.Template)
	}
	if cfg.Host.Retry.MaxAttempts != 3 {
		t.Errorf("Host.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Host.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_ORE_MAX_DICE", "12")
	t.Setenv("APP_ORE_SEED", "42")
	t.Setenv("APP_HOST_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.ORE.MaxDice != 12 {
		t.Errorf("ORE.MaxDice = %d, want 12", cfg.ORE.MaxDice)
	}
	if cfg.ORE.Seed != 42 {
		t.Errorf("ORE.Seed = %d, want 42", cfg.ORE.Seed)
	}
	if cfg.Host.Retry.MaxAttempts != 7 {
		t.Errorf("Host.Retry.MaxAttempts = %d, want 7", cfg.Host.Retry.MaxAttempts)
	}
}

func TestLoad_WithConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "ore:\n  max_dice: 30\n  template: ore-roll-compact\n")
	writeFile(t, filepath.Join(dir, "table.yaml"), "ore:\n  max_dice: 10\nlog:\n  format: text\n")
	t.Setenv("APP_ORE_BATCH_LIMIT", "5")

	cfg, err := config.Load("table", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load(\"table\") error: %v", err)
	}

	if cfg.ORE.MaxDice != 10 {
		t.Errorf("ORE.MaxDice = %d, want 10 (profile beats base)", cfg.ORE.MaxDice)
	}
	if cfg.ORE.Template != "ore-roll-compact" {
		t.Errorf("ORE.Template = %q, want \"ore-roll-compact\" (from base)", cfg.ORE.Template)
	}
	if cfg.ORE.BatchLimit != 5 {
		t.Errorf("ORE.BatchLimit = %d, want 5 (from env)", cfg.ORE.BatchLimit)
	}
	if cfg.ORE.BatchWorkers != 4 {
		t.Errorf("ORE.BatchWorkers = %d, want 4 (default)", cfg.ORE.BatchWorkers)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
}

func TestLoad_InvalidLayerFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "{}\n")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "ore:\n  dice_source: host\n  max_dice: 0\n")

	_, err := config.Load("broken", config.WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load(\"broken\") returned nil error, want validation error")
	}
	for _, want := range []string{"ore.max_dice", "ore.dice_source host requires host.enabled"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("nonexistent"); err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "x/y"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "zero max dice", mutate: func(c *config.Config) { c.ORE.MaxDice = 0 }, wantErr: true},
		{name: "unknown dice source", mutate: func(c *config.Config) { c.ORE.DiceSource = "random.org" }, wantErr: true},
		{name: "host dice without host", mutate: func(c *config.Config) { c.ORE.DiceSource = config.DiceSourceHost }, wantErr: true},
		{
			name: "host dice with host",
			mutate: func(c *config.Config) {
				c.Host.Enabled = true
				c.ORE.DiceSource = config.DiceSourceHost
			},
		},
		{
			name: "host enabled without base url",
			mutate: func(c *config.Config) {
				c.Host.Enabled = true
				c.Host.BaseURL = ""
			},
			wantErr: true,
		},
		{name: "standalone without storage path", mutate: func(c *config.Config) { c.Storage.Path = "" }, wantErr: true},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() returned error for valid config: %v", err)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Host: config.HostConfig{
			BaseURL: "http://localhost:30000",
			Timeout: 5 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     2 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		ORE: config.OREConfig{
			MaxDice:      50,
			Template:     "ore-roll",
			DiceSource:   config.DiceSourceLocal,
			BatchWorkers: 4,
			BatchLimit:   20,
		},
		Storage: config.StorageConfig{Path: "data/chat.db"},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "ore-roller",
		},
	}
}
