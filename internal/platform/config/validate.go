package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Host.validate(),
		c.ORE.validate(c.Host.Enabled),
		c.Storage.validate(c.Host.Enabled),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (h *HostConfig) validate() error {
	if !h.Enabled {
		return nil
	}

	var errs []error

	if h.BaseURL == "" {
		errs = append(errs, errors.New("host.base_url must not be empty when host is enabled"))
	}
	if h.Timeout <= 0 {
		errs = append(errs, errors.New("host.timeout must be positive"))
	}
	if h.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("host.retry.max_attempts must be >= 1, got %d", h.Retry.MaxAttempts))
	}
	if h.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("host.retry.multiplier must be positive, got %f", h.Retry.Multiplier))
	}
	if h.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("host.circuit_breaker.max_failures must be >= 1, got %d",
			h.CircuitBreaker.MaxFailures))
	}
	if h.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("host.rate_limit.requests_per_second must not be negative"))
	}
	if h.RateLimit.RequestsPerSecond > 0 && h.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("host.rate_limit.burst_size must be >= 1, got %d", h.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (o *OREConfig) validate(hostEnabled bool) error {
	var errs []error

	if o.MaxDice < 1 {
		errs = append(errs, fmt.Errorf("ore.max_dice must be >= 1, got %d", o.MaxDice))
	}
	if strings.TrimSpace(o.Template) == "" {
		errs = append(errs, errors.New("ore.template must not be empty"))
	}

	switch o.DiceSource {
	case DiceSourceLocal:
	case DiceSourceHost:
		if !hostEnabled {
			errs = append(errs, errors.New("ore.dice_source host requires host.enabled"))
		}
	default:
		errs = append(errs, fmt.Errorf("ore.dice_source must be one of: local, host; got %q", o.DiceSource))
	}

	if o.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("ore.batch_workers must be >= 1, got %d", o.BatchWorkers))
	}
	if o.BatchLimit < 1 {
		errs = append(errs, fmt.Errorf("ore.batch_limit must be >= 1, got %d", o.BatchLimit))
	}

	return errors.Join(errs...)
}

// The chat log is only needed when there is no host to post to.
func (s *StorageConfig) validate(hostEnabled bool) error {
	if hostEnabled {
		return nil
	}
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("storage.path must not be empty when host is disabled")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
