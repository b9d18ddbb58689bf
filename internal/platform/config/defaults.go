package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxDice      = 50
	defaultBatchWorkers = 4
	defaultBatchLimit   = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"host.enabled":                         false,
		"host.base_url":                        "http://localhost:30000",
		"host.timeout":                         "5s",
		"host.retry.max_attempts":              defaultRetryMaxAttempts,
		"host.retry.initial_interval":          "100ms",
		"host.retry.max_interval":              "2s",
		"host.retry.multiplier":                defaultRetryMultiplier,
		"host.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"host.circuit_breaker.timeout":         "30s",
		"host.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"host.rate_limit.requests_per_second":  0,
		"host.rate_limit.burst_size":           1,

		"ore.max_dice":      defaultMaxDice,
		"ore.template":      "ore-roll",
		"ore.dice_source":   DiceSourceLocal,
		"ore.seed":          0,
		"ore.batch_workers": defaultBatchWorkers,
		"ore.batch_limit":   defaultBatchLimit,

		"storage.path": "data/chat.db",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "ore-roller",
	}
}
