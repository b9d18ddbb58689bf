// Package main is the entry point for the ORE roller service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/ore-roller/internal/adapters/http"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/clients/host"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/dice"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/render"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/ore-roller/internal/app"
	"github.com/jsamuelsen11/ore-roller/internal/app/hooks"
	"github.com/jsamuelsen11/ore-roller/internal/platform/config"
	"github.com/jsamuelsen11/ore-roller/internal/platform/health"
	"github.com/jsamuelsen11/ore-roller/internal/platform/httpclient"
	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
	"github.com/jsamuelsen11/ore-roller/internal/platform/telemetry"
	"github.com/jsamuelsen11/ore-roller/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

// chatBackend is where rendered rolls and notifications go: the VTT host
// or the local SQLite chat log.
type chatBackend interface {
	ports.ChatClient
	ports.Notifier
	ports.HealthChecker
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	backend := do.MustInvoke[chatBackend](injector)
	registry.Register(backend)

	logger.Info("ore roller configured",
		slog.Bool("host_enabled", cfg.Host.Enabled),
		slog.String("dice_source", cfg.ORE.DiceSource),
		slog.Int("max_dice", cfg.ORE.MaxDice),
		slog.String("template", cfg.ORE.Template),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeStore(injector, logger)
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	closeStore(injector, logger)

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// closeStore closes the chat log if standalone mode opened one.
func closeStore(injector do.Injector, logger *slog.Logger) {
	store, err := do.Invoke[*sqlite.Store](injector)
	if err != nil || store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Error("chat log close error", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Host.Enabled {
		do.Provide(injector, func(i do.Injector) (*host.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			hc := httpclient.New(&cfg.Host, "vtt-host", metrics, logger)
			return host.NewClient(hc, logger), nil
		})
		do.Provide(injector, func(i do.Injector) (chatBackend, error) {
			return do.MustInvoke[*host.Client](i), nil
		})
	} else {
		do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
			return sqlite.Open(ctx, cfg.Storage.Path)
		})
		do.Provide(injector, func(i do.Injector) (chatBackend, error) {
			return do.MustInvoke[*sqlite.Store](i), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.DiceRoller, error) {
		if cfg.ORE.DiceSource == config.DiceSourceHost {
			return do.MustInvoke[*host.Client](i), nil
		}
		roller, err := dice.New(cfg.ORE.Seed)
		if err != nil {
			return nil, fmt.Errorf("creating dice roller: %w", err)
		}
		logger.Info("local dice roller ready", slog.Uint64("seed", roller.Seed()))
		return roller, nil
	})

	do.Provide(injector, func(_ do.Injector) (*render.Renderer, error) {
		return render.New()
	})

	do.Provide(injector, func(i do.Injector) (*app.RollService, error) {
		backend := do.MustInvoke[chatBackend](i)
		return app.NewRollService(
			do.MustInvoke[ports.DiceRoller](i),
			do.MustInvoke[*render.Renderer](i),
			backend,
			backend,
			do.MustInvoke[*telemetry.Metrics](i),
			app.RollSettings{
				MaxDice:      cfg.ORE.MaxDice,
				Template:     cfg.ORE.Template,
				BatchWorkers: cfg.ORE.BatchWorkers,
				BatchLimit:   cfg.ORE.BatchLimit,
			},
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*hooks.Registry, error) {
		reg := hooks.New()
		do.MustInvoke[*app.RollService](i).Register(reg)
		return reg, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[*app.RollService](i)
		h := adapthttp.Handlers{
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Hooks:  handlers.NewHookHandler(do.MustInvoke[*hooks.Registry](i)),
			ORE:    handlers.NewOREHandler(svc, do.MustInvoke[*render.Renderer](i), cfg.ORE.Template),
		}
		if !cfg.Host.Enabled {
			h.ChatLog = handlers.NewChatLogHandler(do.MustInvoke[*sqlite.Store](i))
		}
		return h, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		compress, err := middleware.Compression()
		if err != nil {
			return nil, fmt.Errorf("creating compression middleware: %w", err)
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			compress,
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
