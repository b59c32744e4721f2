// Command toolgate runs the tool gateway: a small HTTP service exposing
// joke and translation tools behind a shared-secret check.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/toolgate/cache"
	"github.com/jonwraymond/toolgate/config"
	"github.com/jonwraymond/toolgate/dispatch"
	"github.com/jonwraymond/toolgate/gateway"
	"github.com/jonwraymond/toolgate/health"
	"github.com/jonwraymond/toolgate/observe"
	"github.com/jonwraymond/toolgate/registry"
	"github.com/jonwraymond/toolgate/tools"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "toolgate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Tracing: observe.TracingConfig{
			Enabled:   cfg.TracingEnabled,
			Exporter:  cfg.TracingExporter,
			SamplePct: cfg.TracingSamplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  cfg.MetricsEnabled,
			Exporter: cfg.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   cfg.LogLevel,
		},
	})
	if err != nil {
		return err
	}
	logger := obs.Logger()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return err
	}

	toolSet := tools.NewSet(tools.Config{
		ChuckBaseURL:    cfg.ChuckBaseURL,
		DadJokeBaseURL:  cfg.DadJokeBaseURL,
		LingvaBaseURL:   cfg.LingvaBaseURL,
		MyMemoryBaseURL: cfg.MyMemoryBaseURL,
		Cache:           cache.NewMemoryCache(),
		CachePolicy: cache.Policy{
			DefaultTTL: cfg.CacheTTL,
			MaxTTL:     cache.DefaultPolicy().MaxTTL,
		},
	})

	reg := registry.New()
	if err := toolSet.RegisterAll(reg); err != nil {
		return err
	}

	agg := health.NewAggregator()
	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))

	srv := gateway.NewServer(gateway.Config{APIKey: cfg.APIKey}, reg,
		dispatch.New(reg, mw), toolSet, agg, logger)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(gctx, "listening",
			observe.Field{Key: "addr", Value: cfg.Addr},
			observe.Field{Key: "tools", Value: reg.Len()},
		)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		logger.Info(shutdownCtx, "shutting down")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return obs.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
