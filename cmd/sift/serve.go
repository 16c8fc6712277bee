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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/sift/internal/cli"
	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/adapters/httpapi"
	"github.com/aretw0/sift/pkg/interp"
	"github.com/aretw0/sift/pkg/observability"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/aretw0/sift/pkg/session"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dialog sessions over HTTP",
	Long:  `Exposes session management and turns as a JSON API, with Prometheus metrics on /metrics. Sessions persist in Redis when SIFT_REDIS_ADDR is set, in memory otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig()
		if err != nil {
			return err
		}
		logger := logging.New(cfg.SlogLevel())

		root, err := loadSchema(cmd)
		if err != nil {
			return err
		}
		index, err := schema.NewIndex(root)
		if err != nil {
			return err
		}

		ctx := context.Background()
		completer, err := newCompleter(ctx, cfg)
		if err != nil {
			return err
		}

		metrics := observability.NewMetrics()
		registry := prometheus.NewRegistry()
		if err := metrics.Register(registry); err != nil {
			return err
		}

		manager := session.NewManager(newStore(cfg), index, session.WithLogger(logger))
		server := httpapi.NewServer(manager, completer,
			httpapi.WithLogger(logger),
			httpapi.WithInterpreterOptions(interp.WithHooks(metrics.Hooks()), interp.WithLogger(logger)),
			httpapi.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		)

		httpServer := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: server.Handler(),
		}

		errs := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", cfg.ListenAddr)
			errs <- httpServer.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errs:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-stop:
			logger.Info("shutting down", "signal", sig.String())
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
