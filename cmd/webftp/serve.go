package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c2fo/webftp/gateway"
	"github.com/c2fo/webftp/internal/config"
	"github.com/c2fo/webftp/internal/logging"
	"github.com/c2fo/webftp/internal/metrics"
	"github.com/c2fo/webftp/options"
	"github.com/c2fo/webftp/session"
	"github.com/c2fo/webftp/store"
	"github.com/c2fo/webftp/store/postgres"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the file manager API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}

	cmd.Flags().String("listen", "", "listen address (overrides config)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.ListenAddr = listen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	return runServer(ctx, cfg, logger)
}

func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	registerBackends(cfg)

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := session.NewRegistry(
		session.WithIdleTimeout(cfg.Sessions.IdleTimeout.Std()),
		session.WithSweepInterval(cfg.Sessions.SweepInterval.Std()),
		session.WithMaxSessions(cfg.Sessions.MaxSessions),
		session.WithLogger(logger),
	)

	opts := []options.Option[gateway.Server]{
		gateway.WithStore(st),
		gateway.WithLogger(logger),
		gateway.WithMaxUploadBytes(cfg.Transfer.MaxUploadBytes),
		gateway.WithMetricsEndpoint(cfg.MetricsAddr == ""),
	}
	if c, err := newCipher(cfg); err != nil {
		logger.Warn("saving connections is disabled", "error", err)
	} else {
		opts = append(opts, gateway.WithCipher(c))
	}
	gw := gateway.New(registry, opts...)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           gw.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		errc <- server.ListenAndServe()
	}()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			logger.Info("metrics listening", "addr", cfg.MetricsAddr)
			errc <- metricsServer.ListenAndServe()
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case serveErr = <-errc:
		logger.Error("server stopped", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	if metricsServer != nil {
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	registry.Close(shutdownCtx)
	gw.Wait()

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}

// openStore returns the configured connection store and a func that releases it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.ConnectionStore, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory connection store")
		return store.NewMemory(), func() {}, nil
	}

	pg, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.Migrate(ctx); err != nil {
		_ = pg.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("using postgres connection store")
	return pg, func() {
		if err := pg.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}, nil
}
