package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumenstudio/studio/internal/app"
	"github.com/lumenstudio/studio/internal/pkg/config"
	"github.com/lumenstudio/studio/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "studio",
	})

	srvLog := logger.Component("server")

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		srvLog.Error().Err(err).Msg("failed to build application")
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			srvLog.Warn().Err(err).Msg("close failed")
		}
	}()

	if cfg.SeedDemo {
		if _, err := a.Seeder.Seed(ctx); err != nil {
			srvLog.Error().Err(err).Msg("failed to seed demo data")
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		srvLog.Info().
			Str("port", cfg.Port).
			Str("store", cfg.StoreDriver).
			Str("auth", cfg.AuthBackend).
			Msg("starting HTTP server")
		if err := a.Echo.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			srvLog.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	srvLog.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		srvLog.Error().Err(err).Msg("server forced to shutdown")
		return err
	}
	srvLog.Info().Msg("server exited gracefully")
	return nil
}
