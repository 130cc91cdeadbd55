package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/fancyfont/internal/config"
	"github.com/JonMunkholm/fancyfont/internal/core"
	"github.com/JonMunkholm/fancyfont/internal/logging"
	"github.com/JonMunkholm/fancyfont/internal/style"
	_ "github.com/JonMunkholm/fancyfont/internal/style/fonts" // Register all styles
	"github.com/JonMunkholm/fancyfont/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"max_input_length", cfg.Convert.MaxInputLength,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"require_api_key", cfg.Security.RequireAPIKey,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	service := core.NewService(style.Default, cfg)
	slog.Info("styles registered", "count", style.Count())

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := shutdown(ctx, server, service); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	<-done
	slog.Info("server stopped")
}

type httpServer interface {
	Shutdown(ctx context.Context) error
}

type conversions interface {
	LimiterStatus() core.LimiterStatus
	WaitForConversions(ctx context.Context) error
}

// shutdown stops accepting requests, then waits for conversions already
// running to finish.
func shutdown(ctx context.Context, server httpServer, svc conversions) error {
	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	if status := svc.LimiterStatus(); status.Active > 0 {
		slog.Info("waiting for conversions to complete", "active", status.Active)
		if err := svc.WaitForConversions(ctx); err != nil {
			slog.Warn("conversions did not complete in time", "error", err)
			return err
		}
	}
	return nil
}
