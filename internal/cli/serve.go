package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/discount-form/internal/api"
	"github.com/eshaffer321/discount-form/internal/domain/amount"
	"github.com/eshaffer321/discount-form/internal/domain/worksheet"
	"github.com/eshaffer321/discount-form/internal/infrastructure/config"
	"github.com/eshaffer321/discount-form/internal/infrastructure/logging"
)

// RunServe runs the API server until SIGINT or SIGTERM.
func RunServe(cfg *config.Config, flags *ServeFlags) error {
	// Set up logging
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "api")

	port := cfg.Server.Port
	if flags.Port != 0 {
		port = flags.Port
	}

	apiCfg := api.Config{
		Port:           port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Locale:         cfg.Worksheet.Locale,
		Title:          cfg.Worksheet.Title,
	}

	// Create and start server
	server := api.NewServer(apiCfg, logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	// Start server (blocks until shutdown)
	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}

// RunCalc allocates the target across the items given on the command
// line and prints the result to w.
func RunCalc(cfg *config.Config, flags *CalcFlags, w io.Writer) error {
	locale := cfg.Worksheet.Locale
	if flags.Locale != "" {
		locale = flags.Locale
	}

	// stdout carries the result, so diagnostics go to stderr
	logger := logging.NewLoggerTo(os.Stderr, cfg.Observability.Logging).With("system", "cli")
	logger.Debug("calculating", "items", len(flags.Items), "target", flags.Target, "locale", locale)

	renderer := worksheet.NewRenderer(amount.NewFormatterFromString(locale))
	view := renderer.Render(flags.State())

	if flags.JSON {
		return PrintJSON(w, view)
	}

	PrintHeader(w, locale)
	return PrintWorksheet(w, view)
}
