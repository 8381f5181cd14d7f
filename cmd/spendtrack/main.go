package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"spendtrack/internal/assistant"
	"spendtrack/internal/backend"
	"spendtrack/internal/config"
	"spendtrack/internal/currency"
	apphttp "spendtrack/internal/http"
	applog "spendtrack/internal/log"
	"spendtrack/internal/report"
	"spendtrack/internal/repository"
)

func main() {
	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	res, err := backend.Create(backend.Config{
		Type:         backend.Type(cfg.StoreBackend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger)
	if err != nil {
		logger.Error("backend initialization failed", applog.FieldError, err)
		os.Exit(1)
	}

	expenses := repository.NewExpenseRepository(res.Store, logger)
	categories := repository.NewCategoryRegistry(res.Store, logger)
	profile := repository.NewProfileRepository(res.Store, logger)

	chat := assistant.New(categories.Categories, func(amount float64) string {
		return currency.Format(amount, profile.Currency())
	})
	notifier := assistant.NewNotifier()
	chatLogger := logger.WithComponent(applog.ComponentAssistant)
	notifier.Subscribe(func() {
		chatLogger.Debug("chat panel opened")
	})

	exporter := report.NewExporter(profile.Currency)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Expenses:   expenses,
		Categories: categories,
		Profile:    profile,
		Assistant:  chat,
		Notifier:   notifier,
		Exporter:   exporter,
		ReplyDelay: cfg.ChatReplyDelay,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			"port", cfg.Port,
			"backend", cfg.StoreBackend,
			applog.FieldOperation, applog.OpStartup)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", applog.FieldOperation, applog.OpShutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", applog.FieldError, err)
		_ = res.Cleanup()
		os.Exit(1)
	}

	if err := res.Cleanup(); err != nil {
		logger.Error("backend cleanup failed", applog.FieldError, err)
	}
	logger.Info("server stopped gracefully")
}
