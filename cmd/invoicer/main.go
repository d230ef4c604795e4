package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-co-op/gocron/v2"

	"afyalinks/internal/app"
	"afyalinks/internal/pkg/config"
	"afyalinks/internal/pkg/dotenv"
	"afyalinks/internal/pkg/postgres"
	"afyalinks/pkg/logger"
	"afyalinks/pkg/logger/zap_adapter"
)

func main() {
	runOnce := flag.Bool("once", false, "run one invoice generation pass and exit")
	flag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting invoicer application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file",
				logger.NewField("error", err),
			)
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config",
			logger.NewField("error", err),
		)
		return
	}

	err = run(context.Background(), appLogger, cfg, *runOnce)
	if err != nil {
		mainLog.Error("application failed",
			logger.NewField("error", err),
		)
		return
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config, runOnce bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := app.InitializeInvoicerApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// Operator escape hatch: one generation pass, no scheduler. Safe to run
	// at any time thanks to the per-pharmacy, per-period insert idempotency.
	if runOnce {
		created, err := businessApp.ServiceInvoice.GenerateWeekly(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("invoice generation: %w", err)
		}
		runLog.Info("one-off invoice generation finished",
			logger.NewField("invoices_created", created),
		)
		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	// Monday 00:05 UTC, shortly after the billing week closes. The insert is
	// idempotent per pharmacy and period, so a missed or repeated run only
	// fills in whatever is not there yet.
	_, err = scheduler.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			now := time.Now().UTC()
			created, err := businessApp.ServiceInvoice.GenerateWeekly(ctx, now)
			if err != nil {
				runLog.Error("weekly invoice generation failed",
					logger.NewField("error", err),
				)
				return
			}
			runLog.Info("weekly invoice generation finished",
				logger.NewField("invoices_created", created),
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("invoice job: %w", err)
	}

	scheduler.Start()
	runLog.Info("invoice scheduler started")

	<-ctx.Done()
	runLog.Info("Shutdown signal received")

	if err := scheduler.Shutdown(); err != nil {
		return fmt.Errorf("scheduler shutdown: %w", err)
	}

	runLog.Info("Invoicer stopped")
	return nil
}
