package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/invoicepilot/ledgercore/internal/app"
	"github.com/invoicepilot/ledgercore/internal/platform/cache"
	"github.com/invoicepilot/ledgercore/internal/platform/db"
	"github.com/invoicepilot/ledgercore/internal/snapshot"
	"github.com/invoicepilot/ledgercore/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	snapshots := snapshot.NewService(snapshot.NewRepository(pool))
	scanner := jobs.NewReconScanner(snapshots, redisClient, logger)
	integrity := jobs.NewGLIntegrityChecker(snapshots, logger)

	scanTask, err := jobs.NewReconScanTask(jobs.ReconScanPayload{SummaryKey: jobs.DefaultReconSummaryKey})
	if err != nil {
		logger.Error("build scan task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskReconScan, Handler: scanner.HandleReconScan},
			{Type: jobs.TaskGLIntegrity, Handler: integrity.HandleGLIntegrity},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.ReconScanCron, Task: scanTask, Options: []asynq.Option{asynq.Queue(jobs.QueueDefault)}},
			{Spec: "30 2 * * *", Task: jobs.NewGLIntegrityTask(), Options: []asynq.Option{asynq.Queue(jobs.QueueDefault)}},
		},
	})
	if err != nil {
		logger.Error("build worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started")
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
