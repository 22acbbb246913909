package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/config"
	"github.com/farmconnect/trader/internal/repository/mongodb"
	"github.com/farmconnect/trader/internal/repository/sheets"
	"github.com/farmconnect/trader/internal/scheduler"
	"github.com/farmconnect/trader/internal/server/handlers"
	"github.com/farmconnect/trader/internal/server/router"
	"github.com/farmconnect/trader/internal/service/documents"
	reportingsvc "github.com/farmconnect/trader/internal/service/reporting"
	"github.com/farmconnect/trader/pkg/clients/notify"
	"github.com/farmconnect/trader/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		baseLogger.Fatal("failed to load timezone", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
	}

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var sheetsRepo sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("daily summary sheet mirror enabled")
	}

	var notifier notify.Client
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("daily summary webhook notifier enabled")
	}

	reportingSvc := reportingsvc.NewService(mongoRepo, logger.Named(baseLogger, "svc.reporting"))
	renderer := documents.NewRenderer(nil, logger.Named(baseLogger, "svc.documents"))
	bulkScheduler := documents.NewBulkScheduler(cfg.Documents.BulkDelay, logger.Named(baseLogger, "svc.documents.bulk"))

	h := router.Handlers{
		Reports:   handlers.NewReportsHandler(reportingSvc, loc, logger.Named(baseLogger, "handlers.reports")),
		Exports:   handlers.NewExportsHandler(reportingSvc, loc, logger.Named(baseLogger, "handlers.exports")),
		Documents: handlers.NewDocumentsHandler(mongoRepo, reportingSvc, renderer, bulkScheduler, cfg.Documents.OutputDir, loc, logger.Named(baseLogger, "handlers.documents")),
		Entry:     handlers.NewEntryHandler(mongoRepo, logger.Named(baseLogger, "handlers.entry")),
	}
	engine := router.New(h, logger.Named(baseLogger, "router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, mongoRepo, sheetsRepo, notifier, logger.Named(baseLogger, "scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
