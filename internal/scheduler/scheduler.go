package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/config"
	"github.com/farmconnect/trader/internal/repository/mongodb"
	"github.com/farmconnect/trader/internal/repository/sheets"
	"github.com/farmconnect/trader/internal/service/reporting"
	"github.com/farmconnect/trader/pkg/clients/notify"
)

// Scheduler runs the daily trading summary job. The sheets mirror and the
// webhook notifier are optional collaborators; a nil value disables that
// delivery.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	repo         mongodb.Repository
	sheetsRepo   sheets.Repository
	notifier     notify.Client
	cfg          config.ReportingConfig
	loc          *time.Location
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, repo mongodb.Repository, sheetsRepo sheets.Repository, notifier notify.Client, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		repo:         repo,
		sheetsRepo:   sheetsRepo,
		notifier:     notifier,
		cfg:          cfg,
		loc:          loc,
		logger:       logger,
	}, nil
}

// Start registers the daily summary job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailySummary); err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailySummary() {
	s.logger.Info("generating daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := s.reportingSvc.Summarize(ctx, time.Now().In(s.loc))
	if err != nil {
		s.logger.Error("failed to compute daily summary", zap.Error(err))
		return
	}

	if err := s.repo.SaveDailySummary(ctx, summary); err != nil {
		s.logger.Error("failed to store daily summary", zap.Error(err))
		return
	}

	if s.sheetsRepo != nil {
		if err := s.sheetsRepo.AppendSummary(ctx, summary); err != nil {
			s.logger.Error("failed to mirror daily summary to sheet", zap.Error(err))
		}
	}

	if s.notifier != nil {
		text := fmt.Sprintf("Daily summary %s: %d collections, %d sales, revenue %.2f, commission %.2f.",
			summary.Date.Format("2006-01-02"), summary.GoodsCount, summary.CustomerCount,
			summary.TotalRevenue, summary.TotalCommission)
		if err := s.notifier.Send(ctx, text); err != nil {
			s.logger.Error("failed to send daily summary notification", zap.Error(err))
		}
	}

	s.logger.Info("daily summary stored", zap.Time("date", summary.Date))
}
