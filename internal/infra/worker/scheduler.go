package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"newsdesk/internal/handler/http/respond"
)

// Job is one unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler runs a Job on a cron schedule until stopped.
type Scheduler struct {
	cron    *cron.Cron
	job     Job
	cfg     Config
	logger  *slog.Logger
	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewScheduler registers job under cfg.Schedule. The job is not started.
func NewScheduler(name string, job Job, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		// overlapping runs are skipped rather than queued
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		job:     job,
		cfg:     cfg,
		logger:  logger.With(slog.String("job", name)),
		baseCtx: ctx,
		cancel:  cancel,
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, func() { s.RunOnce(s.baseCtx) }); err != nil {
		cancel()
		return nil, fmt.Errorf("add cron job: %w", err)
	}
	return s, nil
}

// RunOnce runs the job immediately with the configured timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := s.job.Run(ctx); err != nil {
		// 機密情報をマスクしてログ出力
		s.logger.Error("background job failed", slog.String("error", respond.SanitizeError(err)))
	}
}

// Start begins scheduling.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("background job scheduled",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("timezone", s.cfg.Timezone))
}

// Stop cancels a running job and waits for it to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}
