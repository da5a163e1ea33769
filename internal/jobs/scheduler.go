package jobs

import (
	"context"

	"memberdesk/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Scheduler struct {
	cron *cron.Cron
	jobs *Jobs
}

func NewScheduler(jobs *Jobs) *Scheduler {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.L()))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron: c,
		jobs: jobs,
	}
}

// Start registers the jobs, runs the gauge refresh once so /metrics is
// populated right away, and starts the cron loop.
func (s *Scheduler) Start() error {
	entries := []struct {
		name     string
		schedule string
		fn       func()
	}{
		{"staging sweep", SweepSchedule, s.jobs.SweepStaging},
		{"active subscriptions gauge", ActiveGaugeSchedule, s.jobs.RefreshActiveSubscriptions},
	}

	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.schedule, e.fn); err != nil {
			logger.Error("failed to schedule job", "job", e.name, "error", err)
			return err
		}
		logger.Info("scheduled job", "job", e.name, "schedule", e.schedule)
	}

	go s.jobs.RefreshActiveSubscriptions()
	s.cron.Start()
	return nil
}

// Stop halts the scheduler. The returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
