package scheduler

import (
	"fmt"
	"time"

	"masjidhub-backend/internal/config"
	"masjidhub-backend/internal/jobs"
	"masjidhub-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the background jobs on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.JobRunner
	cfg    config.SchedulerConfig
}

func New(runner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		runner: runner,
		cfg:    cfg,
	}
}

func (s *Scheduler) Start() error {
	if err := s.registerJobs(); err != nil {
		return fmt.Errorf("failed to register jobs: %w", err)
	}
	s.cron.Start()
	logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) registerJobs() error {
	schedules := []struct {
		name string
		spec string
		fn   func()
	}{
		{"purge-expired-sessions", s.cfg.PurgeExpiredSessions, s.runner.PurgeExpiredSessions},
		{"remind-pending-admins", s.cfg.RemindPendingAdmins, s.runner.RemindPendingAdmins},
		{"open-monthly-contributions", s.cfg.OpenMonthlyContributions, s.runner.OpenMonthlyContributions},
		{"send-contribution-reminders", s.cfg.SendContributionReminders, s.runner.SendContributionReminders},
	}

	for _, job := range schedules {
		if _, err := s.cron.AddFunc(job.spec, job.fn); err != nil {
			return fmt.Errorf("job %s with schedule %q: %w", job.name, job.spec, err)
		}
		logger.Info("job scheduled", "job", job.name, "schedule", job.spec)
	}
	return nil
}
