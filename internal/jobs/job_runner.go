package jobs

import (
	"context"
	"time"

	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"
	"masjidhub-backend/internal/service"
)

const jobTimeout = 10 * time.Minute

// JobRunner owns the background maintenance jobs. Every job runs under a
// recovery wrapper so one panicking job cannot take the scheduler down.
type JobRunner struct {
	adminRepo        repository.AdminRepository
	sessionRepo      repository.SessionRepository
	societyRepo      repository.SocietyRepository
	residentRepo     repository.ResidentRepository
	contributionRepo repository.ContributionRepository
	emailSvc         service.EmailService
	operatorEmail    string
}

func NewJobRunner(
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	societyRepo repository.SocietyRepository,
	residentRepo repository.ResidentRepository,
	contributionRepo repository.ContributionRepository,
	emailSvc service.EmailService,
	operatorEmail string,
) *JobRunner {
	return &JobRunner{
		adminRepo:        adminRepo,
		sessionRepo:      sessionRepo,
		societyRepo:      societyRepo,
		residentRepo:     residentRepo,
		contributionRepo: contributionRepo,
		emailSvc:         emailSvc,
		operatorEmail:    operatorEmail,
	}
}

func (j *JobRunner) runWithRecovery(name string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", name, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	logger.Info("job started", "job", name)
	if err := fn(ctx); err != nil {
		logger.Error("job failed", "job", name, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("job finished", "job", name, "duration", time.Since(start))
}

// RunAllNightlyJobs runs the daily maintenance set once, for the cronjob
// binary's -run-once mode.
func (j *JobRunner) RunAllNightlyJobs() {
	j.PurgeExpiredSessions()
	j.RemindPendingAdmins()
}

// RunAllMonthlyJobs runs the month-boundary set once.
func (j *JobRunner) RunAllMonthlyJobs() {
	j.OpenMonthlyContributions()
	j.SendContributionReminders()
}
