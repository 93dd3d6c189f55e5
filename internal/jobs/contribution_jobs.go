package jobs

import (
	"context"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
)

// OpenMonthlyContributions inserts a due contribution row for every approved
// resident for the current month. The insert is idempotent, so re-running the
// job mid-month only fills gaps.
func (j *JobRunner) OpenMonthlyContributions() {
	j.runWithRecovery("open-monthly-contributions", func(ctx context.Context) error {
		month := time.Now().UTC().Format("2006-01")

		societies, err := j.societyRepo.List(ctx)
		if err != nil {
			return err
		}

		var opened, skipped int
		for _, society := range societies {
			residents, err := j.residentRepo.ListApprovedBySociety(ctx, society.ID)
			if err != nil {
				return err
			}
			for _, resident := range residents {
				contribution := &domain.Contribution{
					SocietyID:   society.ID,
					ResidentID:  resident.ID,
					Month:       month,
					AmountCents: society.MonthlyContributionCents,
					Status:      domain.ContributionDue,
				}
				ok, err := j.contributionRepo.Create(ctx, contribution)
				if err != nil {
					return err
				}
				if ok {
					opened++
				} else {
					skipped++
				}
			}
		}

		logger.Info("monthly contributions opened", "month", month, "opened", opened, "existing", skipped)
		return nil
	})
}

// SendContributionReminders mails every resident whose current-month
// contribution is still due.
func (j *JobRunner) SendContributionReminders() {
	j.runWithRecovery("send-contribution-reminders", func(ctx context.Context) error {
		month := time.Now().UTC().Format("2006-01")

		contributions, residents, err := j.contributionRepo.ListDueByMonth(ctx, month)
		if err != nil {
			return err
		}

		var sent int
		for i, contribution := range contributions {
			resident := residents[i]
			if resident.Email == "" {
				continue
			}
			err := j.emailSvc.SendContributionReminder(ctx, resident.Email, resident.Name, month, contribution.AmountCents)
			if err != nil {
				logger.Warn("contribution reminder failed",
					"resident_id", resident.ID, "month", month, "error", err)
				continue
			}
			sent++
		}

		logger.Info("contribution reminders sent", "month", month, "due", len(contributions), "sent", sent)
		return nil
	})
}
