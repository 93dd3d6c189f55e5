package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"masjidhub-backend/internal/logger"
)

const pendingReminderAge = 72 * time.Hour

// PurgeExpiredSessions deletes session rows past their expiry.
func (j *JobRunner) PurgeExpiredSessions() {
	j.runWithRecovery("purge-expired-sessions", func(ctx context.Context) error {
		deleted, err := j.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		logger.Info("expired sessions purged", "count", deleted)
		return nil
	})
}

// RemindPendingAdmins mails the operator a digest of admin registrations that
// have sat unapproved for more than three days.
func (j *JobRunner) RemindPendingAdmins() {
	j.runWithRecovery("remind-pending-admins", func(ctx context.Context) error {
		if j.operatorEmail == "" {
			return nil
		}

		cutoff := time.Now().UTC().Add(-pendingReminderAge)
		stale, err := j.adminRepo.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d admin registrations are still awaiting approval:\n\n", len(stale))
		for _, admin := range stale {
			fmt.Fprintf(&b, "- %s (%s, %s), registered %s\n",
				admin.Username, admin.Role, admin.Email, admin.CreatedOn.Format("2006-01-02"))
		}

		subject := fmt.Sprintf("%d admin registrations pending approval", len(stale))
		return j.emailSvc.SendAdminNotification(ctx, j.operatorEmail, subject, b.String())
	})
}
