package service

import (
	"context"
	"fmt"

	"masjidhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendAdminNotification(ctx context.Context, to, subject, message string) error {
	return s.send(ctx, to, "", subject, message)
}

func (s *sendGridEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	subject := fmt.Sprintf("Your administrator account is now %s", status)
	body := fmt.Sprintf("Assalamu alaikum %s,\n\nYour administrator account status has changed to %q.", name, status)
	if reason != "" {
		body += "\n\n" + reason
	}
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) SendContributionReminder(ctx context.Context, email, name, month string, amountCents int32) error {
	subject := fmt.Sprintf("Contribution reminder for %s", month)
	body := fmt.Sprintf(
		"Assalamu alaikum %s,\n\nYour society contribution of %.2f for %s is still due. Please arrange payment with your society office.",
		name, float64(amountCents)/100, month)
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email provider rejected message: status %d", response.StatusCode)
	}

	logger.Debug("email sent", "to", toEmail, "subject", subject, "status", response.StatusCode)
	return nil
}
