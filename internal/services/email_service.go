package services

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"tasklist/internal/models"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService mails completion notices to a fixed address.
type EmailService struct {
	dialer mailDialer
	from   string
	to     string
}

// NewEmailService returns nil when no SMTP host or recipient is configured.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, toEmail string) *EmailService {
	if smtpHost == "" || toEmail == "" {
		return nil
	}
	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
		to:     toEmail,
	}
}

func (s *EmailService) TaskCompleted(_ context.Context, task models.Task) error {
	if s == nil {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("Task #%d completed", task.ID))

	body := fmt.Sprintf(`
		<h3>Task completed</h3>
		<p>%s</p>
	`, html.EscapeString(completedText(task)))
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send completion email: %w", err)
	}
	return nil
}
