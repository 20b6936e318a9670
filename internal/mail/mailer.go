package mail

import (
	"fmt"

	"github.com/fieldtrack/fieldtrack-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer dispatches account emails. The auth service only depends on this
// interface so tests can swap in a recorder.
type Mailer interface {
	SendPasswordReset(toEmail, resetURL string) error
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPasswordReset emails a single-use reset link.
func (m *SMTPMailer) SendPasswordReset(toEmail, resetURL string) error {
	if m.cfg.SMTPHost == "" || m.cfg.FromEmail == "" {
		return fmt.Errorf("mail is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", fmt.Sprintf(
		"You're receiving this email because you requested a password reset for your account.\n\n"+
			"Please go to the following page to set a new password:\n\n%s\n\n"+
			"If you didn't request this, you can safely ignore this email.\n", resetURL))

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
