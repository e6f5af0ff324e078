package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/pkg/config"
)

// Sender delivers event notification emails.
type Sender interface {
	SendEventNotification(event *entities.Event) error
}

// SMTPSender sends mail through a plain STARTTLS SMTP relay.
type SMTPSender struct {
	cfg    *config.SMTPConfig
	logger *zap.Logger
}

// NewSMTPSender creates a sender for the configured relay. When the relay is
// not configured it degrades to a no-op that only logs, so event creation
// never fails on missing mail settings.
func NewSMTPSender(cfg *config.SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

// Configured reports whether the relay settings are usable.
func (s *SMTPSender) Configured() bool {
	return s.cfg != nil && s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

// SendEventNotification emails the event's notify address a plain-text
// description of the event.
func (s *SMTPSender) SendEventNotification(event *entities.Event) error {
	if event.NotifyEmail == nil || *event.NotifyEmail == "" {
		return nil
	}
	if !s.Configured() {
		s.logger.Warn("SMTP not configured, skipping email send",
			zap.String("event_id", event.ID.String()),
		)
		return nil
	}

	recipient := *event.NotifyEmail
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	msg := buildEventMessage(from, recipient, event)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, from, []string{recipient}, msg); err != nil {
		s.logger.Error("failed to send event email",
			zap.String("event_id", event.ID.String()),
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send event email: %w", err)
	}

	s.logger.Info("event email sent",
		zap.String("event_id", event.ID.String()),
		zap.String("recipient", recipient),
	)
	return nil
}

func buildEventMessage(from, to string, event *entities.Event) []byte {
	orDash := func(p *string) string {
		if p == nil || *p == "" {
			return "-"
		}
		return *p
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Event created: %s\r\n", event.Title)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	lines := []string{
		"Hi,",
		"",
		"An event has been created in your offline calendar:",
		"",
		fmt.Sprintf("Title       : %s", event.Title),
		fmt.Sprintf("Date & Time : %s", event.StartTime.Format(time.RFC3339)),
		fmt.Sprintf("Location    : %s", orDash(event.Location)),
		"",
		fmt.Sprintf("Description : %s", orDash(event.Description)),
	}
	b.WriteString(strings.Join(lines, "\r\n"))
	return []byte(b.String())
}
