// Package mail implements transactional email delivery via the Resend API.
package mail

import (
	"context"
	"log/slog"

	"opinalocal/config"
	"opinalocal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

type resendMailer struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// disabledMailer drops mail when no API key is configured. Email is an
// optional channel; a missing key must not break notification delivery.
type disabledMailer struct {
	logger *slog.Logger
}

func (m *disabledMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Debug("mail delivery disabled, dropping message",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

// NewResendMailer creates a Mailer backed by Resend. Returns a no-op mailer
// when the API key is empty.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.APIKey == "" {
		logger.Info("mail not configured, using disabled mailer")

		return &disabledMailer{logger: logger}
	}

	return &resendMailer{
		client: resend.NewClient(cfg.Mail.APIKey),
		from:   cfg.Mail.From,
		logger: logger,
	}
}

// Send delivers one email through the Resend API.
func (m *resendMailer) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.Debug("email sent",
		slog.String("to", to),
		slog.String("message_id", sent.Id),
	)

	return nil
}
