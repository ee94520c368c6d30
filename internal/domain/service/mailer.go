package service

import (
	"context"
)

// Mailer defines the interface for transactional email delivery.
type Mailer interface {
	// Send delivers one email. Subject and html are fully rendered by the
	// caller; the mailer only transports them.
	Send(ctx context.Context, to, subject, html string) error
}
