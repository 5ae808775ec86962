package notifications

import (
	"context"
	"log/slog"
)

// Mailer is the mail-relay collaborator. SMTP mechanics stay behind this
// interface.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// LogMailer writes the mail to the log instead of a relay. Default backend
// for development.
type LogMailer struct {
	from string
	log  *slog.Logger
}

func NewLogMailer(from string, log *slog.Logger) *LogMailer {
	return &LogMailer{from: from, log: log}
}

func (m *LogMailer) Send(_ context.Context, to, subject, text string) error {
	m.log.Info("mail sent",
		"from", m.from,
		"to", to,
		"subject", subject,
		"text", text,
	)
	return nil
}
