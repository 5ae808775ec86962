package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"stayhub/internal/messages"
	"stayhub/internal/transport"
)

const mailSubject = "Stayhub Notification"

// Consumer receives notify_email events and attempts a best-effort send. A
// failure is observed locally; the event model has no reply channel to report
// it on.
type Consumer struct {
	mailer Mailer
	log    *slog.Logger
}

func NewConsumer(mailer Mailer, log *slog.Logger) *Consumer {
	return &Consumer{
		mailer: mailer,
		log:    log,
	}
}

func (c *Consumer) RegisterHandlers(srv *transport.Server) {
	srv.Handle(messages.PatternNotifyEmail, func(ctx context.Context, data json.RawMessage) (any, error) {
		var event messages.NotifyEmailEvent
		if err := json.Unmarshal(data, &event); err != nil {
			c.log.Warn("malformed notify_email event", "error", err)
			return nil, nil
		}

		c.HandleEvent(ctx, event)
		return nil, nil
	})
}

func (c *Consumer) HandleEvent(ctx context.Context, event messages.NotifyEmailEvent) {
	if err := c.mailer.Send(ctx, event.Email, mailSubject, event.Text); err != nil {
		c.log.Warn("email send failed", "to", event.Email, "error", err)
	}
}
