package main

import (
	"log/slog"

	"stayhub/cmd/bootstrap"
	"stayhub/internal/notifications"
	"stayhub/internal/pkg/config"
	"stayhub/internal/transport"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		fx.Provide(
			func(cfg config.Config, log *slog.Logger) notifications.Mailer {
				return notifications.NewLogMailer(cfg.Mail.From, log)
			},
			notifications.NewConsumer,
			func(log *slog.Logger) *transport.Server {
				return transport.NewServer(log)
			},
		),
		fx.Invoke(
			func(consumer *notifications.Consumer, srv *transport.Server) {
				consumer.RegisterHandlers(srv)
			},
			bootstrap.StartTransportServer,
		),
	)

	bootstrap.Run(app)
}
