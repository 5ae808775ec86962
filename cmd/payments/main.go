package main

import (
	"log/slog"

	"stayhub/cmd/bootstrap"
	"stayhub/internal/payments"
	"stayhub/internal/transport"

	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		fx.Provide(
			func() payments.CardCharger {
				return payments.NewStubCharger()
			},
			payments.NewUseCase,
			func(log *slog.Logger) *transport.Server {
				return transport.NewServer(log)
			},
		),
		fx.Invoke(
			payments.RegisterHandlers,
			bootstrap.StartTransportServer,
		),
	)

	bootstrap.Run(app)
}
