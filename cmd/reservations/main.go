package main

import (
	"context"
	"log/slog"
	"os"

	"stayhub/cmd/bootstrap"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/config"
	"stayhub/internal/reservations"
	"stayhub/internal/rpc"
	"stayhub/internal/store"
	"stayhub/internal/transport"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func dialClient(lc fx.Lifecycle, addr string, cfg config.Config, log *slog.Logger) (*rpc.Client, error) {
	link, err := transport.Dial(addr, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(_ context.Context) error {
		return link.Close()
	}})
	return rpc.NewClient(link, cfg.RPC.CallTimeout), nil
}

func newAuthChecker(lc fx.Lifecycle, cfg config.Config, log *slog.Logger) (guard.AuthChecker, error) {
	client, err := dialClient(lc, cfg.RPC.AuthAddr, cfg, log)
	if err != nil {
		return nil, err
	}
	return guard.NewRPCChecker(client), nil
}

func newPaymentsGateway(lc fx.Lifecycle, cfg config.Config, log *slog.Logger) (reservations.PaymentsGateway, error) {
	client, err := dialClient(lc, cfg.RPC.PaymentsAddr, cfg, log)
	if err != nil {
		return nil, err
	}
	return reservations.NewRPCPaymentsGateway(client), nil
}

func newNotifier(lc fx.Lifecycle, cfg config.Config, log *slog.Logger) (reservations.Notifier, error) {
	client, err := dialClient(lc, cfg.RPC.NotificationsAddr, cfg, log)
	if err != nil {
		return nil, err
	}
	return reservations.NewRPCNotifier(client), nil
}

func newReservationStore(lc fx.Lifecycle, cfg config.Config) (reservations.ReservationStore, error) {
	if !cfg.DB.Enabled {
		return store.NewMemory[reservation.Reservation](), nil
	}

	pool, cleanup, err := store.Connect(context.Background(), cfg.DB.BuildDSN())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(_ context.Context) error {
		cleanup()
		return nil
	}})
	return store.NewPostgres[reservation.Reservation](pool, "reservations"), nil
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.ClockModule,
		fx.Provide(
			newAuthChecker,
			newPaymentsGateway,
			newNotifier,
			newReservationStore,
			guard.NewMiddleware,
			reservations.NewUseCase,
			reservations.NewHandler,
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			reservations.NewRouter,
			bootstrap.StartHTTPServer,
		),
	)

	bootstrap.Run(app)
}
