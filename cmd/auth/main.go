package main

import (
	"context"
	"log/slog"
	"os"

	"stayhub/cmd/bootstrap"
	"stayhub/internal/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/token"
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

func newUserStore(lc fx.Lifecycle, cfg config.Config) (auth.UserStore, error) {
	if !cfg.DB.Enabled {
		return store.NewMemory[user.User](), nil
	}

	pool, cleanup, err := store.Connect(context.Background(), cfg.DB.BuildDSN())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(_ context.Context) error {
		cleanup()
		return nil
	}})
	return store.NewPostgres[user.User](pool, "users"), nil
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.ClockModule,
		fx.Provide(
			newUserStore,
			func(cfg config.Config, clk clock.Clock) *token.Service {
				return token.NewService(cfg.JWT.Secret, cfg.JWT.TTL, clk)
			},
			auth.NewUseCase,
			func(uc auth.UseCase) guard.AuthChecker {
				return auth.NewLocalChecker(uc)
			},
			guard.NewMiddleware,
			func(uc auth.UseCase, cfg config.Config) *auth.Handler {
				return auth.NewHandler(uc, cfg.JWT)
			},
			func(log *slog.Logger) *transport.Server {
				return transport.NewServer(log)
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			auth.RegisterHandlers,
			auth.NewRouter,
			bootstrap.StartTransportServer,
			bootstrap.StartHTTPServer,
		),
	)

	bootstrap.Run(app)
}
