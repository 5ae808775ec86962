// Package bootstrap holds the fx modules shared by every service binary.
package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/transport"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// StartHTTPServer runs the gin engine for services with an HTTP surface.
func StartHTTPServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listenAddr := ":" + cfg.HTTP.Port
			log.Info("starting HTTP server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					log.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			log.Info("stopping HTTP server")
			return nil
		},
	})
}

// StartTransportServer runs the message transport listener for services that
// answer RPC patterns or consume events.
func StartTransportServer(lc fx.Lifecycle, srv *transport.Server, cfg config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			addr, err := srv.Listen(cfg.RPC.ListenAddr)
			if err != nil {
				return err
			}
			log.Info("transport server listening", "address", addr.String())
			return nil
		},
		OnStop: func(_ context.Context) error {
			return srv.Close()
		},
	})
}

// Run starts the fx application and blocks until shutdown, mirroring each
// service's main.
func Run(app *fx.App) {
	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}
}
