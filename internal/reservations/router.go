package reservations

import (
	"log/slog"
	"net/http"

	"stayhub/internal/guard"
	"stayhub/internal/httpmw"
	"stayhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func NewRouter(engine *gin.Engine, cfg config.Config, log *slog.Logger, handler *Handler, authMw *guard.Middleware) {
	engine.Use(httpmw.CustomRecovery(log))
	engine.Use(httpmw.NewCORSMiddleware(cfg.CORS))
	engine.Use(httpmw.LoggingMiddleware(log))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reservations := engine.Group("/api/reservations")
	reservations.Use(authMw.RequireAuth())
	{
		reservations.POST("", handler.Create)
		reservations.GET("", handler.List)
		reservations.GET("/:id", handler.Get)
		reservations.PATCH("/:id", handler.Update)
		reservations.DELETE("/:id", handler.Delete)
	}
}
