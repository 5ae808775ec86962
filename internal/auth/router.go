package auth

import (
	"log/slog"
	"net/http"

	"stayhub/internal/guard"
	"stayhub/internal/httpmw"
	"stayhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func NewRouter(engine *gin.Engine, cfg config.Config, log *slog.Logger, handler *Handler, authMw *guard.Middleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(httpmw.CustomRecovery(log))
	engine.Use(httpmw.NewCORSMiddleware(cfg.CORS))
	engine.Use(httpmw.LoggingMiddleware(log))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := engine.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/logout", handler.Logout)

			authRequired := authGroup.Group("")
			authRequired.Use(authMw.RequireAuth())
			authRequired.GET("/me", handler.Me)
		}

		apiGroup.POST("/users", handler.Register)
	}
}
