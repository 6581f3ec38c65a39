package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterdb/rosterdb/config"
	"github.com/rosterdb/rosterdb/internal/api/handlers"
	"github.com/rosterdb/rosterdb/internal/api/middleware"
)

type Router struct {
	engine         *gin.Engine
	authMiddleware *middleware.AuthMiddleware
	playerHandler  *handlers.PlayerHandler
	exportHandler  *handlers.ExportHandler
	exportCfg      *config.ExportConfig
}

func NewRouter(
	authMiddleware *middleware.AuthMiddleware,
	playerHandler *handlers.PlayerHandler,
	exportHandler *handlers.ExportHandler,
	exportCfg *config.ExportConfig,
) *Router {
	return &Router{
		authMiddleware: authMiddleware,
		playerHandler:  playerHandler,
		exportHandler:  exportHandler,
		exportCfg:      exportCfg,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// Panics must not leak detail to the caller.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":   "Error",
			"message":  "internal server error",
			"response": nil,
		})
	}))
	r.engine.Use(middleware.AuditMiddleware())

	r.engine.HandleMethodNotAllowed = true
	r.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, gin.H{
			"status":   "Error",
			"message":  "method not implemented",
			"response": nil,
		})
	})
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":   "Error",
			"message":  "route not found",
			"response": nil,
		})
	})

	r.setupRoutes()
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	players := api.Group("/players")
	{
		players.GET("", r.playerHandler.List)
		players.GET("/:id", r.playerHandler.Get)
		players.GET("/team/:name", r.playerHandler.GetByTeam)
		players.GET("/position/:value", r.playerHandler.GetByPosition)
		players.GET("/nationality/:value", r.playerHandler.GetByNationality)

		throttled := players.Group("")
		throttled.Use(middleware.RateLimit(
			r.exportCfg.DownloadRPS, r.exportCfg.DownloadBurst, r.exportCfg.QueueTimeout))
		{
			throttled.GET("/download", r.exportHandler.Download)
		}

		// Mutations require a verified caller.
		protected := players.Group("")
		protected.Use(r.authMiddleware.Authenticate())
		{
			protected.POST("", r.playerHandler.Create)
			protected.PUT("/:id", r.playerHandler.Replace)
			protected.DELETE("/:id", r.playerHandler.Delete)
			protected.POST("/snapshot", r.exportHandler.Snapshot)
		}
	}
}
