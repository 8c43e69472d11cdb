package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderboard/internal/server/http/handlers"
	"github.com/polkiloo/orderboard/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, health handlers.HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	admin := api.Group("/admin")
	admin.POST("/register", authHandler.Register)
	admin.POST("/login", authHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthRequired(facade))
	adminAuth.POST("/logout", authHandler.Logout)
	adminAuth.GET("/orders", dashboardHandler.Orders)
	adminAuth.GET("/dashboard", dashboardHandler.View)
	adminAuth.PUT("/dashboard/filters/:column", dashboardHandler.Search)
	adminAuth.DELETE("/dashboard/filters/:column", dashboardHandler.Reset)
	adminAuth.PUT("/dashboard/selection", dashboardHandler.Select)

	return engine
}
