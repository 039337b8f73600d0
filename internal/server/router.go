package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vendorpulse/vendorpulse-backend/internal/http/handlers"
	"github.com/vendorpulse/vendorpulse-backend/internal/http/middleware"
	"github.com/vendorpulse/vendorpulse-backend/internal/observability/metrics"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log           *logger.Logger
	AllowOrigins  []string
	HealthHandler *handlers.HealthHandler
	VendorHandler *handlers.VendorHandler
	AdminHandler  *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	vendors := router.Group("/vendors")
	{
		vendors.POST("", cfg.VendorHandler.Register)
		vendors.GET("", cfg.VendorHandler.List)
		vendors.GET("/:vendor_id", cfg.VendorHandler.Get)
		vendors.PATCH("/:vendor_id", cfg.VendorHandler.Update)
		vendors.POST("/:vendor_id/metrics", cfg.VendorHandler.SubmitMetric)
		vendors.GET("/:vendor_id/scores", cfg.VendorHandler.Scores)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/vendors/scores/recompute", cfg.AdminHandler.RecomputeAll)
		admin.GET("/vendors/:vendor_id/scores/recompute", cfg.AdminHandler.RecomputeVendor)
	}

	return router
}
