package app

import (
	"github.com/gin-gonic/gin"

	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
	"github.com/vendorpulse/vendorpulse-backend/internal/server"
)

func wireRouter(cfg Config, log *logger.Logger, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:           log,
		AllowOrigins:  cfg.AllowOrigins,
		HealthHandler: handlerset.Health,
		VendorHandler: handlerset.Vendor,
		AdminHandler:  handlerset.Admin,
	})
}
