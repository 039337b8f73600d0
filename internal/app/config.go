package app

import (
	"strings"

	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
	"github.com/vendorpulse/vendorpulse-backend/internal/utils"
)

type Config struct {
	HTTPAddr     string
	AllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	allowOrigins := []string{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowOrigins = append(allowOrigins, origin)
		}
	}

	return Config{
		HTTPAddr:     httpAddr,
		AllowOrigins: allowOrigins,
	}
}
