package app

import (
	"github.com/vendorpulse/vendorpulse-backend/internal/http/handlers"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Vendor *handlers.VendorHandler
	Admin  *handlers.AdminHandler
}

func wireHandlers(serviceset Services) Handlers {
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Vendor: handlers.NewVendorHandler(serviceset.Vendor, serviceset.Metric),
		Admin:  handlers.NewAdminHandler(serviceset.Scoring),
	}
}
