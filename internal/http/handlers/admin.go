package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendorpulse/vendorpulse-backend/internal/http/response"
	"github.com/vendorpulse/vendorpulse-backend/internal/services"
)

type AdminHandler struct {
	scoringService services.ScoringService
}

func NewAdminHandler(scoringService services.ScoringService) *AdminHandler {
	return &AdminHandler{scoringService: scoringService}
}

// GET /admin/vendors/:vendor_id/scores/recompute
func (ah *AdminHandler) RecomputeVendor(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	vendor, snapshot, err := ah.scoringService.RecomputeVendor(c.Request.Context(), vendorID)
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	if snapshot == nil {
		response.RespondError(c, http.StatusBadRequest, "no_metrics", fmt.Errorf("vendor has no metrics to recompute"))
		return
	}
	response.RespondOK(c, newVendorView(vendor, snapshot))
}

// GET /admin/vendors/scores/recompute
func (ah *AdminHandler) RecomputeAll(c *gin.Context) {
	summary, err := ah.scoringService.RecomputeAll(c.Request.Context())
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondOK(c, summary)
}
