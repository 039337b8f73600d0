package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/http/response"
	"github.com/vendorpulse/vendorpulse-backend/internal/services"
)

type VendorHandler struct {
	vendorService services.VendorService
	metricService services.MetricService
}

func NewVendorHandler(vendorService services.VendorService, metricService services.MetricService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		metricService: metricService,
	}
}

func vendorIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_vendor_id", fmt.Errorf("vendor id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// POST /vendors
// body: { "name": "...", "category": "supplier" | "distributor" | "dealer" | "manufacturer" }
func (vh *VendorHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	vendor, err := vh.vendorService.Register(c.Request.Context(), req.Name, types.VendorCategory(req.Category))
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondCreated(c, newVendorView(vendor, nil))
}

// PATCH /vendors/:vendor_id
// body: { "name": "...", "category": "..." } (both optional)
func (vh *VendorHandler) Update(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Name == nil && req.Category == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("no vendor changes provided"))
		return
	}

	patch := services.VendorPatch{Name: req.Name}
	if req.Category != nil {
		category := types.VendorCategory(*req.Category)
		patch.Category = &category
	}

	detail, err := vh.vendorService.Update(c.Request.Context(), vendorID, patch)
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondOK(c, newVendorDetailView(detail))
}

// GET /vendors
func (vh *VendorHandler) List(c *gin.Context) {
	details, err := vh.vendorService.List(c.Request.Context())
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}

	items := make([]VendorView, 0, len(details))
	for _, detail := range details {
		items = append(items, newVendorDetailView(detail))
	}
	response.RespondOK(c, VendorListView{Items: items, Count: len(items)})
}

// GET /vendors/:vendor_id
func (vh *VendorHandler) Get(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	detail, err := vh.vendorService.Get(c.Request.Context(), vendorID)
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondOK(c, newVendorDetailView(detail))
}

// GET /vendors/:vendor_id/scores?limit=10&offset=0
func (vh *VendorHandler) Scores(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	limit, ok := intQuery(c, "limit", 10)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}
	if limit < 1 || limit > 100 || offset < 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_pagination", fmt.Errorf("limit must be within [1, 100] and offset must not be negative"))
		return
	}

	scores, err := vh.vendorService.Scores(c.Request.Context(), vendorID, limit, offset)
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondOK(c, newScoreViews(scores))
}

// POST /vendors/:vendor_id/metrics
// body: { "submitted_at": RFC3339, "on_time_delivery_rate": 0-100, "complaint_count": >=0,
// "missing_documents": bool, "compliance_score": 0-100, "raw_payload": {...}? }
func (vh *VendorHandler) SubmitMetric(c *gin.Context) {
	vendorID, ok := vendorIDParam(c)
	if !ok {
		return
	}

	var req struct {
		SubmittedAt        *time.Time      `json:"submitted_at"`
		OnTimeDeliveryRate *float64        `json:"on_time_delivery_rate"`
		ComplaintCount     *int            `json:"complaint_count"`
		MissingDocuments   *bool           `json:"missing_documents"`
		ComplianceScore    *float64        `json:"compliance_score"`
		RawPayload         json.RawMessage `json:"raw_payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.SubmittedAt == nil || req.OnTimeDeliveryRate == nil || req.ComplaintCount == nil || req.MissingDocuments == nil || req.ComplianceScore == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("submitted_at, on_time_delivery_rate, complaint_count, missing_documents and compliance_score are required"))
		return
	}

	metric, _, err := vh.metricService.Submit(c.Request.Context(), vendorID, services.MetricInput{
		SubmittedAt:        *req.SubmittedAt,
		OnTimeDeliveryRate: *req.OnTimeDeliveryRate,
		ComplaintCount:     *req.ComplaintCount,
		MissingDocuments:   *req.MissingDocuments,
		ComplianceScore:    *req.ComplianceScore,
		RawPayload:         req.RawPayload,
	})
	if err != nil {
		response.RespondKindedError(c, err)
		return
	}
	response.RespondCreated(c, newMetricView(metric))
}

func intQuery(c *gin.Context, key string, defaultVal int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_pagination", fmt.Errorf("%s must be an integer", key))
		return 0, false
	}
	return val, true
}
