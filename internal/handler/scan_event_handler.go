package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/query"
	"authentiqa/internal/service"
)

// ScanEventHandler handles scan event ingestion and browsing.
type ScanEventHandler struct {
	scanEventService service.ScanEventService
}

// NewScanEventHandler creates a new ScanEventHandler.
func NewScanEventHandler(scanEventService service.ScanEventService) *ScanEventHandler {
	return &ScanEventHandler{scanEventService: scanEventService}
}

// Ingest handles POST /api/v1/scan-events
// @Summary Submit a scan result
// @Description Record the metadata of one on-device authenticity check. Admission-controlled per client address.
// @Tags scan-events
// @Accept json
// @Produce json
// @Param request body IngestScanEventRequest true "Scan metadata"
// @Success 201 {object} Response{data=IDResponse} "Scan event stored"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 429 {object} ErrorResponseBody "Too many requests"
// @Router /scan-events [post]
func (h *ScanEventHandler) Ingest(c *gin.Context) {
	var input service.IngestScanEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	event, err := h.scanEventService.Ingest(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, IDResponse{ID: event.ID})
}

// List handles GET /api/v1/scan-events
// @Summary Browse scan events
// @Tags scan-events
// @Produce json
// @Param q query string false "Search content hash, student id and name"
// @Param tenantId query string false "Tenant ID (super admin only; ignored for tenant admins)"
// @Param documentKindId query string false "Document kind ID"
// @Param resultLabel query string false "AUTHENTIC, SUSPICIOUS or FORGED"
// @Param country query string false "Country"
// @Param city query string false "City"
// @Param minConfidence query number false "Lower confidence bound"
// @Param maxConfidence query number false "Upper confidence bound"
// @Param minRiskScore query number false "Lower risk score bound"
// @Param maxRiskScore query number false "Upper risk score bound"
// @Param dateFrom query string false "RFC 3339 or YYYY-MM-DD"
// @Param dateTo query string false "RFC 3339 or YYYY-MM-DD"
// @Param sortBy query string false "createdAt, riskScore or confidence" default(createdAt)
// @Param sortDir query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} ScanEventPage
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /scan-events [get]
func (h *ScanEventHandler) List(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var params query.ScanEventParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	page, err := h.scanEventService.List(c.Request.Context(), p, params)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// GetByID handles GET /api/v1/scan-events/:id
// @Summary Get a scan event
// @Tags scan-events
// @Produce json
// @Param id path string true "Scan event ID (UUID)"
// @Success 200 {object} Response{data=domain.ScanEvent}
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /scan-events/{id} [get]
func (h *ScanEventHandler) GetByID(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "scan event")
	if !ok {
		return
	}

	event, err := h.scanEventService.Get(c.Request.Context(), p, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, event)
}
