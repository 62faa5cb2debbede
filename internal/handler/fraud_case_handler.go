package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/query"
	"authentiqa/internal/service"
)

// FraudCaseHandler handles fraud case review endpoints.
type FraudCaseHandler struct {
	caseService service.FraudCaseService
}

// NewFraudCaseHandler creates a new FraudCaseHandler.
func NewFraudCaseHandler(caseService service.FraudCaseService) *FraudCaseHandler {
	return &FraudCaseHandler{caseService: caseService}
}

// List handles GET /api/v1/fraud-cases
// @Summary List fraud cases
// @Tags fraud-cases
// @Produce json
// @Param status query string false "Case status"
// @Param assignedToUserId query string false "Assignee user ID"
// @Param tenantId query string false "Tenant ID (super admin only)"
// @Param dateFrom query string false "RFC 3339 or YYYY-MM-DD"
// @Param dateTo query string false "RFC 3339 or YYYY-MM-DD"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 200)" default(20)
// @Success 200 {object} FraudCasePage
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Security BearerAuth
// @Router /fraud-cases [get]
func (h *FraudCaseHandler) List(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var params query.FraudCaseParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	page, err := h.caseService.List(c.Request.Context(), p, params)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, page)
}

// GetByID handles GET /api/v1/fraud-cases/:id
// @Summary Get a fraud case
// @Tags fraud-cases
// @Produce json
// @Param id path string true "Fraud case ID (UUID)"
// @Success 200 {object} Response{data=domain.FraudCase}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /fraud-cases/{id} [get]
func (h *FraudCaseHandler) GetByID(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fraud case")
	if !ok {
		return
	}

	fc, err := h.caseService.Get(c.Request.Context(), p, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fc)
}

// Create handles POST /api/v1/fraud-cases
// @Summary Open a fraud case
// @Tags fraud-cases
// @Accept json
// @Produce json
// @Param request body CreateFraudCaseRequest true "Case details"
// @Success 201 {object} Response{data=FraudCaseCreated} "Case opened"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Scan event belongs to another tenant"
// @Failure 404 {object} ErrorResponseBody "Scan event not found"
// @Security BearerAuth
// @Router /fraud-cases [post]
func (h *FraudCaseHandler) Create(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}

	var input service.CreateFraudCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fc, err := h.caseService.Create(c.Request.Context(), p, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, FraudCaseCreated{ID: fc.ID, FraudCase: fc})
}

// Update handles PATCH /api/v1/fraud-cases/:id
// @Summary Update a fraud case
// @Description Partial update. An explicit null assignedToUserId unassigns the case.
// @Tags fraud-cases
// @Accept json
// @Produce json
// @Param id path string true "Fraud case ID (UUID)"
// @Param request body UpdateFraudCaseRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.FraudCase} "Case updated"
// @Failure 400 {object} ErrorResponseBody "Validation error or dangling scan event"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /fraud-cases/{id} [patch]
func (h *FraudCaseHandler) Update(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "fraud case")
	if !ok {
		return
	}

	var input service.UpdateFraudCaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	fc, err := h.caseService.Update(c.Request.Context(), p, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fc)
}
