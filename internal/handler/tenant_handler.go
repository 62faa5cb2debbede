package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/service"
)

// TenantHandler handles tenant management endpoints.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create handles POST /api/v1/tenants
// @Summary Create a tenant
// @Description Create a new tenant (super admin only)
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body CreateTenantRequest true "Tenant details"
// @Success 201 {object} Response{data=domain.Tenant} "Tenant created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 409 {object} ErrorResponseBody "Name already exists"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var input service.CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tenant)
}

// List handles GET /api/v1/tenants
// @Summary List tenants
// @Description Super admins see every tenant, tenant admins their own
// @Tags tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} TenantPage "Tenants sorted by name"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	page, pageSize := query.Paginate(c.Query("page"), c.Query("pageSize"), query.TenantPageCeiling)

	result, err := h.tenantService.List(c.Request.Context(), p, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPage(c, result)
}

// Update handles PATCH /api/v1/tenants/:id
// @Summary Update a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param request body UpdateTenantRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Tenant} "Tenant updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Tenant not found"
// @Failure 409 {object} ErrorResponseBody "Name already exists"
// @Security BearerAuth
// @Router /tenants/{id} [patch]
func (h *TenantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "tenant")
	if !ok {
		return
	}

	var input service.UpdateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}

// SetStatus handles PATCH /api/v1/tenants/:id/status
// @Summary Set tenant status
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param request body TenantStatusRequest true "New status"
// @Success 200 {object} Response{data=domain.Tenant} "Status updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id}/status [patch]
func (h *TenantHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "tenant")
	if !ok {
		return
	}

	var input struct {
		Status domain.TenantStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tenant, err := h.tenantService.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tenant)
}
