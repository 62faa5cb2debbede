package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/domain"
	"authentiqa/internal/service"
)

// DocumentKindHandler handles document kind endpoints.
type DocumentKindHandler struct {
	kindService service.DocumentKindService
}

// NewDocumentKindHandler creates a new DocumentKindHandler.
func NewDocumentKindHandler(kindService service.DocumentKindService) *DocumentKindHandler {
	return &DocumentKindHandler{kindService: kindService}
}

// ListByTenant handles GET /api/v1/tenants/:id/document-kinds
// @Summary List a tenant's document kinds
// @Tags document-kinds
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Success 200 {object} Response{data=[]domain.DocumentKind} "Document kinds sorted by name"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /tenants/{id}/document-kinds [get]
func (h *DocumentKindHandler) ListByTenant(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	tenantID, ok := parseID(c, "id", "tenant")
	if !ok {
		return
	}

	kinds, err := h.kindService.ListByTenant(c.Request.Context(), p, tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kinds)
}

// Create handles POST /api/v1/tenants/:id/document-kinds
// @Summary Register a document kind
// @Tags document-kinds
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID (UUID)"
// @Param request body CreateDocumentKindRequest true "Document kind"
// @Success 201 {object} Response{data=domain.DocumentKind} "Document kind created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id}/document-kinds [post]
func (h *DocumentKindHandler) Create(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	tenantID, ok := parseID(c, "id", "tenant")
	if !ok {
		return
	}

	var input service.CreateDocumentKindInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	kind, err := h.kindService.Create(c.Request.Context(), p, tenantID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, kind)
}

// Update handles PATCH /api/v1/document-kinds/:id
// @Summary Update a document kind
// @Tags document-kinds
// @Accept json
// @Produce json
// @Param id path string true "Document kind ID (UUID)"
// @Param request body UpdateDocumentKindRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.DocumentKind} "Document kind updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /document-kinds/{id} [patch]
func (h *DocumentKindHandler) Update(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "document kind")
	if !ok {
		return
	}

	var input service.UpdateDocumentKindInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	kind, err := h.kindService.Update(c.Request.Context(), p, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kind)
}

// SetStatus handles PATCH /api/v1/document-kinds/:id/status
// @Summary Enable or disable a document kind
// @Tags document-kinds
// @Accept json
// @Produce json
// @Param id path string true "Document kind ID (UUID)"
// @Param request body DocumentKindStatusRequest true "New status"
// @Success 200 {object} Response{data=domain.DocumentKind} "Status updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /document-kinds/{id}/status [patch]
func (h *DocumentKindHandler) SetStatus(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "document kind")
	if !ok {
		return
	}

	var input struct {
		Status domain.DocumentKindStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	kind, err := h.kindService.SetStatus(c.Request.Context(), p, id, input.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, kind)
}
