package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/scope"
	"authentiqa/internal/service"
)

// AnalyticsHandler serves dashboard rollups over the caller's scope.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// scoped resolves the caller's scan event scope. Returns false if the auth
// context is missing (error response already written).
func scoped(c *gin.Context) (query.Filter, bool) {
	p, ok := principalFrom(c)
	if !ok {
		return query.Filter{}, false
	}
	return scope.Resolve(p, query.Filter{}, domain.FieldTenantID), true
}

// Overview handles GET /api/v1/analytics/overview
// @Summary KPI overview
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=domain.Overview}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	filter, ok := scoped(c)
	if !ok {
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, overview)
}

// Timeseries handles GET /api/v1/analytics/timeseries
// @Summary Scan counts over time
// @Tags analytics
// @Produce json
// @Param dateFrom query string false "RFC 3339 or YYYY-MM-DD"
// @Param dateTo query string false "RFC 3339 or YYYY-MM-DD"
// @Param granularity query string false "day or week" default(day)
// @Success 200 {object} Response{data=[]domain.TimeBucket}
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Security BearerAuth
// @Router /analytics/timeseries [get]
func (h *AnalyticsHandler) Timeseries(c *gin.Context) {
	filter, ok := scoped(c)
	if !ok {
		return
	}

	verr := &domain.ValidationError{}
	from := parseBound(verr, "dateFrom", c.Query("dateFrom"))
	to := parseBound(verr, "dateTo", c.Query("dateTo"))
	if err := verr.OrNil(); err != nil {
		HandleError(c, err)
		return
	}

	buckets, err := h.analyticsService.Timeseries(c.Request.Context(), filter, from, to,
		domain.ParseGranularity(c.Query("granularity")))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, buckets)
}

func parseBound(verr *domain.ValidationError, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := query.ParseTime(raw)
	if err != nil {
		verr.Add(field, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return nil
	}
	return &t
}

// Geo handles GET /api/v1/analytics/geo
// @Summary Scan counts by country and city
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=domain.GeoBreakdown}
// @Security BearerAuth
// @Router /analytics/geo [get]
func (h *AnalyticsHandler) Geo(c *gin.Context) {
	filter, ok := scoped(c)
	if !ok {
		return
	}

	geo, err := h.analyticsService.Geo(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, geo)
}
