package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "authentiqa/docs"
	"authentiqa/internal/admission"
	"authentiqa/internal/domain"
	"authentiqa/internal/handler"
	"authentiqa/internal/metrics"
	"authentiqa/internal/middleware"
	"authentiqa/internal/service"
)

// Options carries the ambient dependencies of the router.
type Options struct {
	Log            *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	// TrustedProxies may set the client address through forwarding headers.
	// With none, the admission key is the socket peer address.
	TrustedProxies []string
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	opts Options,
	authSvc service.AuthService,
	limiter *admission.Limiter,
	authH *handler.AuthHandler,
	tenantH *handler.TenantHandler,
	kindH *handler.DocumentKindHandler,
	scanH *handler.ScanEventHandler,
	analyticsH *handler.AnalyticsHandler,
	caseH *handler.FraudCaseHandler,
	healthH *handler.HealthHandler,
) (*gin.Engine, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("router: trusted proxies: %w", err)
	}

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authH.Login)
	v1.POST("/scan-events", middleware.Admission(limiter, opts.Metrics, log), scanH.Ingest)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	dashboard := middleware.RequireRole(domain.RoleTenantAdmin, domain.RoleAnalyst)
	managers := middleware.RequireRole(domain.RoleTenantAdmin)
	superAdmin := middleware.RequireRole(domain.RoleSuperAdmin)

	// Scan events
	protected.GET("/scan-events", dashboard, scanH.List)
	protected.GET("/scan-events/:id", dashboard, scanH.GetByID)

	// Analytics
	analytics := protected.Group("/analytics", dashboard)
	analytics.GET("/overview", analyticsH.Overview)
	analytics.GET("/timeseries", analyticsH.Timeseries)
	analytics.GET("/geo", analyticsH.Geo)

	// Fraud cases
	cases := protected.Group("/fraud-cases")
	cases.GET("", dashboard, caseH.List)
	cases.GET("/:id", dashboard, caseH.GetByID)
	cases.POST("", managers, caseH.Create)
	cases.PATCH("/:id", managers, caseH.Update)

	// Tenants
	tenants := protected.Group("/tenants")
	tenants.GET("", managers, tenantH.List)
	tenants.POST("", superAdmin, tenantH.Create)
	tenants.PATCH("/:id", superAdmin, tenantH.Update)
	tenants.PATCH("/:id/status", superAdmin, tenantH.SetStatus)

	// Document kinds; ownership is checked by the service
	tenants.GET("/:id/document-kinds", dashboard, kindH.ListByTenant)
	tenants.POST("/:id/document-kinds", managers, kindH.Create)
	protected.PATCH("/document-kinds/:id", managers, kindH.Update)
	protected.PATCH("/document-kinds/:id/status", managers, kindH.SetStatus)

	return r, nil
}
