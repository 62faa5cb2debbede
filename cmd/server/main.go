// @title Authentiqa API
// @version 1.0
// @description Scan ingestion and multi-tenant fraud review dashboard.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"authentiqa/internal/admission"
	"authentiqa/internal/config"
	"authentiqa/internal/handler"
	"authentiqa/internal/logger"
	"authentiqa/internal/metrics"
	"authentiqa/internal/repository/postgres"
	"authentiqa/internal/router"
	"authentiqa/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "authentiqa"),
	)
	m := metrics.New(reg)

	// Ingestion admission control
	store, err := newAdmissionStore(ctx, cfg, zl)
	if err != nil {
		return err
	}
	limiter := admission.NewLimiter(store, cfg.Admission.Limit, cfg.Admission.Window)

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	kindRepo := postgres.NewDocumentKindRepo(db)
	scanRepo := postgres.NewScanEventRepo(db)
	caseRepo := postgres.NewFraudCaseRepo(db)
	analyticsRepo := postgres.NewAnalyticsRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT, zl)
	tenantSvc := service.NewTenantService(tenantRepo)
	kindSvc := service.NewDocumentKindService(kindRepo, tenantRepo)
	scanSvc := service.NewScanEventService(scanRepo, m, zl)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, time.Now)
	caseSvc := service.NewFraudCaseService(caseRepo, scanRepo, zl)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	tenantH := handler.NewTenantHandler(tenantSvc)
	kindH := handler.NewDocumentKindHandler(kindSvc)
	scanH := handler.NewScanEventHandler(scanSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	caseH := handler.NewFraudCaseHandler(caseSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r, err := router.Setup(
		router.Options{
			Log:            zl,
			Metrics:        m,
			Gatherer:       reg,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			TrustedProxies: cfg.Server.TrustedProxies,
		},
		authSvc, limiter,
		authH, tenantH, kindH, scanH, analyticsH, caseH, healthH,
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newAdmissionStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (admission.CounterStore, error) {
	switch cfg.Admission.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		zl.Info("admission backend: redis", zap.String("addr", cfg.Redis.Addr))
		return admission.NewRedisStore(client, "authentiqa:admission:"), nil
	case "memory", "":
		store := admission.NewMemoryStore()
		go store.RunJanitor(ctx, cfg.Admission.Window, cfg.Admission.Window)
		zl.Info("admission backend: memory")
		return store, nil
	default:
		return nil, fmt.Errorf("unknown admission backend %q", cfg.Admission.Backend)
	}
}
