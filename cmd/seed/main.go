// Command seed creates a demo tenant, its document kinds, one user per role
// and a batch of sample scan events.
// Usage: go run ./cmd/seed [-events N] [-password P]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"authentiqa/internal/config"
	"authentiqa/internal/domain"
	"authentiqa/internal/logger"
	"authentiqa/internal/port"
	"authentiqa/internal/repository/postgres"
)

const demoTenant = "Demo University"

func main() {
	events := flag.Int("events", 200, "number of sample scan events to create")
	password := flag.String("password", "changeme123", "password for the seeded users")
	flag.Parse()

	if err := run(*events, *password); err != nil {
		log.Fatal(err)
	}
}

func run(events int, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	kindRepo := postgres.NewDocumentKindRepo(db)
	scanRepo := postgres.NewScanEventRepo(db)

	tenant := &domain.Tenant{Name: demoTenant, Country: "FR", Status: domain.TenantStatusActive}
	if err := tenantRepo.Create(ctx, tenant); err != nil {
		if errors.Is(err, domain.ErrDuplicateTenantName) {
			zl.Info("demo tenant already exists, nothing to seed")
			return nil
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	zl.Info("created tenant", zap.String("id", tenant.ID.String()))

	var kinds []domain.DocumentKind
	for _, name := range []domain.DocumentKindName{domain.DocumentKindTranscript, domain.DocumentKindDiploma, domain.DocumentKindAttestation} {
		kind := &domain.DocumentKind{TenantID: tenant.ID, Name: name, Version: "v1", Status: domain.DocumentKindActive}
		if err := kindRepo.Create(ctx, kind); err != nil {
			return fmt.Errorf("create document kind %s: %w", name, err)
		}
		kinds = append(kinds, *kind)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	users := []domain.User{
		{Name: "Platform Admin", Email: "admin@authentiqa.local", Role: domain.RoleSuperAdmin},
		{Name: "Demo Admin", Email: "tenant-admin@demo.local", Role: domain.RoleTenantAdmin, TenantID: &tenant.ID},
		{Name: "Demo Analyst", Email: "analyst@demo.local", Role: domain.RoleAnalyst, TenantID: &tenant.ID},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := userRepo.Create(ctx, &users[i]); err != nil && !errors.Is(err, domain.ErrDuplicateEmail) {
			return fmt.Errorf("create user %s: %w", users[i].Email, err)
		}
		zl.Info("seeded user", zap.String("email", users[i].Email), zap.String("role", string(users[i].Role)))
	}

	if err := seedScanEvents(ctx, scanRepo, tenant.ID, kinds, events); err != nil {
		return err
	}
	zl.Info("seed complete", zap.Int("scan_events", events))
	return nil
}

var (
	cities  = [][2]string{{"FR", "Paris"}, {"FR", "Lyon"}, {"MA", "Casablanca"}, {"SN", "Dakar"}, {"US", "Boston"}}
	reasons = []string{"font_mismatch", "seal_misaligned", "signature_anomaly", "tampered_region", "qr_mismatch"}
)

func seedScanEvents(ctx context.Context, repo port.ScanEventRepository, tenantID uuid.UUID, kinds []domain.DocumentKind, n int) error {
	for i := 0; i < n; i++ {
		place := cities[rand.IntN(len(cities))]
		country, city := place[0], place[1]
		lang := "fr"
		confidence := 0.5 + rand.Float64()/2

		event := &domain.ScanEvent{
			TenantID:       tenantID,
			DocumentKindID: kinds[rand.IntN(len(kinds))].ID,
			SourceApp:      domain.SourceAppIOS,
			ContentHash:    uuid.NewString(),
			ResultLabel:    domain.ResultAuthentic,
			Confidence:     &confidence,
			RiskScore:      rand.Float64() * 30,
			ExtractedFields: map[string]interface{}{
				"studentId":   fmt.Sprintf("S%05d", rand.IntN(100000)),
				"studentName": fmt.Sprintf("Student %d", i),
			},
			GeoCountry:     &country,
			GeoCity:        &city,
			DeviceLanguage: &lang,
		}
		if i%2 == 1 {
			event.SourceApp = domain.SourceAppAndroid
		}
		switch roll := rand.IntN(10); {
		case roll == 0:
			event.ResultLabel = domain.ResultForged
			event.RiskScore = 80 + rand.Float64()*20
			event.Reasons = []string{reasons[rand.IntN(len(reasons))], reasons[rand.IntN(len(reasons))]}
			event.SuspiciousRegionsCount = 1 + rand.IntN(4)
		case roll < 3:
			event.ResultLabel = domain.ResultSuspicious
			event.RiskScore = 40 + rand.Float64()*40
			event.Reasons = []string{reasons[rand.IntN(len(reasons))]}
			event.SuspiciousRegionsCount = rand.IntN(2)
		}

		if err := repo.Create(ctx, event); err != nil {
			return fmt.Errorf("create scan event: %w", err)
		}
	}
	return nil
}
