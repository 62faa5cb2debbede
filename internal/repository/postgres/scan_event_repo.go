package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
)

type scanEventRepo struct {
	db *sqlx.DB
}

// NewScanEventRepo creates a new PostgreSQL-backed ScanEventRepository.
func NewScanEventRepo(db *sqlx.DB) port.ScanEventRepository {
	return &scanEventRepo{db: db}
}

const scanEventColumnsList = `se.id, se.tenant_id, se.document_kind_id, se.source_app, se.content_hash,
	se.result_label, se.confidence, se.risk_score, se.reasons, se.suspicious_regions_count,
	se.extracted_fields, se.geo_country, se.geo_city, se.device_language, se.created_at`

func (r *scanEventRepo) Create(ctx context.Context, event *domain.ScanEvent) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now().UTC()
	if event.Reasons == nil {
		event.Reasons = []string{}
	}
	if event.ExtractedFields == nil {
		event.ExtractedFields = map[string]interface{}{}
	}

	stmt := `INSERT INTO scan_events (id, tenant_id, document_kind_id, source_app, content_hash,
		result_label, confidence, risk_score, reasons, suspicious_regions_count,
		extracted_fields, geo_country, geo_city, device_language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, stmt,
		event.ID, event.TenantID, event.DocumentKindID, event.SourceApp, event.ContentHash,
		event.ResultLabel, event.Confidence, event.RiskScore, event.Reasons, event.SuspiciousRegionsCount,
		event.ExtractedFields, event.GeoCountry, event.GeoCity, event.DeviceLanguage, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("scanEventRepo.Create: %w", err)
	}
	return nil
}

func (r *scanEventRepo) GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.ScanEvent, error) {
	where, args, err := buildWhereClause(filter.Where(domain.FieldID, id), scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("scanEventRepo.GetByID: %w", err)
	}

	var event domain.ScanEvent
	q := fmt.Sprintf("SELECT %s FROM scan_events se %s", scanEventColumnsList, where)
	if err := r.db.GetContext(ctx, &event, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanEventRepo.GetByID: %w", err)
	}
	return &event, nil
}

func (r *scanEventRepo) Find(ctx context.Context, plan query.Plan) ([]domain.ScanEvent, error) {
	where, args, err := buildWhereClause(plan.Filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("scanEventRepo.Find: %w", err)
	}
	orderBy, err := orderByClause(plan.Sort, scanEventColumns)
	if err != nil {
		return nil, fmt.Errorf("scanEventRepo.Find: %w", err)
	}

	n := len(args)
	q := fmt.Sprintf("SELECT %s FROM scan_events se %s %s LIMIT $%d OFFSET $%d",
		scanEventColumnsList, where, orderBy, n+1, n+2)
	args = append(args, plan.Limit, plan.Skip)

	var events []domain.ScanEvent
	if err := r.db.SelectContext(ctx, &events, q, args...); err != nil {
		return nil, fmt.Errorf("scanEventRepo.Find: %w", err)
	}
	return events, nil
}

func (r *scanEventRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return 0, fmt.Errorf("scanEventRepo.Count: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM scan_events se "+where, args...); err != nil {
		return 0, fmt.Errorf("scanEventRepo.Count: %w", err)
	}
	return total, nil
}
