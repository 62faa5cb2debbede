package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
)

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

const labelCounts = `COUNT(*) FILTER (WHERE se.result_label = 'AUTHENTIC') AS authentic,
	COUNT(*) FILTER (WHERE se.result_label = 'SUSPICIOUS') AS suspicious,
	COUNT(*) FILTER (WHERE se.result_label = 'FORGED') AS forged`

func (r *analyticsRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return 0, fmt.Errorf("analyticsRepo.Count: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM scan_events se "+where, args...); err != nil {
		return 0, fmt.Errorf("analyticsRepo.Count: %w", err)
	}
	return total, nil
}

func (r *analyticsRepo) Totals(ctx context.Context, filter query.Filter) (*domain.ScanTotals, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.Totals: %w", err)
	}

	q := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		%s,
		COALESCE(AVG(se.confidence), 0) AS avg_confidence,
		COALESCE(AVG(se.risk_score), 0) AS avg_risk_score
	FROM scan_events se
	%s`, labelCounts, where)

	var totals domain.ScanTotals
	if err := r.db.GetContext(ctx, &totals, q, args...); err != nil {
		return nil, fmt.Errorf("analyticsRepo.Totals: %w", err)
	}
	return &totals, nil
}

func (r *analyticsRepo) TopReasons(ctx context.Context, filter query.Filter, limit int) ([]domain.ReasonCount, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopReasons: %w", err)
	}

	// DISTINCT inside the lateral counts a reason once per event.
	q := fmt.Sprintf(`SELECT r.reason, COUNT(*) AS count
	FROM scan_events se
	CROSS JOIN LATERAL (SELECT DISTINCT jsonb_array_elements_text(se.reasons) AS reason) r
	%s
	GROUP BY r.reason
	ORDER BY count DESC, r.reason ASC
	LIMIT $%d`, where, len(args)+1)

	var rows []domain.ReasonCount
	if err := r.db.SelectContext(ctx, &rows, q, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopReasons: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) TopDocumentKinds(ctx context.Context, filter query.Filter, limit int) ([]domain.DocumentKindCount, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopDocumentKinds: %w", err)
	}

	q := fmt.Sprintf(`SELECT dk.id AS document_kind_id, dk.name, COUNT(*) AS count
	FROM scan_events se
	LEFT JOIN document_kinds dk ON dk.id = se.document_kind_id
	%s
	GROUP BY dk.id, dk.name
	ORDER BY count DESC, dk.name ASC NULLS LAST, dk.id ASC
	LIMIT $%d`, where, len(args)+1)

	var rows []domain.DocumentKindCount
	if err := r.db.SelectContext(ctx, &rows, q, append(args, limit)...); err != nil {
		return nil, fmt.Errorf("analyticsRepo.TopDocumentKinds: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) TimeBuckets(ctx context.Context, filter query.Filter, granularity domain.Granularity) ([]domain.TimeBucket, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.TimeBuckets: %w", err)
	}

	q := fmt.Sprintf(`SELECT
		%s AS bucket,
		%s,
		COUNT(*) AS total
	FROM scan_events se
	%s
	GROUP BY bucket
	ORDER BY bucket ASC`, dateTruncExpr(granularity), labelCounts, where)

	var rows []domain.TimeBucket
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("analyticsRepo.TimeBuckets: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) GeoCounts(ctx context.Context, filter query.Filter) ([]domain.GeoCount, error) {
	where, args, err := buildWhereClause(filter, scanEventColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("analyticsRepo.GeoCounts: %w", err)
	}

	q := fmt.Sprintf(`SELECT se.geo_country, se.geo_city, COUNT(*) AS count
	FROM scan_events se
	%s
	GROUP BY se.geo_country, se.geo_city`, where)

	var rows []domain.GeoCount
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("analyticsRepo.GeoCounts: %w", err)
	}
	return rows, nil
}
