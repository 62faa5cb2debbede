package port

import (
	"context"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// AnalyticsRepository runs rollups over the scan events matching a filter.
type AnalyticsRepository interface {
	Count(ctx context.Context, filter query.Filter) (int, error)
	Totals(ctx context.Context, filter query.Filter) (*domain.ScanTotals, error)
	// TopReasons counts each reason at most once per event, highest first,
	// ties broken by reason.
	TopReasons(ctx context.Context, filter query.Filter, limit int) ([]domain.ReasonCount, error)
	TopDocumentKinds(ctx context.Context, filter query.Filter, limit int) ([]domain.DocumentKindCount, error)
	TimeBuckets(ctx context.Context, filter query.Filter, granularity domain.Granularity) ([]domain.TimeBucket, error)
	GeoCounts(ctx context.Context, filter query.Filter) ([]domain.GeoCount, error)
}
