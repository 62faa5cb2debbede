package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
)

const (
	topReasonsLimit       = 10
	topDocumentKindsLimit = 10
)

// AnalyticsService computes dashboard rollups. Every method takes a filter
// already narrowed to the caller's scope.
type AnalyticsService interface {
	Overview(ctx context.Context, scoped query.Filter) (*domain.Overview, error)
	Timeseries(ctx context.Context, scoped query.Filter, from, to *time.Time, granularity domain.Granularity) ([]domain.TimeBucket, error)
	Geo(ctx context.Context, scoped query.Filter) (domain.GeoBreakdown, error)
}

type analyticsService struct {
	repo port.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService. A nil clock means time.Now.
func NewAnalyticsService(repo port.AnalyticsRepository, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{repo: repo, now: now}
}

func (s *analyticsService) Overview(ctx context.Context, scoped query.Filter) (*domain.Overview, error) {
	now := s.now().UTC()

	var (
		totals  *domain.ScanTotals
		reasons []domain.ReasonCount
		kinds   []domain.DocumentKindCount
		last7   int
		last30  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.repo.Totals(gctx, scoped)
		return err
	})
	g.Go(func() (err error) {
		reasons, err = s.repo.TopReasons(gctx, scoped, topReasonsLimit)
		return err
	})
	g.Go(func() (err error) {
		kinds, err = s.repo.TopDocumentKinds(gctx, scoped, topDocumentKindsLimit)
		return err
	})
	g.Go(func() (err error) {
		last7, err = s.repo.Count(gctx, scoped.Between(domain.FieldCreatedAt, now.AddDate(0, 0, -7), now))
		return err
	})
	g.Go(func() (err error) {
		last30, err = s.repo.Count(gctx, scoped.Between(domain.FieldCreatedAt, now.AddDate(0, 0, -30), now))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if reasons == nil {
		reasons = []domain.ReasonCount{}
	}
	named := namedKindCounts(kinds)

	return &domain.Overview{
		TotalScans:        totals.Total,
		AuthenticCount:    totals.Authentic,
		SuspiciousCount:   totals.Suspicious,
		ForgedCount:       totals.Forged,
		FraudRateEstimate: rate(totals.Forged, totals.Total),
		SuspiciousRate:    rate(totals.Suspicious, totals.Total),
		AvgConfidence:     totals.AvgConfidence,
		AvgRiskScore:      totals.AvgRiskScore,
		TopReasons:        reasons,
		TopDocumentTypes:  named,
		Last7Days:         last7,
		Last30Days:        last30,
	}, nil
}

// namedKindCounts labels unresolved kinds Unknown and folds them into a
// single entry, ordered by count descending then name.
func namedKindCounts(kinds []domain.DocumentKindCount) []domain.NamedCount {
	named := make([]domain.NamedCount, 0, len(kinds))
	unknown := -1
	for _, k := range kinds {
		if k.Name != nil && *k.Name != "" {
			named = append(named, domain.NamedCount{Name: *k.Name, Count: k.Count})
			continue
		}
		if unknown >= 0 {
			named[unknown].Count += k.Count
			continue
		}
		unknown = len(named)
		named = append(named, domain.NamedCount{Name: domain.Unknown, Count: k.Count})
	}
	sort.SliceStable(named, func(i, j int) bool {
		if named[i].Count != named[j].Count {
			return named[i].Count > named[j].Count
		}
		return named[i].Name < named[j].Name
	})
	return named
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

func (s *analyticsService) Timeseries(ctx context.Context, scoped query.Filter, from, to *time.Time, granularity domain.Granularity) ([]domain.TimeBucket, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.NewValidationError("dateFrom", "must not be after dateTo")
	}
	if granularity != domain.GranularityWeek {
		granularity = domain.GranularityDay
	}

	var lo, hi any
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	buckets, err := s.repo.TimeBuckets(ctx, scoped.Between(domain.FieldCreatedAt, lo, hi), granularity)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TimeBucket, len(buckets))
	for i, b := range buckets {
		b.Start = b.Start.UTC()
		out[i] = b
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *analyticsService) Geo(ctx context.Context, scoped query.Filter) (domain.GeoBreakdown, error) {
	rows, err := s.repo.GeoCounts(ctx, scoped)
	if err != nil {
		return nil, err
	}

	out := domain.GeoBreakdown{}
	for _, r := range rows {
		country := orUnknown(r.Country)
		city := orUnknown(r.City)
		if out[country] == nil {
			out[country] = map[string]int{}
		}
		out[country][city] += r.Count
	}
	return out, nil
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return domain.Unknown
	}
	return *s
}
