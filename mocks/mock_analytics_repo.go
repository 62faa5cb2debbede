package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepo) Totals(ctx context.Context, filter query.Filter) (*domain.ScanTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanTotals), args.Error(1)
}

func (m *MockAnalyticsRepo) TopReasons(ctx context.Context, filter query.Filter, limit int) ([]domain.ReasonCount, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReasonCount), args.Error(1)
}

func (m *MockAnalyticsRepo) TopDocumentKinds(ctx context.Context, filter query.Filter, limit int) ([]domain.DocumentKindCount, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentKindCount), args.Error(1)
}

func (m *MockAnalyticsRepo) TimeBuckets(ctx context.Context, filter query.Filter, granularity domain.Granularity) ([]domain.TimeBucket, error) {
	args := m.Called(ctx, filter, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeBucket), args.Error(1)
}

func (m *MockAnalyticsRepo) GeoCounts(ctx context.Context, filter query.Filter) ([]domain.GeoCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeoCount), args.Error(1)
}
