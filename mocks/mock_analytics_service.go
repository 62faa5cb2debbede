package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context, scoped query.Filter) (*domain.Overview, error) {
	args := m.Called(ctx, scoped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *MockAnalyticsService) Timeseries(ctx context.Context, scoped query.Filter, from, to *time.Time, granularity domain.Granularity) ([]domain.TimeBucket, error) {
	args := m.Called(ctx, scoped, from, to, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeBucket), args.Error(1)
}

func (m *MockAnalyticsService) Geo(ctx context.Context, scoped query.Filter) (domain.GeoBreakdown, error) {
	args := m.Called(ctx, scoped)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.GeoBreakdown), args.Error(1)
}
