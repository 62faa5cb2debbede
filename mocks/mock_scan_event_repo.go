package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// MockScanEventRepo is a mock implementation of port.ScanEventRepository.
type MockScanEventRepo struct {
	mock.Mock
}

func (m *MockScanEventRepo) Create(ctx context.Context, event *domain.ScanEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockScanEventRepo) GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.ScanEvent, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEvent), args.Error(1)
}

func (m *MockScanEventRepo) Find(ctx context.Context, plan query.Plan) ([]domain.ScanEvent, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEvent), args.Error(1)
}

func (m *MockScanEventRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
