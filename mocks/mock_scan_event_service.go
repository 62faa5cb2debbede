package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/service"
)

// MockScanEventService is a mock implementation of service.ScanEventService.
type MockScanEventService struct {
	mock.Mock
}

func (m *MockScanEventService) Ingest(ctx context.Context, input service.IngestScanEventInput) (*domain.ScanEvent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEvent), args.Error(1)
}

func (m *MockScanEventService) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.ScanEvent, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEvent), args.Error(1)
}

func (m *MockScanEventService) List(ctx context.Context, p domain.Principal, params query.ScanEventParams) (domain.Page[domain.ScanEvent], error) {
	args := m.Called(ctx, p, params)
	return args.Get(0).(domain.Page[domain.ScanEvent]), args.Error(1)
}
