package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/service"
)

// MockFraudCaseService is a mock implementation of service.FraudCaseService.
type MockFraudCaseService struct {
	mock.Mock
}

func (m *MockFraudCaseService) Create(ctx context.Context, p domain.Principal, input service.CreateFraudCaseInput) (*domain.FraudCase, error) {
	args := m.Called(ctx, p, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FraudCase), args.Error(1)
}

func (m *MockFraudCaseService) Update(ctx context.Context, p domain.Principal, id uuid.UUID, input service.UpdateFraudCaseInput) (*domain.FraudCase, error) {
	args := m.Called(ctx, p, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FraudCase), args.Error(1)
}

func (m *MockFraudCaseService) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.FraudCase, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FraudCase), args.Error(1)
}

func (m *MockFraudCaseService) List(ctx context.Context, p domain.Principal, params query.FraudCaseParams) (domain.Page[domain.FraudCase], error) {
	args := m.Called(ctx, p, params)
	return args.Get(0).(domain.Page[domain.FraudCase]), args.Error(1)
}
