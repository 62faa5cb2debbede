package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// MockFraudCaseRepo is a mock implementation of port.FraudCaseRepository.
type MockFraudCaseRepo struct {
	mock.Mock
}

func (m *MockFraudCaseRepo) Create(ctx context.Context, fc *domain.FraudCase) error {
	args := m.Called(ctx, fc)
	return args.Error(0)
}

func (m *MockFraudCaseRepo) GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.FraudCase, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FraudCase), args.Error(1)
}

func (m *MockFraudCaseRepo) Find(ctx context.Context, plan query.Plan) ([]domain.FraudCase, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FraudCase), args.Error(1)
}

func (m *MockFraudCaseRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockFraudCaseRepo) Update(ctx context.Context, fc *domain.FraudCase) error {
	args := m.Called(ctx, fc)
	return args.Error(0)
}
