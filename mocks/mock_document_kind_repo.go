package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
)

// MockDocumentKindRepo is a mock implementation of port.DocumentKindRepository.
type MockDocumentKindRepo struct {
	mock.Mock
}

func (m *MockDocumentKindRepo) Create(ctx context.Context, kind *domain.DocumentKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}

func (m *MockDocumentKindRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentKind, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentKind), args.Error(1)
}

func (m *MockDocumentKindRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.DocumentKind, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentKind), args.Error(1)
}

func (m *MockDocumentKindRepo) Update(ctx context.Context, kind *domain.DocumentKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}
