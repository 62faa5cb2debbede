package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"authentiqa/internal/domain"
	"authentiqa/internal/service"
)

// MockDocumentKindService is a mock implementation of service.DocumentKindService.
type MockDocumentKindService struct {
	mock.Mock
}

func (m *MockDocumentKindService) ListByTenant(ctx context.Context, p domain.Principal, tenantID uuid.UUID) ([]domain.DocumentKind, error) {
	args := m.Called(ctx, p, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentKind), args.Error(1)
}

func (m *MockDocumentKindService) Create(ctx context.Context, p domain.Principal, tenantID uuid.UUID, input service.CreateDocumentKindInput) (*domain.DocumentKind, error) {
	args := m.Called(ctx, p, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentKind), args.Error(1)
}

func (m *MockDocumentKindService) Update(ctx context.Context, p domain.Principal, id uuid.UUID, input service.UpdateDocumentKindInput) (*domain.DocumentKind, error) {
	args := m.Called(ctx, p, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentKind), args.Error(1)
}

func (m *MockDocumentKindService) SetStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.DocumentKindStatus) (*domain.DocumentKind, error) {
	args := m.Called(ctx, p, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentKind), args.Error(1)
}
