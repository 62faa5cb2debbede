package port

import (
	"context"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// ScanEventRepository is the append-only store of scan events.
type ScanEventRepository interface {
	Create(ctx context.Context, event *domain.ScanEvent) error
	// GetByID returns the event matching both id and filter, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.ScanEvent, error)
	Find(ctx context.Context, plan query.Plan) ([]domain.ScanEvent, error)
	Count(ctx context.Context, filter query.Filter) (int, error)
}

// FraudCaseRepository defines the contract for fraud case persistence.
// Filters may constrain domain.FieldTenantID, which resolves through the
// case's scan event.
type FraudCaseRepository interface {
	Create(ctx context.Context, fc *domain.FraudCase) error
	GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.FraudCase, error)
	Find(ctx context.Context, plan query.Plan) ([]domain.FraudCase, error)
	Count(ctx context.Context, filter query.Filter) (int, error)
	Update(ctx context.Context, fc *domain.FraudCase) error
}
