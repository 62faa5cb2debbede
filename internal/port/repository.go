package port

import (
	"context"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Find(ctx context.Context, filter query.Filter, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TenantStatus) error
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// DocumentKindRepository defines the contract for document kind persistence.
type DocumentKindRepository interface {
	Create(ctx context.Context, kind *domain.DocumentKind) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentKind, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.DocumentKind, error)
	Update(ctx context.Context, kind *domain.DocumentKind) error
}
