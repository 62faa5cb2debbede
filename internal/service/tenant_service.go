package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
	"authentiqa/internal/scope"
)

// CreateTenantInput is the DTO for creating a tenant.
type CreateTenantInput struct {
	Name    string              `json:"name"`
	Country string              `json:"country"`
	Status  domain.TenantStatus `json:"status"`
}

// UpdateTenantInput is the DTO for updating a tenant. Absent fields are kept.
type UpdateTenantInput struct {
	Name    *string              `json:"name"`
	Country *string              `json:"country"`
	Status  *domain.TenantStatus `json:"status"`
}

// TenantService defines the tenant management contract.
type TenantService interface {
	Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error)
	List(ctx context.Context, p domain.Principal, page, pageSize int) (domain.Page[domain.Tenant], error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TenantStatus) (*domain.Tenant, error)
}

type tenantService struct {
	repo port.TenantRepository
}

// NewTenantService creates a new TenantService implementation.
func NewTenantService(repo port.TenantRepository) TenantService {
	return &tenantService{repo: repo}
}

func (s *tenantService) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		verr.Add("name", "is required")
	}
	status := input.Status
	if status == "" {
		status = domain.TenantStatusActive
	} else if !status.Valid() {
		verr.Add("status", "must be one of ACTIVE, PENDING, DISABLED")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	tenant := &domain.Tenant{
		Name:    name,
		Country: strings.TrimSpace(input.Country),
		Status:  status,
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// List returns the tenants visible to p. A tenant admin sees only their own.
func (s *tenantService) List(ctx context.Context, p domain.Principal, page, pageSize int) (domain.Page[domain.Tenant], error) {
	filter := scope.Resolve(p, query.Filter{}, domain.SelfField)
	tenants, total, err := s.repo.Find(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return domain.Page[domain.Tenant]{}, err
	}
	return domain.NewPage(tenants, total, page, pageSize), nil
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, input UpdateTenantInput) (*domain.Tenant, error) {
	verr := &domain.ValidationError{}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		verr.Add("name", "must not be empty")
	}
	if input.Status != nil && !input.Status.Valid() {
		verr.Add("status", "must be one of ACTIVE, PENDING, DISABLED")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		tenant.Name = strings.TrimSpace(*input.Name)
	}
	if input.Country != nil {
		tenant.Country = strings.TrimSpace(*input.Country)
	}
	if input.Status != nil {
		tenant.Status = *input.Status
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) SetStatus(ctx context.Context, id uuid.UUID, status domain.TenantStatus) (*domain.Tenant, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of ACTIVE, PENDING, DISABLED")
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
