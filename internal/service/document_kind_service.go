package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/scope"
)

// CreateDocumentKindInput is the DTO for registering a document kind.
type CreateDocumentKindInput struct {
	Name    domain.DocumentKindName   `json:"name"`
	Version string                    `json:"version"`
	Status  domain.DocumentKindStatus `json:"status"`
}

// UpdateDocumentKindInput is the DTO for updating a document kind.
type UpdateDocumentKindInput struct {
	Name    *domain.DocumentKindName   `json:"name"`
	Version *string                    `json:"version"`
	Status  *domain.DocumentKindStatus `json:"status"`
}

// DocumentKindService manages the document kinds of a tenant.
type DocumentKindService interface {
	ListByTenant(ctx context.Context, p domain.Principal, tenantID uuid.UUID) ([]domain.DocumentKind, error)
	Create(ctx context.Context, p domain.Principal, tenantID uuid.UUID, input CreateDocumentKindInput) (*domain.DocumentKind, error)
	Update(ctx context.Context, p domain.Principal, id uuid.UUID, input UpdateDocumentKindInput) (*domain.DocumentKind, error)
	SetStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.DocumentKindStatus) (*domain.DocumentKind, error)
}

type documentKindService struct {
	repo       port.DocumentKindRepository
	tenantRepo port.TenantRepository
}

// NewDocumentKindService creates a new DocumentKindService implementation.
func NewDocumentKindService(repo port.DocumentKindRepository, tenantRepo port.TenantRepository) DocumentKindService {
	return &documentKindService{repo: repo, tenantRepo: tenantRepo}
}

// canRead additionally lets analysts read the kinds of their own tenant.
func canRead(p domain.Principal, tenantID uuid.UUID) bool {
	if scope.Permits(p, tenantID) {
		return true
	}
	a, ok := p.(domain.Analyst)
	return ok && a.TenantID != nil && *a.TenantID == tenantID
}

const kindNameMessage = "must be one of Transcript, Diploma, Attestation"
const kindStatusMessage = "must be one of ACTIVE, DISABLED"

func (s *documentKindService) ListByTenant(ctx context.Context, p domain.Principal, tenantID uuid.UUID) ([]domain.DocumentKind, error) {
	if !canRead(p, tenantID) {
		return nil, domain.ErrForbidden
	}
	kinds, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if kinds == nil {
		kinds = []domain.DocumentKind{}
	}
	return kinds, nil
}

func (s *documentKindService) Create(ctx context.Context, p domain.Principal, tenantID uuid.UUID, input CreateDocumentKindInput) (*domain.DocumentKind, error) {
	if !scope.Permits(p, tenantID) {
		return nil, domain.ErrForbidden
	}

	verr := &domain.ValidationError{}
	if !input.Name.Valid() {
		verr.Add("name", kindNameMessage)
	}
	status := input.Status
	if status == "" {
		status = domain.DocumentKindActive
	} else if !status.Valid() {
		verr.Add("status", kindStatusMessage)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, err
	}

	kind := &domain.DocumentKind{
		TenantID: tenantID,
		Name:     input.Name,
		Version:  strings.TrimSpace(input.Version),
		Status:   status,
	}
	if err := s.repo.Create(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

func (s *documentKindService) Update(ctx context.Context, p domain.Principal, id uuid.UUID, input UpdateDocumentKindInput) (*domain.DocumentKind, error) {
	verr := &domain.ValidationError{}
	if input.Name != nil && !input.Name.Valid() {
		verr.Add("name", kindNameMessage)
	}
	if input.Status != nil && !input.Status.Valid() {
		verr.Add("status", kindStatusMessage)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	kind, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		kind.Name = *input.Name
	}
	if input.Version != nil {
		kind.Version = strings.TrimSpace(*input.Version)
	}
	if input.Status != nil {
		kind.Status = *input.Status
	}

	if err := s.repo.Update(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

func (s *documentKindService) SetStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.DocumentKindStatus) (*domain.DocumentKind, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", kindStatusMessage)
	}
	kind, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	kind.Status = status
	if err := s.repo.Update(ctx, kind); err != nil {
		return nil, err
	}
	return kind, nil
}

// owned loads a document kind and checks that p manages its tenant.
func (s *documentKindService) owned(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.DocumentKind, error) {
	kind, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scope.Permits(p, kind.TenantID) {
		return nil, domain.ErrForbidden
	}
	return kind, nil
}
