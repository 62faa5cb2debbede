package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
	"authentiqa/internal/scope"
)

// NullableUUID is a JSON field that tells an absent value from an explicit
// null. Set is false when the key was not present.
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// CreateFraudCaseInput is the DTO for opening a fraud case.
type CreateFraudCaseInput struct {
	ScanEventID      uuid.UUID         `json:"scanEventId"`
	Status           domain.CaseStatus `json:"status"`
	AssignedToUserID *uuid.UUID        `json:"assignedToUserId"`
	Notes            string            `json:"notes"`
}

// UpdateFraudCaseInput is a partial update. Absent fields are kept; an
// explicit null assignee unassigns the case.
type UpdateFraudCaseInput struct {
	Status           *domain.CaseStatus `json:"status"`
	AssignedToUserID NullableUUID       `json:"assignedToUserId"`
	Notes            *string            `json:"notes"`
}

// FraudCaseService manages the review lifecycle of fraud cases.
type FraudCaseService interface {
	Create(ctx context.Context, p domain.Principal, input CreateFraudCaseInput) (*domain.FraudCase, error)
	Update(ctx context.Context, p domain.Principal, id uuid.UUID, input UpdateFraudCaseInput) (*domain.FraudCase, error)
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.FraudCase, error)
	List(ctx context.Context, p domain.Principal, params query.FraudCaseParams) (domain.Page[domain.FraudCase], error)
}

type fraudCaseService struct {
	cases  port.FraudCaseRepository
	events port.ScanEventRepository
	log    *zap.Logger
}

// NewFraudCaseService creates a new FraudCaseService implementation.
func NewFraudCaseService(cases port.FraudCaseRepository, events port.ScanEventRepository, log *zap.Logger) FraudCaseService {
	return &fraudCaseService{cases: cases, events: events, log: log}
}

const caseStatusMessage = "must be one of OPEN, IN_REVIEW, CONFIRMED_FRAUD, FALSE_POSITIVE, CLOSED"

func (s *fraudCaseService) Create(ctx context.Context, p domain.Principal, input CreateFraudCaseInput) (*domain.FraudCase, error) {
	verr := &domain.ValidationError{}
	if input.ScanEventID == uuid.Nil {
		verr.Add("scanEventId", "is required")
	}
	status := input.Status
	if status == "" {
		status = domain.CaseOpen
	} else if !status.Valid() {
		verr.Add("status", caseStatusMessage)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, input.ScanEventID, query.Filter{})
	if err != nil {
		return nil, err
	}
	if !scope.Permits(p, event.TenantID) {
		return nil, domain.ErrForbidden
	}

	fc := &domain.FraudCase{
		ScanEventID:      input.ScanEventID,
		Status:           status,
		AssignedToUserID: input.AssignedToUserID,
		Notes:            input.Notes,
	}
	if err := s.cases.Create(ctx, fc); err != nil {
		return nil, err
	}

	s.log.Info("fraud case opened",
		zap.String("fraud_case_id", fc.ID.String()),
		zap.String("scan_event_id", fc.ScanEventID.String()),
		zap.String("status", string(fc.Status)),
		zap.String("actor_id", p.UserID().String()))
	return fc, nil
}

// Update re-derives the case's tenant from its scan event before writing.
// Concurrent updates are last-write-wins.
func (s *fraudCaseService) Update(ctx context.Context, p domain.Principal, id uuid.UUID, input UpdateFraudCaseInput) (*domain.FraudCase, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, domain.NewValidationError("status", caseStatusMessage)
	}

	fc, err := s.cases.GetByID(ctx, id, query.Filter{})
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, fc.ScanEventID, query.Filter{})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("fraud case %s: %w", fc.ID, domain.ErrDanglingReference)
		}
		return nil, err
	}
	if !scope.Permits(p, event.TenantID) {
		return nil, domain.ErrForbidden
	}

	previous := fc.Status
	if input.Status != nil {
		fc.Status = *input.Status
	}
	if input.AssignedToUserID.Set {
		fc.AssignedToUserID = input.AssignedToUserID.Value
	}
	if input.Notes != nil {
		fc.Notes = *input.Notes
	}

	if err := s.cases.Update(ctx, fc); err != nil {
		return nil, err
	}

	if previous != fc.Status {
		s.log.Info("fraud case status changed",
			zap.String("fraud_case_id", fc.ID.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(fc.Status)),
			zap.String("actor_id", p.UserID().String()))
	}
	return fc, nil
}

// Get returns the case when its scan event lies within p's scope. Cases
// outside the scope are reported as not found.
func (s *fraudCaseService) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.FraudCase, error) {
	return s.cases.GetByID(ctx, id, scope.Resolve(p, query.Filter{}, domain.FieldTenantID))
}

func (s *fraudCaseService) List(ctx context.Context, p domain.Principal, params query.FraudCaseParams) (domain.Page[domain.FraudCase], error) {
	plan, err := query.BuildFraudCasePlan(params)
	if err != nil {
		return domain.Page[domain.FraudCase]{}, err
	}
	plan.Filter = scope.Resolve(p, plan.Filter, domain.FieldTenantID)

	total, err := s.cases.Count(ctx, plan.Filter)
	if err != nil {
		return domain.Page[domain.FraudCase]{}, err
	}
	cases, err := s.cases.Find(ctx, plan)
	if err != nil {
		return domain.Page[domain.FraudCase]{}, err
	}
	return domain.NewPage(cases, total, plan.Page, plan.PageSize), nil
}
