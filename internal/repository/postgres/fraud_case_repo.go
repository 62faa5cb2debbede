package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
)

type fraudCaseRepo struct {
	db *sqlx.DB
}

// NewFraudCaseRepo creates a new PostgreSQL-backed FraudCaseRepository.
func NewFraudCaseRepo(db *sqlx.DB) port.FraudCaseRepository {
	return &fraudCaseRepo{db: db}
}

const fraudCaseSelect = `SELECT fc.id, fc.scan_event_id, fc.status, fc.assigned_to_user_id, fc.notes,
	fc.created_at, fc.updated_at
	FROM fraud_cases fc
	LEFT JOIN scan_events se ON se.id = fc.scan_event_id`

// assigned_to_user_id is the only foreign key on fraud_cases.
func unknownAssignee() error {
	return domain.NewValidationError("assignedToUserId", "unknown user")
}

func (r *fraudCaseRepo) Create(ctx context.Context, fc *domain.FraudCase) error {
	fc.ID = uuid.New()
	now := time.Now().UTC()
	fc.CreatedAt = now
	fc.UpdatedAt = now

	stmt := `INSERT INTO fraud_cases (id, scan_event_id, status, assigned_to_user_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, stmt,
		fc.ID, fc.ScanEventID, fc.Status, fc.AssignedToUserID, fc.Notes, fc.CreatedAt, fc.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return unknownAssignee()
		}
		return fmt.Errorf("fraudCaseRepo.Create: %w", err)
	}
	return nil
}

func (r *fraudCaseRepo) GetByID(ctx context.Context, id uuid.UUID, filter query.Filter) (*domain.FraudCase, error) {
	where, args, err := buildWhereClause(filter.Where(domain.FieldID, id), fraudCaseColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("fraudCaseRepo.GetByID: %w", err)
	}

	var fc domain.FraudCase
	if err := r.db.GetContext(ctx, &fc, fraudCaseSelect+" "+where, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fraudCaseRepo.GetByID: %w", err)
	}
	return &fc, nil
}

func (r *fraudCaseRepo) Find(ctx context.Context, plan query.Plan) ([]domain.FraudCase, error) {
	where, args, err := buildWhereClause(plan.Filter, fraudCaseColumns, 1)
	if err != nil {
		return nil, fmt.Errorf("fraudCaseRepo.Find: %w", err)
	}
	orderBy, err := orderByClause(plan.Sort, fraudCaseColumns)
	if err != nil {
		return nil, fmt.Errorf("fraudCaseRepo.Find: %w", err)
	}

	n := len(args)
	q := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d", fraudCaseSelect, where, orderBy, n+1, n+2)
	args = append(args, plan.Limit, plan.Skip)

	var cases []domain.FraudCase
	if err := r.db.SelectContext(ctx, &cases, q, args...); err != nil {
		return nil, fmt.Errorf("fraudCaseRepo.Find: %w", err)
	}
	return cases, nil
}

func (r *fraudCaseRepo) Count(ctx context.Context, filter query.Filter) (int, error) {
	where, args, err := buildWhereClause(filter, fraudCaseColumns, 1)
	if err != nil {
		return 0, fmt.Errorf("fraudCaseRepo.Count: %w", err)
	}

	q := "SELECT COUNT(*) FROM fraud_cases fc LEFT JOIN scan_events se ON se.id = fc.scan_event_id " + where
	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return 0, fmt.Errorf("fraudCaseRepo.Count: %w", err)
	}
	return total, nil
}

// Update overwrites the mutable fields of a case. scan_event_id never changes.
func (r *fraudCaseRepo) Update(ctx context.Context, fc *domain.FraudCase) error {
	fc.UpdatedAt = time.Now().UTC()
	stmt := `UPDATE fraud_cases SET status = $1, assigned_to_user_id = $2, notes = $3, updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, stmt,
		fc.Status, fc.AssignedToUserID, fc.Notes, fc.UpdatedAt, fc.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return unknownAssignee()
		}
		return fmt.Errorf("fraudCaseRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
