package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"authentiqa/internal/domain"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
)

type tenantRepo struct {
	db *sqlx.DB
}

// NewTenantRepo creates a new PostgreSQL-backed TenantRepository.
func NewTenantRepo(db *sqlx.DB) port.TenantRepository {
	return &tenantRepo{db: db}
}

func isDuplicateName(err error) bool {
	return strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "name")
}

func (r *tenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	tenant.ID = uuid.New()
	tenant.CreatedAt = time.Now().UTC()

	stmt := `INSERT INTO tenants (id, name, country, status, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, stmt,
		tenant.ID, tenant.Name, tenant.Country, tenant.Status, tenant.CreatedAt)
	if err != nil {
		if isDuplicateName(err) {
			return domain.ErrDuplicateTenantName
		}
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}
	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.GetContext(ctx, &tenant,
		"SELECT id, name, country, status, created_at FROM tenants WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("tenantRepo.GetByID: %w", err)
	}
	return &tenant, nil
}

func (r *tenantRepo) Find(ctx context.Context, filter query.Filter, offset, limit int) ([]domain.Tenant, int, error) {
	where, args, err := buildWhereClause(filter, tenantColumns, 1)
	if err != nil {
		return nil, 0, fmt.Errorf("tenantRepo.Find: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tenants t "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("tenantRepo.Find count: %w", err)
	}

	n := len(args)
	q := fmt.Sprintf(`SELECT t.id, t.name, t.country, t.status, t.created_at FROM tenants t %s
		ORDER BY t.name ASC LIMIT $%d OFFSET $%d`, where, n+1, n+2)
	var tenants []domain.Tenant
	if err := r.db.SelectContext(ctx, &tenants, q, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("tenantRepo.Find: %w", err)
	}
	return tenants, total, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	stmt := `UPDATE tenants SET name = $1, country = $2, status = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, stmt, tenant.Name, tenant.Country, tenant.Status, tenant.ID)
	if err != nil {
		if isDuplicateName(err) {
			return domain.ErrDuplicateTenantName
		}
		return fmt.Errorf("tenantRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tenantRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.TenantStatus) error {
	result, err := r.db.ExecContext(ctx, "UPDATE tenants SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("tenantRepo.SetStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
