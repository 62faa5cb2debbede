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
)

type documentKindRepo struct {
	db *sqlx.DB
}

// NewDocumentKindRepo creates a new PostgreSQL-backed DocumentKindRepository.
func NewDocumentKindRepo(db *sqlx.DB) port.DocumentKindRepository {
	return &documentKindRepo{db: db}
}

const documentKindColumns = `id, tenant_id, name, version, status, created_at`

func (r *documentKindRepo) Create(ctx context.Context, kind *domain.DocumentKind) error {
	kind.ID = uuid.New()
	kind.CreatedAt = time.Now().UTC()

	stmt := `INSERT INTO document_kinds (id, tenant_id, name, version, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, stmt,
		kind.ID, kind.TenantID, kind.Name, kind.Version, kind.Status, kind.CreatedAt)
	if err != nil {
		return fmt.Errorf("documentKindRepo.Create: %w", err)
	}
	return nil
}

func (r *documentKindRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentKind, error) {
	var kind domain.DocumentKind
	err := r.db.GetContext(ctx, &kind,
		"SELECT "+documentKindColumns+" FROM document_kinds WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentKindRepo.GetByID: %w", err)
	}
	return &kind, nil
}

func (r *documentKindRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.DocumentKind, error) {
	var kinds []domain.DocumentKind
	err := r.db.SelectContext(ctx, &kinds,
		"SELECT "+documentKindColumns+" FROM document_kinds WHERE tenant_id = $1 ORDER BY name ASC, created_at DESC",
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("documentKindRepo.ListByTenant: %w", err)
	}
	return kinds, nil
}

func (r *documentKindRepo) Update(ctx context.Context, kind *domain.DocumentKind) error {
	stmt := `UPDATE document_kinds SET name = $1, version = $2, status = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, stmt, kind.Name, kind.Version, kind.Status, kind.ID)
	if err != nil {
		return fmt.Errorf("documentKindRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
