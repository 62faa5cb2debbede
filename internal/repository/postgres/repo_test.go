package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/repository/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var scanEventCols = []string{
	"id", "tenant_id", "document_kind_id", "source_app", "content_hash", "result_label",
	"confidence", "risk_score", "reasons", "suspicious_regions_count", "extracted_fields",
	"geo_country", "geo_city", "device_language", "created_at",
}

func TestScanEventRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	event := &domain.ScanEvent{
		TenantID:       uuid.New(),
		DocumentKindID: uuid.New(),
		SourceApp:      domain.SourceAppIOS,
		ContentHash:    "h1",
		ResultLabel:    domain.ResultForged,
		RiskScore:      88,
	}
	mock.ExpectExec("INSERT INTO scan_events").
		WithArgs(sqlmock.AnyArg(), event.TenantID, event.DocumentKindID, "ios", "h1", "FORGED",
			sqlmock.AnyArg(), 88.0, sqlmock.AnyArg(), 0, sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), event)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NotNil(t, event.Reasons)
	assert.NotNil(t, event.ExtractedFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanEventRepo_GetByID_Scoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	id := uuid.New()
	tenantID := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(scanEventCols).AddRow(
		id.String(), tenantID.String(), uuid.New().String(), "android", "h2", "SUSPICIOUS",
		0.4, 55.0, []byte(`["blur","font"]`), 2, []byte(`{"studentId":"S1"}`),
		"MA", "Rabat", nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM scan_events se WHERE se.tenant_id = $1 AND se.id = $2")).
		WithArgs(tenantID, id).
		WillReturnRows(rows)

	event, err := repo.GetByID(context.Background(), id, query.Filter{}.Where(domain.FieldTenantID, tenantID))

	require.NoError(t, err)
	assert.Equal(t, id, event.ID)
	assert.Equal(t, domain.ResultSuspicious, event.ResultLabel)
	require.NotNil(t, event.Confidence)
	assert.InDelta(t, 0.4, *event.Confidence, 1e-9)
	assert.Equal(t, []string{"blur", "font"}, []string(event.Reasons))
	assert.Equal(t, "S1", event.ExtractedFields["studentId"])
	assert.Nil(t, event.DeviceLanguage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanEventRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	mock.ExpectQuery("FROM scan_events se").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New(), query.Filter{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScanEventRepo_Find_AppliesPlan(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	plan, err := query.BuildScanEventPlan(query.ScanEventParams{
		ResultLabel: "FORGED", SortBy: "riskScore", SortDir: "asc", Page: "2", PageSize: "10",
	})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE se.result_label = $1 ORDER BY se.risk_score ASC NULLS FIRST, se.id ASC NULLS FIRST LIMIT $2 OFFSET $3")).
		WithArgs("FORGED", 10, 10).
		WillReturnRows(sqlmock.NewRows(scanEventCols))

	events, err := repo.Find(context.Background(), plan)

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanEventRepo_Count_Never(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM scan_events se WHERE FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	total, err := repo.Count(context.Background(), query.Filter{}.Never())

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanEventRepo_Find_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewScanEventRepo(db)

	mock.ExpectQuery("FROM scan_events").WillReturnError(errors.New("connection reset"))

	_, err := repo.Find(context.Background(), query.Plan{Sort: query.Sort{Field: domain.FieldCreatedAt}, Limit: 20})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanEventRepo.Find")
}

var fraudCaseCols = []string{"id", "scan_event_id", "status", "assigned_to_user_id", "notes", "created_at", "updated_at"}

func TestFraudCaseRepo_GetByID_JoinsEventTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	id := uuid.New()
	tenantID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN scan_events se ON se.id = fc.scan_event_id WHERE se.tenant_id = $1 AND fc.id = $2")).
		WithArgs(tenantID, id).
		WillReturnRows(sqlmock.NewRows(fraudCaseCols).AddRow(id.String(), uuid.New().String(), "OPEN", nil, "", now, now))

	fc, err := repo.GetByID(context.Background(), id, query.Filter{}.Where(domain.FieldTenantID, tenantID))

	require.NoError(t, err)
	assert.Equal(t, domain.CaseOpen, fc.Status)
	assert.Nil(t, fc.AssignedToUserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudCaseRepo_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	mock.ExpectExec("UPDATE fraud_cases SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.FraudCase{ID: uuid.New(), Status: domain.CaseClosed})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFraudCaseRepo_Update_ClearsAssignee(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	fc := &domain.FraudCase{ID: uuid.New(), Status: domain.CaseInReview, Notes: "n"}
	mock.ExpectExec("UPDATE fraud_cases SET").
		WithArgs("IN_REVIEW", nil, "n", sqlmock.AnyArg(), fc.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), fc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudCaseRepo_Create_UnknownAssignee(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	assignee := uuid.New()
	mock.ExpectExec("INSERT INTO fraud_cases").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fraud_cases_assigned_to_user_id_fkey"})

	err := repo.Create(context.Background(), &domain.FraudCase{ScanEventID: uuid.New(), Status: domain.CaseOpen, AssignedToUserID: &assignee})

	assertUnknownAssignee(t, err)
}

func TestFraudCaseRepo_Update_UnknownAssignee(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	assignee := uuid.New()
	mock.ExpectExec("UPDATE fraud_cases SET").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Update(context.Background(), &domain.FraudCase{ID: uuid.New(), Status: domain.CaseInReview, AssignedToUserID: &assignee})

	assertUnknownAssignee(t, err)
}

func TestFraudCaseRepo_Update_OtherDriverErrorWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFraudCaseRepo(db)

	mock.ExpectExec("UPDATE fraud_cases SET").WillReturnError(&pgconn.PgError{Code: "57014"})

	err := repo.Update(context.Background(), &domain.FraudCase{ID: uuid.New(), Status: domain.CaseInReview})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func assertUnknownAssignee(t *testing.T, err error) {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domain.FieldError{{Field: "assignedToUserId", Message: "unknown user"}}, verr.Fields)
}

func TestTenantRepo_Create_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewTenantRepo(db)

	mock.ExpectExec("INSERT INTO tenants").
		WillReturnError(errors.New(`duplicate key value violates unique constraint "tenants_name_key"`))

	err := repo.Create(context.Background(), &domain.Tenant{Name: "Uni", Status: domain.TenantStatusActive})

	assert.ErrorIs(t, err, domain.ErrDuplicateTenantName)
}

func TestTenantRepo_Find_SelfScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewTenantRepo(db)

	own := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tenants t WHERE t.id = $1")).
		WithArgs(own).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tenants t WHERE t.id = $1 ORDER BY t.name ASC LIMIT $2 OFFSET $3")).
		WithArgs(own, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country", "status", "created_at"}).
			AddRow(own.String(), "Uni", "MA", "ACTIVE", now))

	tenants, total, err := repo.Find(context.Background(), query.Filter{}.Where(domain.FieldID, own), 0, 20)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, tenants, 1)
	assert.Equal(t, own, tenants[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_Normalizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewUserRepo(db)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("admin@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "  Admin@Example.com ")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepo_Totals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAnalyticsRepo(db)

	tenantID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM scan_events se WHERE se.tenant_id = $1")).
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"total", "authentic", "suspicious", "forged", "avg_confidence", "avg_risk_score"}).
			AddRow(10, 9, 0, 1, 0.8, 12.5))

	totals, err := repo.Totals(context.Background(), query.Filter{}.Where(domain.FieldTenantID, tenantID))

	require.NoError(t, err)
	assert.Equal(t, 10, totals.Total)
	assert.Equal(t, 1, totals.Forged)
	assert.InDelta(t, 12.5, totals.AvgRiskScore, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepo_TopDocumentKinds_UnresolvedShareOneRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAnalyticsRepo(db)

	kindID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY dk.id, dk.name")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"document_kind_id", "name", "count"}).
			AddRow(kindID.String(), "Diploma", 7).
			AddRow(nil, nil, 4))

	rows, err := repo.TopDocumentKinds(context.Background(), query.Filter{}, 10)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].DocumentKindID)
	assert.Equal(t, kindID, *rows[0].DocumentKindID)
	assert.Nil(t, rows[1].DocumentKindID)
	assert.Nil(t, rows[1].Name)
	assert.Equal(t, 4, rows[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepo_TopReasons_DistinctPerEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAnalyticsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT jsonb_array_elements_text(se.reasons)")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"reason", "count"}).AddRow("blur", 3).AddRow("font", 1))

	rows, err := repo.TopReasons(context.Background(), query.Filter{}, 10)

	require.NoError(t, err)
	assert.Equal(t, []domain.ReasonCount{{Reason: "blur", Count: 3}, {Reason: "font", Count: 1}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepo_TimeBuckets_Week(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAnalyticsRepo(db)

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("date_trunc('week', se.created_at AT TIME ZONE 'UTC') AS bucket")).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "authentic", "suspicious", "forged", "total"}).
			AddRow(monday, 2, 1, 0, 3))

	rows, err := repo.TimeBuckets(context.Background(), query.Filter{}, domain.GranularityWeek)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, monday, rows[0].Start)
	assert.Equal(t, 3, rows[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepo_GeoCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewAnalyticsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY se.geo_country, se.geo_city")).
		WillReturnRows(sqlmock.NewRows([]string{"geo_country", "geo_city", "count"}).
			AddRow("MA", nil, 4))

	rows, err := repo.GeoCounts(context.Background(), query.Filter{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MA", *rows[0].Country)
	assert.Nil(t, rows[0].City)
}
