package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
	"authentiqa/internal/service"
	"authentiqa/mocks"
)

func TestTenantService_Create_DefaultsToActive(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tn *domain.Tenant) bool {
		return tn.Name == "Cairo University" && tn.Status == domain.TenantStatusActive
	})).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{Name: "  Cairo University ", Country: "EG"})

	require.NoError(t, err)
	assert.Equal(t, "Cairo University", tenant.Name)
	assert.Equal(t, domain.TenantStatusActive, tenant.Status)
	repo.AssertExpectations(t)
}

func TestTenantService_Create_ValidationCollectsAllFields(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{Name: " ", Status: "ARCHIVED"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, verr.Fields, 2)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTenantService_Create_DuplicateName(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateTenantName)

	_, err := svc.Create(context.Background(), service.CreateTenantInput{Name: "Dup"})

	assert.ErrorIs(t, err, domain.ErrDuplicateTenantName)
}

func TestTenantService_List_TenantAdminSeesOwnTenant(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	p := domain.TenantAdmin{ID: uuid.New(), TenantID: &tenantID}
	want := query.Filter{}.Where(domain.FieldID, tenantID)

	repo.On("Find", mock.Anything, want, 0, 20).Return([]domain.Tenant{{ID: tenantID, Name: "Mine"}}, 1, nil)

	page, err := svc.List(context.Background(), p, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}

func TestTenantService_List_AnalystGetsEmptyPage(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	tenantID := uuid.New()
	p := domain.Analyst{ID: uuid.New(), TenantID: &tenantID}

	repo.On("Find", mock.Anything, mock.MatchedBy(func(f query.Filter) bool { return f.IsNever() }), 20, 20).
		Return(nil, 0, nil)

	page, err := svc.List(context.Background(), p, 2, 20)

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
}

func TestTenantService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	id := uuid.New()
	existing := &domain.Tenant{ID: id, Name: "Old", Country: "EG", Status: domain.TenantStatusActive}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	country := "MA"
	tenant, err := svc.Update(context.Background(), id, service.UpdateTenantInput{Country: &country})

	require.NoError(t, err)
	assert.Equal(t, "Old", tenant.Name)
	assert.Equal(t, "MA", tenant.Country)
}

func TestTenantService_SetStatus_Invalid(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	_, err := svc.SetStatus(context.Background(), uuid.New(), "BOGUS")

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTenantService_SetStatus_NotFound(t *testing.T) {
	repo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(repo)

	id := uuid.New()
	repo.On("SetStatus", mock.Anything, id, domain.TenantStatusDisabled).Return(domain.ErrNotFound)

	_, err := svc.SetStatus(context.Background(), id, domain.TenantStatusDisabled)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
