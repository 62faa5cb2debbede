package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/domain"
	"authentiqa/internal/service"
	"authentiqa/mocks"
)

func newDocumentKindService() (service.DocumentKindService, *mocks.MockDocumentKindRepo, *mocks.MockTenantRepo) {
	repo := new(mocks.MockDocumentKindRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	return service.NewDocumentKindService(repo, tenantRepo), repo, tenantRepo
}

func TestDocumentKindService_ListByTenant_AnalystOwnTenant(t *testing.T) {
	svc, repo, _ := newDocumentKindService()

	tenantID := uuid.New()
	repo.On("ListByTenant", mock.Anything, tenantID).Return(nil, nil)

	kinds, err := svc.ListByTenant(context.Background(), domain.Analyst{ID: uuid.New(), TenantID: &tenantID}, tenantID)

	require.NoError(t, err)
	assert.NotNil(t, kinds)
	assert.Empty(t, kinds)
}

func TestDocumentKindService_ListByTenant_OtherTenantForbidden(t *testing.T) {
	svc, repo, _ := newDocumentKindService()

	own := uuid.New()
	other := uuid.New()

	_, err := svc.ListByTenant(context.Background(), domain.TenantAdmin{ID: uuid.New(), TenantID: &own}, other)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "ListByTenant", mock.Anything, mock.Anything)
}

func TestDocumentKindService_Create_AnalystForbidden(t *testing.T) {
	svc, repo, _ := newDocumentKindService()

	tenantID := uuid.New()
	_, err := svc.Create(context.Background(), domain.Analyst{ID: uuid.New(), TenantID: &tenantID}, tenantID,
		service.CreateDocumentKindInput{Name: domain.DocumentKindDiploma})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentKindService_Create_SuperAdmin(t *testing.T) {
	svc, repo, tenantRepo := newDocumentKindService()

	tenantID := uuid.New()
	tenantRepo.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *domain.DocumentKind) bool {
		return k.TenantID == tenantID && k.Status == domain.DocumentKindActive && k.Version == "2024"
	})).Return(nil)

	kind, err := svc.Create(context.Background(), domain.SuperAdmin{ID: uuid.New()}, tenantID,
		service.CreateDocumentKindInput{Name: domain.DocumentKindTranscript, Version: " 2024 "})

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentKindTranscript, kind.Name)
	repo.AssertExpectations(t)
}

func TestDocumentKindService_Create_InvalidName(t *testing.T) {
	svc, _, _ := newDocumentKindService()

	_, err := svc.Create(context.Background(), domain.SuperAdmin{ID: uuid.New()}, uuid.New(),
		service.CreateDocumentKindInput{Name: "Passport"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDocumentKindService_Create_TenantMissing(t *testing.T) {
	svc, repo, tenantRepo := newDocumentKindService()

	tenantID := uuid.New()
	tenantRepo.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), domain.SuperAdmin{ID: uuid.New()}, tenantID,
		service.CreateDocumentKindInput{Name: domain.DocumentKindDiploma})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDocumentKindService_SetStatus_CrossTenantForbidden(t *testing.T) {
	svc, repo, _ := newDocumentKindService()

	own := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.DocumentKind{ID: id, TenantID: uuid.New()}, nil)

	_, err := svc.SetStatus(context.Background(), domain.TenantAdmin{ID: uuid.New(), TenantID: &own}, id, domain.DocumentKindDisabled)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDocumentKindService_Update_OwnTenant(t *testing.T) {
	svc, repo, _ := newDocumentKindService()

	tenantID := uuid.New()
	id := uuid.New()
	existing := &domain.DocumentKind{ID: id, TenantID: tenantID, Name: domain.DocumentKindDiploma, Version: "1", Status: domain.DocumentKindActive}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	version := "2"
	kind, err := svc.Update(context.Background(), domain.TenantAdmin{ID: uuid.New(), TenantID: &tenantID}, id,
		service.UpdateDocumentKindInput{Version: &version})

	require.NoError(t, err)
	assert.Equal(t, "2", kind.Version)
	assert.Equal(t, domain.DocumentKindDiploma, kind.Name)
}
