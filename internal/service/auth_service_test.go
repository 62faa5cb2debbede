package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"authentiqa/internal/config"
	"authentiqa/internal/domain"
	"authentiqa/internal/service"
	"authentiqa/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret-key-for-unit-tests",
		AccessTokenExpiry: 15 * time.Minute,
		Issuer:            "authentiqa-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	tenantID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "admin@uni.edu",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTenantAdmin,
		TenantID:     &tenantID,
	}
	userRepo.On("GetByEmail", mock.Anything, "admin@uni.edu").Return(user, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "admin@uni.edu", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	assert.Equal(t, user, result.User)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	user := &domain.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hashPassword("correct"), Role: domain.RoleAnalyst}
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "a@b.com", Password: "wrong"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	userRepo.On("GetByEmail", mock.Anything, "nobody@b.com").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@b.com", Password: "x"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_LastLoginFailureIgnored(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	user := &domain.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hashPassword("pw"), Role: domain.RoleSuperAdmin}
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(user, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(errors.New("db down"))

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	tenantID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "analyst@uni.edu",
		PasswordHash: hashPassword("pw"),
		Role:         domain.RoleAnalyst,
		TenantID:     &tenantID,
	}
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.Role)

	require.NotNil(t, claims.TenantID)
	assert.Equal(t, tenantID, *claims.TenantID)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	issuer := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	user := &domain.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hashPassword("pw"), Role: domain.RoleSuperAdmin}
	userRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(user, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(nil)

	result, err := issuer.Login(context.Background(), service.LoginInput{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret"
	verifier := service.NewAuthService(userRepo, other, zap.NewNop())

	_, err = verifier.ValidateToken(result.AccessToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig(), zap.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_Me_DeletedUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig(), zap.NewNop())

	id := uuid.New()
	userRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	user, err := svc.Me(context.Background(), id)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
