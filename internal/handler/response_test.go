package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authentiqa/internal/domain"
	"authentiqa/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewValidationError("name", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("repo.GetByID: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{domain.ErrDuplicateTenantName, http.StatusConflict, "DUPLICATE_TENANT_NAME"},
		{fmt.Errorf("fraud case x: %w", domain.ErrDanglingReference), http.StatusBadRequest, "DANGLING_REFERENCE"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil, nil)

	verr := &domain.ValidationError{}
	verr.Add("minRiskScore", "must be a number")
	verr.Add("dateTo", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
	handler.HandleError(c, verr)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "minRiskScore", resp.Error.Details[0].Field)
}

func TestHandleError_InternalHidesCause(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil, nil)

	handler.HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}
