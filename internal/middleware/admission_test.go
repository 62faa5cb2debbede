package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"authentiqa/internal/admission"
	"authentiqa/internal/middleware"
)

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Time, time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("redis: connection refused")
}

func admissionRouter(limiter *admission.Limiter) *gin.Engine {
	r := gin.New()
	r.POST("/scan-events", middleware.Admission(limiter, nil, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func postFrom(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/scan-events", http.NoBody)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w
}

func TestAdmission_HeadersAndRejection(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter := admission.NewLimiter(admission.NewMemoryStore(), 2, time.Minute,
		admission.WithClock(func() time.Time { return now }))
	r := admissionRouter(limiter)

	w := postFrom(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = postFrom(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = postFrom(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")

	w = postFrom(r, "10.0.0.2:1234")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdmission_StoreErrorFailsOpen(t *testing.T) {
	limiter := admission.NewLimiter(failingStore{}, 1, time.Minute)
	r := admissionRouter(limiter)

	for i := 0; i < 3; i++ {
		w := postFrom(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}
