package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"authentiqa/internal/admission"
	"authentiqa/internal/metrics"
)

// Admission rejects callers that exceed the limiter's window budget with 429.
// Callers are keyed by client address. A store failure lets the request
// through and is logged.
func Admission(limiter *admission.Limiter, m *metrics.Metrics, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ingest:" + c.ClientIP()
		decision, err := limiter.Admit(c.Request.Context(), key)
		if err != nil {
			m.Admission("error")
			log.Warn("admission store unavailable, admitting request",
				zap.String("request_id", c.GetString(ContextKeyRequestID)),
				zap.String("key", key),
				zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			m.Admission("rejected")
			retryAfter := decision.RetryAfter(limiter.Now())
			c.Header("Retry-After", strconv.Itoa(int(retryAfter/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "too many requests, please retry later"},
			})
			return
		}

		m.Admission("allowed")
		c.Next()
	}
}
