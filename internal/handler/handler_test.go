package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"authentiqa/internal/domain"
	"authentiqa/internal/handler"
	"authentiqa/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newContext builds a test context for method and target. A non-nil body is
// sent as JSON; a non-nil principal is installed as the caller.
func newContext(method, target string, body interface{}, p domain.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader = http.NoBody
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewReader(raw)
		}
	}
	c.Request, _ = http.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	if p != nil {
		c.Set(middleware.ContextKeyPrincipal, p)
		c.Set(middleware.ContextKeyUserID, p.UserID())
		c.Set(middleware.ContextKeyRole, string(p.Role()))
	}
	return c, w
}

func decode(w *httptest.ResponseRecorder) handler.APIResponse {
	var resp handler.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func ginParam(key, value string) gin.Param {
	return gin.Param{Key: key, Value: value}
}
