package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/guarded", AdminKey(apiKey), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAdminKeyRejectsMissingKey(t *testing.T) {
	r := adminRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAdminKeyAcceptsHeaderKey(t *testing.T) {
	r := adminRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	req.Header.Set("X-API-Key", "secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminKeyAcceptsBearerToken(t *testing.T) {
	r := adminRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminKeySkippedWhenUnconfigured(t *testing.T) {
	r := adminRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed([]string{"*"}, "https://anywhere.test"))
	assert.True(t, originAllowed([]string{"https://app.test"}, "https://app.test"))
	assert.False(t, originAllowed([]string{"https://app.test"}, "https://evil.test"))
	assert.False(t, originAllowed(nil, "https://app.test"))
}
