package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/P0n40/Shiftdailyreportapp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.JWTAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("user_name")})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	secret := []byte("test-secret")
	r := newProtectedRouter(secret)

	token, err := middleware.NewToken(secret, "admin", "Administrator", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)

	// missing and malformed tokens are rejected
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a token signed with another secret fails
	other, err := middleware.NewToken([]byte("other"), "admin", "Administrator", "admin")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
