package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubquiz-admin/internal/auth"
)

func protectedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", TeamAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"team_id": c.GetInt64(TeamIDKey)})
	})
	return router
}

func TestTeamAuthAcceptsValidToken(t *testing.T) {
	secret := []byte("test-jwt-secret-key-32-characters")
	router := protectedRouter(secret)

	token, err := auth.GenerateToken(7, "quizzers", secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"team_id":7`)
}

func TestTeamAuthRejectsMissingHeader(t *testing.T) {
	router := protectedRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestTeamAuthRejectsWrongScheme(t *testing.T) {
	router := protectedRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTeamAuthRejectsBadToken(t *testing.T) {
	router := protectedRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
