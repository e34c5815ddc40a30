package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cart-gateway/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 7,
		"exp":     exp.Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authProbe(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", mw, func(c *gin.Context) {
		c.JSON(200, gin.H{
			"token":   c.GetString("token"),
			"user_id": c.GetString("user_id"),
		})
	})
	return router
}

func TestOptionalAuthWithValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "secret"}
	router := authProbe(OptionalAuthMiddleware())
	token := signToken(t, "secret", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), token)
	assert.Contains(t, w.Body.String(), `"user_id":"7"`)
}

func TestOptionalAuthTreatsBadTokenAsGuest(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "secret"}
	router := authProbe(OptionalAuthMiddleware())

	for _, header := range []string{
		"",
		"Bearer garbage",
		"Bearer " + signToken(t, "wrong-secret", time.Now().Add(time.Hour)),
		"Bearer " + signToken(t, "secret", time.Now().Add(-time.Hour)),
	} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"token":""`)
	}
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "secret"}
	router := authProbe(AuthMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", time.Now().Add(-time.Hour)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "secret"}
	router := authProbe(AuthMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
