package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techcare/internal/config"
	"techcare/internal/services"
	"techcare/internal/utils"
	"techcare/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)

	security := &config.SecurityConfig{JWTSecret: "test-secret"}
	h := NewAuthHandler(services.NewAuthService(security, log), security)

	r := gin.New()
	r.GET("/login", h.Login)
	r.GET("/logout", h.Logout)
	return r
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLogin_SetsTokenCookie(t *testing.T) {
	r := authRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login?email=user@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])

	cookie := findCookie(t, w.Result(), utils.AccessTokenCookie)
	require.NotNil(t, cookie, "login must set the access token cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)

	claims, err := utils.ValidateToken(cookie.Value, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestLogin_RequiresValidEmail(t *testing.T) {
	r := authRouter(t)

	for _, query := range []string{"", "?email=not-an-email"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login"+query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLogout_ClearsTokenCookie(t *testing.T) {
	r := authRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := findCookie(t, w.Result(), utils.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
