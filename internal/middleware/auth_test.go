package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/util"
	"eduforum_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "user@test.local", Role: role}
	user.ID = 7
	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)
	return token
}

func newRouter(cfg *config.Config, handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	router.GET("/probe", chain...)
	return router
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, AuthMiddleware(cfg))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Student))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, AuthMiddleware(cfg))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, AuthMiddleware(cfg))

	user := &model.User{Email: "user@test.local", Role: model.Student}
	user.ID = 7
	forged, err := util.GenerateJWT(user, "other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTryAuthMiddlewareAllowsGuests(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, TryAuthMiddleware(cfg))

	// 游客放行
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":0`)

	// 带坏令牌也放行，但不带身份
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":0`)

	// 有效令牌带上身份
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Student))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}

func TestRoleMiddlewareEnforcesRole(t *testing.T) {
	cfg := testConfig()
	router := newRouter(cfg, AuthMiddleware(cfg), RoleMiddleware(model.Teacher))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Student))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, model.Teacher))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
