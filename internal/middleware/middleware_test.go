package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *auth.TokenManager, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("middleware-secret", time.Hour)
	r := newProtectedRouter(tokens, func(c *gin.Context) { c.Next() })

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.GenerateToken("usr000001", auth.RoleFamily)
		require.NoError(t, err)

		w := doGet(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"usr000001","role":"FAMILY"}`, w.Body.String())
	})
}

func TestRequirePermission(t *testing.T) {
	tokens := auth.NewTokenManager("middleware-secret", time.Hour)
	r := newProtectedRouter(tokens, RequirePermission(auth.PermDashboardRead))

	admin, err := tokens.GenerateToken("adm000001", auth.RoleAdmin)
	require.NoError(t, err)
	volunteer, err := tokens.GenerateToken("vol000001", auth.RoleVolunteer)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/protected", admin).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/protected", volunteer).Code)
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenManager("middleware-secret", time.Hour)
	r := newProtectedRouter(tokens, RequireRoles(auth.RoleFamily, auth.RoleAdmin))

	family, err := tokens.GenerateToken("fam000001", auth.RoleFamily)
	require.NoError(t, err)
	volunteer, err := tokens.GenerateToken("vol000001", auth.RoleVolunteer)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/protected", family).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/protected", volunteer).Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(r, "/ping", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestDBMiddleware_PrefersContextTransaction(t *testing.T) {
	pool := &gorm.DB{}
	tx := &gorm.DB{}

	var seen *gorm.DB
	r := gin.New()
	r.Use(DBMiddleware(pool))
	r.GET("/db", func(c *gin.Context) {
		seen = c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
		c.Status(http.StatusOK)
	})

	doGet(r, "/db", "")
	assert.Same(t, pool, seen)

	req := httptest.NewRequest(http.MethodGet, "/db", nil)
	req = req.WithContext(contextWithDB(req, tx))
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Same(t, tx, seen)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func contextWithDB(req *http.Request, db *gorm.DB) context.Context {
	return context.WithValue(req.Context(), contextkeys.DBContextKey, db)
}
