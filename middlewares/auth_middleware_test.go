package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	auth := r.Group("/", RequireLogin())
	auth.GET("/dashboard/", func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"uid": uid, "username": username})
	})

	admin := r.Group("/", RequireLogin(), RequireAdmin())
	admin.GET("/admin_dashboard/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	r := newAuthRouter()

	w := get(r, "/dashboard/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login/?next="))
	assert.Contains(t, w.Header().Get("Location"), "%2Fdashboard%2F")
}

func TestRequireLoginRejectsBadToken(t *testing.T) {
	r := newAuthRouter()

	w := get(r, "/dashboard/", "bogus")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login/"))
}

func TestRequireLoginPassesValidToken(t *testing.T) {
	r := newAuthRouter()

	token, err := utils.GenerateToken(7, "alice", false, time.Hour)
	require.NoError(t, err)

	w := get(r, "/dashboard/", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":7`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	r := newAuthRouter()

	token, err := utils.GenerateToken(7, "alice", false, time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin_dashboard/", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	r := newAuthRouter()

	token, err := utils.GenerateToken(1, "admin", true, time.Hour)
	require.NoError(t, err)

	w := get(r, "/admin_dashboard/", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
