package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"slugpress/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, IssueSession(c, user))
	res := w.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestIssueAndParseSession(t *testing.T) {
	user := &models.User{Model: gorm.Model{ID: 7}, Username: "alice", Role: models.RoleUser}
	ck := sessionCookie(t, user)

	assert.Equal(t, 0, ck.MaxAge, "session cookie lives for the browser session")
	assert.True(t, ck.HttpOnly)

	claims, err := ParseSessionToken(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	user := &models.User{Model: gorm.Model{ID: 7}, Username: "alice", Role: models.RoleUser}
	ck := sessionCookie(t, user)

	_, err := ParseSessionToken(ck.Value + "tamper")
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := &models.User{Model: gorm.Model{ID: 3}, Username: "alice", Role: models.RoleUser}

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CurrentUser())
		r.GET("/whoami", func(c *gin.Context) {
			if id, ok := IdentityFrom(c); ok {
				c.String(http.StatusOK, id.Username)
				return
			}
			c.String(http.StatusOK, "anonymous")
		})
		return r
	}

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("valid cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(sessionCookie(t, user))
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("tampered cookie is treated as anonymous", func(t *testing.T) {
		ck := sessionCookie(t, user)
		ck.Value += "tamper"
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(ck)
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, "anonymous", w.Body.String())
	})
}

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CurrentUser())
	r.GET("/protected", RequireUser(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/user/login", w.Header().Get("Location"))
	})

	t.Run("authenticated passes", func(t *testing.T) {
		user := &models.User{Model: gorm.Model{ID: 3}, Username: "alice", Role: models.RoleUser}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(sessionCookie(t, user))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CurrentUser())
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	t.Run("anonymous is redirected to admin login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	})

	t.Run("plain user is redirected", func(t *testing.T) {
		user := &models.User{Model: gorm.Model{ID: 3}, Username: "alice", Role: models.RoleUser}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(sessionCookie(t, user))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		admin := &models.User{Model: gorm.Model{ID: 1}, Username: "admin", Role: models.RoleAdmin}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(sessionCookie(t, admin))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
