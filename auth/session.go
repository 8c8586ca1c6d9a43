// Package auth manages the browser session. The authenticated identity
// (user id, username, role) travels as HS256-signed JWT claims inside a
// session cookie, so there is no server-side session store. The cookie has no
// explicit max-age: it lives as long as the browser session.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"slugpress/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// CookieName is the session cookie holding the signed identity.
	CookieName = "slugpress_session"
	// identityKey is where CurrentUser stashes the identity in the gin context.
	identityKey = "identity"
)

// signingKey should come from configuration (SLUGPRESS_SESSION_SECRET), never
// from source code. SetSigningKey installs it at startup.
var signingKey = []byte("default-very-insecure-secret-key")

// SetSigningKey allows setting the key from outside the package.
func SetSigningKey(key []byte) {
	if len(key) > 0 {
		signingKey = key
	}
}

// Identity is the tuple established by a successful login.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// SessionClaims are the JWT claims carried by the session cookie.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueSession signs an identity token and sets the session cookie.
func IssueSession(c *gin.Context, user *models.User) error {
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-auth",
			Issuer:  "slugpress",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}
	// MaxAge 0 makes this a browser-session cookie.
	c.SetCookie(CookieName, signed, 0, "/", "", false, true)
	return nil
}

// ClearSession removes the session cookie, dropping id, username and role in
// one step.
func ClearSession(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't handle this token: %w", err)
	}
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// CurrentUser reads the session cookie if present and stores the identity in
// the gin context. A missing or invalid cookie means the request proceeds
// anonymously.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.Next()
			return
		}
		claims, err := ParseSessionToken(tokenString)
		if err != nil {
			// Tampered or stale cookie: treat as logged out.
			ClearSession(c)
			c.Next()
			return
		}
		c.Set(identityKey, Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity, if any.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RequireUser redirects anonymous requests to the user login page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			c.Redirect(http.StatusFound, "/user/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects requests without the admin role to the admin login
// page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok || id.Role != models.RoleAdmin {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
