package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user's id.
const ContextUserID = "userID"

// LoginPath is where unauthenticated requests to protected routes are sent.
const LoginPath = "/login"

// RequireAuth rejects requests without a valid bearer token by redirecting
// to the login entry point. Anonymous access to a write-requiring action is
// never an error page, always a redirect.
func RequireAuth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseToken(c, jwtKey)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth records the requester's identity when a valid token is
// present and stays silent otherwise. Read paths use it for per-requester
// presentation such as the profile following flag.
func OptionalAuth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseToken(c, jwtKey); ok {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated requester's id, zero when anonymous.
func UserID(c *gin.Context) uint {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func parseToken(c *gin.Context, jwtKey []byte) (uint, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
