package auth

import (
	"net/http"
	"strings"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "auth.claims"

	msgAuthRequired     = "Authentication required"
	msgInvalidToken     = "Invalid or expired token"
	msgPermissionDenied = "Insufficient permissions"
)

// Authenticator reads tokens from the auth cookie or a Bearer header.
type Authenticator struct {
	tokens     *TokenIssuer
	cookieName string
}

func NewAuthenticator(tokens *TokenIssuer, cookieName string) *Authenticator {
	return &Authenticator{tokens: tokens, cookieName: cookieName}
}

func (a *Authenticator) tokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(a.cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// Authenticate rejects the request with 401 unless it carries a valid token.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := a.tokenFrom(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, httperr.ErrorResponse{Error: msgAuthRequired})
			return
		}

		claims, err := a.tokens.Parse(token)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, httperr.ErrorResponse{Error: msgInvalidToken})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and never rejects.
// The security guard uses it to pick the caller's rate limit.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := a.tokenFrom(c); token != "" {
			if claims, err := a.tokens.Parse(token); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRole answers 403 unless the authenticated caller has one of roles.
// Mount it after Authenticate.
func RequireRole(roles ...v1.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, httperr.ErrorResponse{Error: msgAuthRequired})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		httperr.Abort(c, http.StatusForbidden, httperr.ErrorResponse{Error: msgPermissionDenied})
	}
}

// CurrentClaims returns the claims attached by Authenticate or OptionalAuth.
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// RoleOf returns the caller's role, or RoleGuest for anonymous requests.
func RoleOf(c *gin.Context) v1.Role {
	if claims, ok := CurrentClaims(c); ok && claims.Role != "" {
		return claims.Role
	}
	return v1.RoleGuest
}
