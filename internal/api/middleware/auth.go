package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

const (
	// PrincipalKey is the echo context key holding the request's domain.Principal.
	PrincipalKey = "principal"
	// AuthCookie carries the session token for browser clients.
	AuthCookie = "auth_token"
)

// SessionChecker reports signed-out sessions.
type SessionChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Auth resolves the caller from a bearer token or the auth cookie and stores
// the principal in the context. It never rejects: missing, invalid or
// signed-out tokens yield the anonymous principal and authorization happens
// downstream. sessions may be nil.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := domain.Anonymous()
			if raw := tokenFromRequest(c); raw != "" {
				if p, ok := parsePrincipal(raw, jwtSecret); ok && active(c.Request().Context(), sessions, p.SessionID) {
					principal = p
				}
			}
			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by Auth, or the anonymous one.
func PrincipalFrom(c echo.Context) domain.Principal {
	if p, ok := c.Get(PrincipalKey).(domain.Principal); ok {
		return p
	}
	return domain.Anonymous()
}

// active fails closed: a denylist lookup error drops the session.
func active(ctx context.Context, sessions SessionChecker, sessionID string) bool {
	if sessions == nil {
		return true
	}
	revoked, err := sessions.IsRevoked(ctx, sessionID)
	return err == nil && !revoked
}

func tokenFromRequest(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func parsePrincipal(raw, jwtSecret string) (domain.Principal, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.Principal{}, false
	}

	sub, _ := claims["sub"].(string)
	sid, _ := claims["sid"].(string)
	if sub == "" || sid == "" {
		return domain.Principal{}, false
	}

	var roles []string
	if list, ok := claims["roles"].([]interface{}); ok {
		for _, r := range list {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	return domain.NewPrincipal(sub, sid, roles...), true
}
