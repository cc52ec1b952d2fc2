package middleware

import (
	"errors"
	"net/http"
	"strings"

	"admission-backend/internal/domain/user"
	"admission-backend/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg, "category": "unauthorized"})
}

// JWTAuth requires "Authorization: Bearer <token>" and stores the caller on
// the echo context.
func JWTAuth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "missing Authorization header")
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return unauthorized(c, "Authorization header must be a Bearer token")
			}
			claims, err := parser.Parse(strings.TrimSpace(raw))
			if err != nil {
				if errors.Is(err, token.ErrExpiredToken) {
					return unauthorized(c, "token has expired")
				}
				return unauthorized(c, "invalid token")
			}
			c.Set(callerKey, user.Caller{ID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}

// RequireRoles must run after JWTAuth.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := CallerFrom(c)
			if caller.ID == "" {
				return unauthorized(c, "authentication required")
			}
			for _, r := range roles {
				if caller.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{
				"error":    "insufficient role for this action",
				"category": "forbidden",
			})
		}
	}
}

// CallerFrom returns the zero Caller for unauthenticated requests.
func CallerFrom(c echo.Context) user.Caller {
	caller, _ := c.Get(callerKey).(user.Caller)
	return caller
}

// WithCaller is what JWTAuth does after a successful parse. Handler tests use
// it to act as a given user.
func WithCaller(c echo.Context, caller user.Caller) { c.Set(callerKey, caller) }
