package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger writes one access line per request. Static upload downloads
// are skipped.
func RequestLogger(log *zap.Logger, staticPrefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			if staticPrefix != "" && strings.HasPrefix(req.URL.Path, staticPrefix) {
				return nil
			}

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
			}
			if caller := CallerFrom(c); caller.ID != "" {
				fields = append(fields, zap.String("user_id", caller.ID), zap.String("role", string(caller.Role)))
			}
			if c.Response().Status >= 500 {
				log.Error("HTTP Request", fields...)
			} else {
				log.Info("HTTP Request", fields...)
			}
			return nil
		}
	}
}
