package http

import (
	"errors"
	"net/http"

	"admission-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func statusOf(kind error) int {
	switch kind {
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrValidation:
		return http.StatusUnprocessableEntity
	case apperr.ErrForbidden:
		return http.StatusForbidden
	case apperr.ErrConflict:
		return http.StatusConflict
	case apperr.ErrUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// base carries what every handler needs to render failures.
type base struct{ log *zap.Logger }

func newBase(log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{log: log}
}

// fail renders a usecase error. Unexpected errors are logged and hidden.
func (b base) fail(c echo.Context, err error) error {
	kind := apperr.Kind(err)
	if kind == apperr.ErrUnexpected {
		b.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Category: kind.Error()})
	}
	return c.JSON(statusOf(kind), ErrorResponse{Error: err.Error(), Category: kind.Error()})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Category: apperr.ErrValidation.Error()})
}

func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:    "validation failed",
		Category: apperr.ErrValidation.Error(),
		Details:  ToFieldErrors(err),
	})
}

// ErrorHandler renders errors that escape handlers (unknown routes, body
// limits, panics recovered by echo) in the same shape as handler errors.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	b := newBase(log)
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok && s != "" {
				msg = s
			}
			if he.Code >= http.StatusInternalServerError {
				b.log.Error("request failed", zap.String("route", c.Path()), zap.Error(err))
				msg = "internal error"
			}
			_ = c.JSON(he.Code, ErrorResponse{Error: msg, Category: categoryOf(he.Code)})
			return
		}
		_ = b.fail(c, err)
	}
}

func categoryOf(code int) string {
	switch code {
	case http.StatusNotFound:
		return apperr.ErrNotFound.Error()
	case http.StatusUnauthorized:
		return apperr.ErrUnauthorized.Error()
	case http.StatusForbidden:
		return apperr.ErrForbidden.Error()
	case http.StatusConflict:
		return apperr.ErrConflict.Error()
	}
	if code >= http.StatusInternalServerError {
		return apperr.ErrUnexpected.Error()
	}
	return apperr.ErrValidation.Error()
}
