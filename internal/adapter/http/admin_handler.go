package http

import (
	"net/http"

	"admission-backend/internal/adapter/middleware"
	"admission-backend/internal/usecase/admin"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AdminHandler struct {
	base
	uc *admin.Usecase
}

func NewAdminHandler(uc *admin.Usecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{base: newBase(log), uc: uc}
}

// ListStudents also serves /assignments; both return every profile with its
// verifier.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	list, err := h.uc.ListStudents(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetStudent(c echo.Context) error {
	v, err := h.uc.GetStudent(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListVerifiers(c echo.Context) error {
	list, err := h.uc.ListVerifiers(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) AssignVerifier(c echo.Context) error {
	var req admin.AssignInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	p, err := h.uc.AssignVerifier(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Verifier assigned successfully", "profile": p})
}

func (h *AdminHandler) CreateVerifier(c echo.Context) error {
	var req admin.CreateVerifierInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	dto, err := h.uc.CreateVerifier(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
