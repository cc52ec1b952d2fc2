package http

import (
	"net/http"
	"strings"

	"admission-backend/internal/adapter/middleware"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/usecase/verification"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VerifierHandler struct {
	base
	uc *verification.Usecase
}

func NewVerifierHandler(uc *verification.Usecase, log *zap.Logger) *VerifierHandler {
	return &VerifierHandler{base: newBase(log), uc: uc}
}

type finalDecisionReq struct {
	Decision string `json:"decision"`
}

type approveAllReq struct {
	Remark *string `json:"remark"`
}

type approveSelectedReq struct {
	DocumentIDs []string `json:"documentIds" validate:"dive,hex32"`
	Remark      *string  `json:"remark"`
}

// ListStudents accepts an optional ?status= filter.
func (h *VerifierHandler) ListStudents(c echo.Context) error {
	list, err := h.uc.ListProfiles(c.Request().Context(), middleware.CallerFrom(c), c.QueryParam("status"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *VerifierHandler) GetStudent(c echo.Context) error {
	v, err := h.uc.GetProfile(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VerifierHandler) VerifyDocument(c echo.Context) error {
	var req verification.VerifyInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	d, err := h.uc.SetDocumentStatus(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *VerifierHandler) FinalDecision(c echo.Context) error {
	var req finalDecisionReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	decision := profile.Decision(strings.ToUpper(strings.TrimSpace(req.Decision)))
	p, err := h.uc.SetFinalDecision(c.Request().Context(), middleware.CallerFrom(c), c.Param("studentId"), decision)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *VerifierHandler) ApproveAll(c echo.Context) error {
	var req approveAllReq // body is optional
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	res, err := h.uc.ApproveDocuments(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), verification.BulkInput{
		All:    true,
		Remark: req.Remark,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Documents approved", "count": res.Count, "documents": res.Documents})
}

func (h *VerifierHandler) ApproveSelected(c echo.Context) error {
	var req approveSelectedReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	res, err := h.uc.ApproveDocuments(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), verification.BulkInput{
		DocumentIDs: req.DocumentIDs,
		Remark:      req.Remark,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Selected documents approved", "count": res.Count, "documents": res.Documents})
}
