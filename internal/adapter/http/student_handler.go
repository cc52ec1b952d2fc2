package http

import (
	"net/http"

	"admission-backend/internal/adapter/middleware"
	"admission-backend/internal/usecase/payment"
	"admission-backend/internal/usecase/student"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StudentHandler struct {
	base
	uc       *student.Usecase
	payments *payment.Usecase
}

func NewStudentHandler(uc *student.Usecase, payments *payment.Usecase, log *zap.Logger) *StudentHandler {
	return &StudentHandler{base: newBase(log), uc: uc, payments: payments}
}

func (h *StudentHandler) CreateProfile(c echo.Context) error {
	var req student.ProfileInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	p, err := h.uc.CreateProfile(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *StudentHandler) GetProfile(c echo.Context) error {
	v, err := h.uc.GetProfile(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	var req student.ProfileInput
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	p, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// UploadDocument takes multipart fields "type" and "file".
func (h *StudentHandler) UploadDocument(c echo.Context) error {
	in, closer, err := formFile(c, "file")
	if err != nil {
		return h.fail(c, err)
	}
	defer closer.Close()
	in.Type = c.FormValue("type")

	d, err := h.uc.UploadDocument(c.Request().Context(), middleware.CallerFrom(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Document uploaded successfully", "document": d})
}

func (h *StudentHandler) Submit(c echo.Context) error {
	if _, err := h.uc.SubmitApplication(c.Request().Context(), middleware.CallerFrom(c)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application submitted successfully"})
}

func (h *StudentHandler) GetPayment(c echo.Context) error {
	dto, err := h.payments.GetPayment(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StudentHandler) GeneratePaymentLink(c echo.Context) error {
	dto, err := h.payments.GeneratePaymentLink(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StudentHandler) ConfirmPayment(c echo.Context) error {
	dto, err := h.payments.ConfirmPayment(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// SubmitReceipt takes multipart fields "file", "transactionId" and "amount".
func (h *StudentHandler) SubmitReceipt(c echo.Context) error {
	in, closer, err := formFile(c, "file")
	if err != nil {
		return h.fail(c, err)
	}
	defer closer.Close()

	d, err := h.payments.SubmitReceipt(c.Request().Context(), middleware.CallerFrom(c), payment.ReceiptInput{
		File:          in,
		TransactionID: c.FormValue("transactionId"),
		Amount:        c.FormValue("amount"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Receipt submitted successfully", "document": d})
}
