package payment

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/audit"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/profile"
	"admission-backend/internal/domain/uow"
	"admission-backend/internal/domain/user"
	"admission-backend/internal/usecase/notify"
	"admission-backend/internal/usecase/student"

	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	msgNoProfile = "Student profile not found"
)

type StatusDTO struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentLink   string `json:"payment_link,omitempty"`
	Message       string `json:"message,omitempty"`
}

func statusOf(completed bool) StatusDTO {
	s := StatusPending
	if completed {
		s = StatusCompleted
	}
	return StatusDTO{Status: s, PaymentStatus: s}
}

type ReceiptInput struct {
	File          student.UploadInput
	TransactionID string
	Amount        string
}

// Usecase is the placeholder fee flow: there is no gateway, confirmation is
// taken at the caller's word.
type Usecase struct {
	profiles profile.Repository
	uow      uow.UnitOfWork
	uploads  *student.Usecase
	notify   *notify.Notifier
	linkBase string
}

func NewUsecase(profiles profile.Repository, tx uow.UnitOfWork, uploads *student.Usecase, n *notify.Notifier, linkBase string) *Usecase {
	return &Usecase{profiles: profiles, uow: tx, uploads: uploads, notify: n, linkBase: linkBase}
}

func (u *Usecase) ownProfile(ctx context.Context, caller user.Caller) (*profile.Profile, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	p, err := u.profiles.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgNoProfile)
		}
		return nil, err
	}
	return p, nil
}

// GetPayment treats the fee as paid once the application left DRAFT.
func (u *Usecase) GetPayment(ctx context.Context, caller user.Caller) (*StatusDTO, error) {
	p, err := u.ownProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	dto := statusOf(p.Status != profile.StatusDraft)
	return &dto, nil
}

func (u *Usecase) GeneratePaymentLink(ctx context.Context, caller user.Caller) (*StatusDTO, error) {
	p, err := u.ownProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	dto := statusOf(false)
	dto.PaymentLink = u.linkBase + "?studentId=" + url.QueryEscape(p.ID)
	return &dto, nil
}

// ConfirmPayment advances DRAFT to SUBMITTED like a submission does, under
// its own audit tag.
func (u *Usecase) ConfirmPayment(ctx context.Context, caller user.Caller) (*StatusDTO, error) {
	if err := user.RequireRole(caller, user.RoleStudent); err != nil {
		return nil, err
	}
	_, entry, err := student.AdvanceToSubmitted(ctx, u.uow, caller.ID, audit.ActionPaymentConfirmed, msgNoProfile)
	if err != nil {
		return nil, err
	}
	u.notify.Committed(ctx, entry)
	dto := statusOf(true)
	dto.Message = "Payment confirmed successfully"
	return &dto, nil
}

// SubmitReceipt uploads an institute fee receipt with its transaction details.
func (u *Usecase) SubmitReceipt(ctx context.Context, caller user.Caller, in ReceiptInput) (*document.Document, error) {
	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		return nil, apperr.Validation("transactionId is required")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, apperr.Validation("amount must be a positive number")
	}
	file := in.File
	file.Type = document.TypeFeeReceipt
	file.TransactionID = &txID
	file.Amount = &amount
	return u.uploads.UploadDocument(ctx, caller, file)
}
