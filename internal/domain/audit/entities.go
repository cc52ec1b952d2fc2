package audit

import (
	"strings"
	"time"

	"admission-backend/pkg/id"
)

const (
	ActionApplicationSubmitted = "APPLICATION_SUBMITTED"
	ActionPaymentConfirmed     = "PAYMENT_CONFIRMED"
	ActionAssignedVerifier     = "ASSIGNED_VERIFIER"
	ActionCreatedVerifier      = "CREATED_VERIFIER"
	ActionBulkDocumentApproval = "BULK_DOCUMENT_APPROVAL"
	ActionBulkSelectedApproval = "BULK_SELECTED_DOCUMENT_APPROVAL"
	ActionFinalDecision        = "FINAL_DECISION"
)

func BulkSelectedAction(ids []string) string {
	return ActionBulkSelectedApproval + ":" + strings.Join(ids, ",")
}

func FinalDecisionAction(status string) string {
	return ActionFinalDecision + ":" + status
}

// Label collapses an action to a bounded tag for metrics labels; the
// selected-approval id suffix is dropped.
func Label(action string) string {
	if strings.HasPrefix(action, ActionBulkSelectedApproval) {
		return ActionBulkSelectedApproval
	}
	return action
}

// Table: audit_logs. Append-only.
type Entry struct {
	ID          string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Action      string    `gorm:"column:action;type:text;not null" json:"action"`
	PerformedBy string    `gorm:"column:performed_by;type:char(32);not null;index" json:"performedBy"`
	StudentID   string    `gorm:"column:student_id;type:char(32);not null;index" json:"studentId"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Entry) TableName() string { return "audit_logs" }

func NewEntry(action, performedBy, studentID string) *Entry {
	return &Entry{
		ID:          id.NewID32(),
		Action:      action,
		PerformedBy: performedBy,
		StudentID:   studentID,
		CreatedAt:   time.Now().UTC(),
	}
}
