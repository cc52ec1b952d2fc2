package document

import (
	"sort"
	"time"

	"admission-backend/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const TypeFeeReceipt = "INSTITUTE_FEE_RECEIPT"

// RequiredTypes must each have at least one upload before the student
// portal considers the document step complete.
var RequiredTypes = []string{
	"PASSPORT_PHOTO",
	"PROVISIONAL_ADMISSION_LETTER",
	"AADHAR_CARD",
	"X_MARKSHEET",
	"XII_MARKSHEET",
}

// Table: documents. A re-upload inserts a new PENDING row; older rows of the
// same type are left untouched.
type Document struct {
	ID            string     `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	ProfileID     string     `gorm:"column:profile_id;type:char(32);not null;index:idx_documents_profile_type" json:"studentId"`
	Type          string     `gorm:"column:type;size:64;not null;index:idx_documents_profile_type" json:"type"`
	Status        Status     `gorm:"column:status;type:varchar(16);not null;default:'PENDING'" json:"status"`
	Remark        *string    `gorm:"column:remark;type:text" json:"remark"`
	TransactionID *string    `gorm:"column:transaction_id;size:128" json:"transactionId"`
	Amount        *float64   `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	VerifiedByID  *string    `gorm:"column:verified_by_id;type:char(32)" json:"verifiedById"`
	VerifiedBy    *user.User `gorm:"foreignKey:VerifiedByID;references:ID" json:"verifiedBy,omitempty"`
	FileURL       string     `gorm:"column:file_url;type:text;not null" json:"fileUrl"`
	UploadedAt    time.Time  `gorm:"column:uploaded_at;not null" json:"uploadedAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Document) TableName() string { return "documents" }

// LatestByType projects docs to the most recent upload of each type (max
// UploadedAt; on a tie the later element wins). Result is ordered by type.
func LatestByType(docs []Document) []Document {
	byType := make(map[string]Document, len(docs))
	for _, d := range docs {
		if d.Type == "" {
			continue
		}
		prev, ok := byType[d.Type]
		if !ok || !d.UploadedAt.Before(prev.UploadedAt) {
			byType[d.Type] = d
		}
	}
	out := make([]Document, 0, len(byType))
	for _, d := range byType {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// MissingTypes returns the entries of required with no upload in docs.
func MissingTypes(docs []Document, required []string) []string {
	have := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		have[d.Type] = struct{}{}
	}
	missing := []string{}
	for _, t := range required {
		if _, ok := have[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
