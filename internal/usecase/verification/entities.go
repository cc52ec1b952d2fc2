package verification

import (
	"admission-backend/internal/domain/document"
)

type VerifyInput struct {
	Status document.Status `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
	Remark *string         `json:"remark"`
}

// BulkInput selects either every document of the profile (All) or the listed
// ids.
type BulkInput struct {
	All         bool
	DocumentIDs []string
	Remark      *string
}

type BulkResult struct {
	Count     int                 `json:"count"`
	Documents []document.Document `json:"documents"`
}
