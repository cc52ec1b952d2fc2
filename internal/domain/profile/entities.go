package profile

import (
	"time"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/document"
	"admission-backend/internal/domain/user"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// Outcome maps a final decision to the terminal profile status.
func (d Decision) Outcome() (Status, bool) {
	switch d {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionReject:
		return StatusRejected, true
	}
	return "", false
}

// Details are the student-editable personal fields.
type Details struct {
	FullName            string     `gorm:"column:full_name;size:255" json:"fullName"`
	DateOfBirth         *time.Time `gorm:"column:date_of_birth" json:"dateOfBirth"`
	Gender              string     `gorm:"column:gender;size:32" json:"gender"`
	BloodGroup          string     `gorm:"column:blood_group;size:8" json:"bloodGroup"`
	Religion            string     `gorm:"column:religion;size:64" json:"religion"`
	AadhaarNumber       string     `gorm:"column:aadhaar_number;size:32" json:"aadhaarNumber"`
	ContactNumber       string     `gorm:"column:contact_number;size:32" json:"contactNumber"`
	ParentName          string     `gorm:"column:parent_name;size:255" json:"parentName"`
	ParentContactNumber string     `gorm:"column:parent_contact_number;size:32" json:"parentContactNumber"`
	ParentEmail         string     `gorm:"column:parent_email;size:255" json:"parentEmail"`
	PermanentAddress    string     `gorm:"column:permanent_address;type:text" json:"permanentAddress"`
	State               string     `gorm:"column:state;size:64" json:"state"`
	SeatSource          string     `gorm:"column:seat_source;size:64" json:"seatSource"`
	AllottedCategory    string     `gorm:"column:allotted_category;size:64" json:"allottedCategory"`
	AllottedBranch      string     `gorm:"column:allotted_branch;size:128" json:"allottedBranch"`
}

// DetailColumns lists the columns an update of Details may write.
var DetailColumns = []string{
	"full_name", "date_of_birth", "gender", "blood_group", "religion",
	"aadhaar_number", "contact_number", "parent_name", "parent_contact_number",
	"parent_email", "permanent_address", "state", "seat_source",
	"allotted_category", "allotted_branch",
}

// Table: student_profiles (one row per STUDENT user)
type Profile struct {
	ID         string  `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	UserID     string  `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_profiles_user_id" json:"userId"`
	Details    `gorm:"embedded"`
	Status     Status  `gorm:"column:status;type:varchar(16);not null;default:'DRAFT';index" json:"status"`
	VerifierID *string `gorm:"column:verifier_id;type:char(32);index" json:"verifierId"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	User      *user.User          `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Verifier  *user.User          `gorm:"foreignKey:VerifierID;references:ID" json:"verifier,omitempty"`
	Documents []document.Document `gorm:"foreignKey:ProfileID;references:ID" json:"documents,omitempty"`
}

func (Profile) TableName() string { return "student_profiles" }

// AssignedTo reports whether verifierID is the profile's assigned verifier.
func (p *Profile) AssignedTo(verifierID string) bool {
	return p.VerifierID != nil && *p.VerifierID == verifierID
}

// Submit moves a DRAFT profile to SUBMITTED and reports whether it changed
// anything. Profiles past DRAFT are left alone so a repeated submission never
// regresses a decision.
func (p *Profile) Submit(documentCount int64) (bool, error) {
	if documentCount <= 0 {
		return false, apperr.Validation("Upload required documents first")
	}
	if p.Status != StatusDraft {
		return false, nil
	}
	p.Status = StatusSubmitted
	return true, nil
}

// View is a profile enriched with the read-time document projections.
type View struct {
	*Profile
	ActiveDocuments  []document.Document `json:"activeDocuments"`
	MissingDocuments []string            `json:"missingDocuments"`
}

func NewView(p *Profile) *View {
	return &View{
		Profile:          p,
		ActiveDocuments:  document.LatestByType(p.Documents),
		MissingDocuments: document.MissingTypes(p.Documents, document.RequiredTypes),
	}
}
