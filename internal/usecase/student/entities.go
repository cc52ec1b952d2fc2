package student

import (
	"context"
	"io"
	"strings"
	"time"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/domain/profile"
)

// FileStore is where uploaded documents land before their row is written.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// ProfileInput carries personal details. Nil fields are left unchanged on
// update and empty on create.
type ProfileInput struct {
	FullName            *string `json:"fullName"`
	DateOfBirth         *string `json:"dateOfBirth"`
	Gender              *string `json:"gender"`
	BloodGroup          *string `json:"bloodGroup"`
	Religion            *string `json:"religion"`
	AadhaarNumber       *string `json:"aadhaarNumber"`
	ContactNumber       *string `json:"contactNumber"`
	ParentName          *string `json:"parentName"`
	ParentContactNumber *string `json:"parentContactNumber"`
	ParentEmail         *string `json:"parentEmail" validate:"omitempty,email"`
	PermanentAddress    *string `json:"permanentAddress"`
	State               *string `json:"state"`
	SeatSource          *string `json:"seatSource"`
	AllottedCategory    *string `json:"allottedCategory"`
	AllottedBranch      *string `json:"allottedBranch"`
}

var errBadDOB = apperr.Validation("Invalid dateOfBirth format. Use YYYY-MM-DD or ISO-8601.")

// ParseDOB accepts YYYY-MM-DD or RFC 3339. Empty means unset.
func ParseDOB(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errBadDOB
}

func (in ProfileInput) applyTo(d *profile.Details) error {
	if in.DateOfBirth != nil {
		dob, err := ParseDOB(*in.DateOfBirth)
		if err != nil {
			return err
		}
		d.DateOfBirth = dob
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&d.FullName, in.FullName)
	set(&d.Gender, in.Gender)
	set(&d.BloodGroup, in.BloodGroup)
	set(&d.Religion, in.Religion)
	set(&d.AadhaarNumber, in.AadhaarNumber)
	set(&d.ContactNumber, in.ContactNumber)
	set(&d.ParentName, in.ParentName)
	set(&d.ParentContactNumber, in.ParentContactNumber)
	set(&d.ParentEmail, in.ParentEmail)
	set(&d.PermanentAddress, in.PermanentAddress)
	set(&d.State, in.State)
	set(&d.SeatSource, in.SeatSource)
	set(&d.AllottedCategory, in.AllottedCategory)
	set(&d.AllottedBranch, in.AllottedBranch)
	return nil
}

// UploadInput is one multipart file plus its declared document type.
type UploadInput struct {
	Type        string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader

	TransactionID *string
	Amount        *float64
}
