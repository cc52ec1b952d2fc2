package document

import "context"

// Verification is the set of columns a verifier action writes.
type Verification struct {
	Status       Status
	Remark       *string
	VerifiedByID string
}

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	CountByProfile(ctx context.Context, profileID string) (int64, error)
	ListByProfile(ctx context.Context, profileID string) ([]Document, error)

	// ListByIDs returns the documents among ids that belong to profileID.
	ListByIDs(ctx context.Context, profileID string, ids []string) ([]Document, error)

	// UpdateVerification writes status/remark/verifier for each of ids. A
	// nil Remark leaves the stored remark unchanged.
	UpdateVerification(ctx context.Context, ids []string, v Verification) error
}
