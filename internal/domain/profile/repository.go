package profile

import "context"

// ListFilter narrows List. A nil field means "no constraint".
type ListFilter struct {
	VerifierID *string
	Status     *Status
}

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	// GetDetail loads the profile with user, verifier and documents (and
	// each document's verifier).
	GetDetail(ctx context.Context, id string) (*Profile, error)
	GetDetailByUserID(ctx context.Context, userID string) (*Profile, error)

	List(ctx context.Context, f ListFilter) ([]Profile, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)

	UpdateDetails(ctx context.Context, id string, d Details) error
	UpdateStatus(ctx context.Context, id string, s Status) error
	SetVerifier(ctx context.Context, id, verifierID string) error
}
