package audit

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
}

// Publisher fans committed entries out to downstream consumers. Publication
// happens after the owning transaction commits and never fails the request.
type Publisher interface {
	Publish(ctx context.Context, e Entry) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Entry) error { return nil }
