package auditmock

import (
	"context"
	"sync"

	"admission-backend/internal/domain/audit"
)

var (
	_ audit.Repository = (*Repo)(nil)
	_ audit.Publisher  = (*Publisher)(nil)
)

// Repo is a function-backed mock that satisfies audit.Repository.
// With AppendFn unset it records entries in Entries.
type Repo struct {
	AppendFn func(ctx context.Context, e *audit.Entry) error
	Entries  []audit.Entry
}

func (m *Repo) Append(ctx context.Context, e *audit.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Entries = append(m.Entries, *e)
	return nil
}

// Publisher records published entries and returns Err.
type Publisher struct {
	mu        sync.Mutex
	Err       error
	Published []audit.Entry
}

func (p *Publisher) Publish(_ context.Context, e audit.Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, e)
	return p.Err
}

func (p *Publisher) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Published))
	for i, e := range p.Published {
		out[i] = e.Action
	}
	return out
}
