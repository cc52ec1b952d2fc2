// Package notify runs the side effects of a committed workflow action:
// audit fan-out, transition metrics and the transition log line.
package notify

import (
	"context"

	"admission-backend/internal/domain/audit"
	"admission-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type Notifier struct {
	pub     audit.Publisher
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New accepts nil for any collaborator.
func New(pub audit.Publisher, m *metrics.Metrics, log *zap.Logger) *Notifier {
	if pub == nil {
		pub = audit.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{pub: pub, metrics: m, log: log}
}

// Committed must only be called after the owning transaction committed.
// Failures are logged and never returned.
func (n *Notifier) Committed(ctx context.Context, entries ...*audit.Entry) {
	if n == nil {
		return
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		n.metrics.Transition(audit.Label(e.Action))
		n.log.Info("workflow transition",
			zap.String("action", e.Action),
			zap.String("performed_by", e.PerformedBy),
			zap.String("student_id", e.StudentID),
		)
		if err := n.pub.Publish(context.WithoutCancel(ctx), *e); err != nil {
			n.log.Warn("audit publish failed", zap.String("audit_id", e.ID), zap.Error(err))
		}
	}
}

func (n *Notifier) Logger() *zap.Logger {
	if n == nil {
		return zap.NewNop()
	}
	return n.log
}

func (n *Notifier) Metrics() *metrics.Metrics {
	if n == nil {
		return nil
	}
	return n.metrics
}
