package notify

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"admission-backend/internal/domain/audit"
	"admission-backend/internal/infrastructure/metrics"
	"admission-backend/internal/testutil/auditmock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCommitted_PublishesCountsAndLogs(t *testing.T) {
	pub := &auditmock.Publisher{}
	m := metrics.New(prometheus.NewRegistry())
	core, logs := observer.New(zap.InfoLevel)
	n := New(pub, m, zap.New(core))

	n.Committed(context.Background(),
		audit.NewEntry(audit.BulkSelectedAction([]string{"d1"}), "v1", "p1"),
		nil,
		audit.NewEntry(audit.ActionApplicationSubmitted, "s1", "p1"),
	)

	want := []string{"BULK_SELECTED_DOCUMENT_APPROVAL:d1", "APPLICATION_SUBMITTED"}
	if got := pub.Actions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("published = %v, want %v", got, want)
	}
	if got := testutil.ToFloat64(m.Transitions.WithLabelValues("BULK_SELECTED_DOCUMENT_APPROVAL")); got != 1 {
		t.Fatalf("bulk selected counter = %v", got)
	}
	if logs.FilterMessage("workflow transition").Len() != 2 {
		t.Fatalf("expected 2 transition log lines, got %d", logs.Len())
	}
}

func TestCommitted_PublishFailureIsLogged(t *testing.T) {
	pub := &auditmock.Publisher{Err: errors.New("broker down")}
	core, logs := observer.New(zap.WarnLevel)
	n := New(pub, nil, zap.New(core))

	n.Committed(context.Background(), audit.NewEntry(audit.ActionAssignedVerifier, "a", "p"))

	if logs.FilterMessage("audit publish failed").Len() != 1 {
		t.Fatalf("expected a warn line for the failed publish")
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Committed(context.Background(), audit.NewEntry("X", "a", "p"))
	if n.Logger() == nil {
		t.Fatalf("nil notifier must still hand out a logger")
	}
	if n.Metrics() != nil {
		t.Fatalf("nil notifier has no metrics")
	}
}
