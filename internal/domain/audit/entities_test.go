package audit

import "testing"

func TestBulkSelectedAction(t *testing.T) {
	if got := BulkSelectedAction([]string{"d1", "d2"}); got != "BULK_SELECTED_DOCUMENT_APPROVAL:d1,d2" {
		t.Fatalf("got %q", got)
	}
	if got := BulkSelectedAction(nil); got != "BULK_SELECTED_DOCUMENT_APPROVAL:" {
		t.Fatalf("got %q", got)
	}
}

func TestFinalDecisionAction(t *testing.T) {
	if got := FinalDecisionAction("REJECTED"); got != "FINAL_DECISION:REJECTED" {
		t.Fatalf("got %q", got)
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"BULK_SELECTED_DOCUMENT_APPROVAL:d1,d2": "BULK_SELECTED_DOCUMENT_APPROVAL",
		"FINAL_DECISION:APPROVED":               "FINAL_DECISION:APPROVED",
		"ASSIGNED_VERIFIER":                     "ASSIGNED_VERIFIER",
	}
	for in, want := range cases {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry(ActionAssignedVerifier, "admin", "p1")
	if len(e.ID) != 32 || e.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not set: %+v", e)
	}
	if e.Action != ActionAssignedVerifier || e.PerformedBy != "admin" || e.StudentID != "p1" {
		t.Fatalf("fields = %+v", e)
	}
}
