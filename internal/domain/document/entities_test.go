package document

import (
	"reflect"
	"testing"
	"time"
)

func TestLatestByType(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	docs := []Document{
		{ID: "p1", Type: "PASSPORT_PHOTO", UploadedAt: t0},
		{ID: "x1", Type: "X_MARKSHEET", UploadedAt: t0.Add(time.Hour)},
		{ID: "p2", Type: "PASSPORT_PHOTO", UploadedAt: t0.Add(2 * time.Hour)},
		{ID: "p0", Type: "PASSPORT_PHOTO", UploadedAt: t0.Add(-time.Hour)},
		{ID: "x2", Type: "X_MARKSHEET", UploadedAt: t0.Add(time.Hour)}, // tie: later element wins
		{ID: "nt", Type: ""},
	}

	got := LatestByType(docs)
	var ids []string
	for _, d := range got {
		ids = append(ids, d.ID)
	}
	if want := []string{"p2", "x2"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("LatestByType ids = %v, want %v", ids, want)
	}
}

func TestLatestByType_Empty(t *testing.T) {
	if got := LatestByType(nil); len(got) != 0 {
		t.Fatalf("expected empty projection, got %v", got)
	}
}

func TestMissingTypes(t *testing.T) {
	docs := []Document{{Type: "PASSPORT_PHOTO"}, {Type: "AADHAR_CARD"}, {Type: "EXTRA"}}
	got := MissingTypes(docs, RequiredTypes)
	want := []string{"PROVISIONAL_ADMISSION_LETTER", "X_MARKSHEET", "XII_MARKSHEET"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingTypes = %v, want %v", got, want)
	}
	if got := MissingTypes(nil, nil); len(got) != 0 {
		t.Fatalf("expected nothing missing, got %v", got)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("DONE").Valid() {
		t.Fatalf("DONE should be invalid")
	}
}
