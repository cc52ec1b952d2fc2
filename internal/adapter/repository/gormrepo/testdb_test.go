package gormrepo

import (
	"context"
	"testing"
	"time"

	auditDomain "admission-backend/internal/domain/audit"
	documentDomain "admission-backend/internal/domain/document"
	profileDomain "admission-backend/internal/domain/profile"
	userDomain "admission-backend/internal/domain/user"
	"admission-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a private in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+id.NewID32()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userDomain.User{}, &profileDomain.Profile{}, &documentDomain.Document{}, &auditDomain.Entry{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role userDomain.Role) *userDomain.User {
	t.Helper()
	u := &userDomain.User{ID: id.NewID32(), Email: email, PasswordHash: "x", Role: role}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProfile(t *testing.T, db *gorm.DB, userID string) *profileDomain.Profile {
	t.Helper()
	p := &profileDomain.Profile{ID: id.NewID32(), UserID: userID, Status: profileDomain.StatusDraft}
	if err := NewProfileRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func seedDocument(t *testing.T, db *gorm.DB, profileID, docType string, at time.Time) *documentDomain.Document {
	t.Helper()
	d := &documentDomain.Document{
		ID:         id.NewID32(),
		ProfileID:  profileID,
		Type:       docType,
		Status:     documentDomain.StatusPending,
		FileURL:    "/uploads/" + docType + ".pdf",
		UploadedAt: at.UTC(),
	}
	if err := NewDocumentRepository(db).Create(context.Background(), d); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return d
}
