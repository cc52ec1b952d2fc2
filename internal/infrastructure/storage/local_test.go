package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	url, err := s.Save(ctx, "Marks.PDF", "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".pdf") {
		t.Fatalf("url = %q", url)
	}
	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	b, err := os.ReadFile(stored)
	if err != nil || string(b) != "%PDF-1.4" {
		t.Fatalf("stored content = %q, %v", b, err)
	}

	if err := s.Delete(ctx, url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(stored); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file still present: %v", err)
	}
	// second delete is a no-op
	if err := s.Delete(ctx, url); err != nil {
		t.Fatalf("Delete again: %v", err)
	}
}

func TestLocalStore_UniqueNames(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir(), "/uploads")
	a, _ := s.Save(context.Background(), "a.png", "image/png", strings.NewReader("1"))
	b, _ := s.Save(context.Background(), "a.png", "image/png", strings.NewReader("2"))
	if a == b {
		t.Fatalf("expected distinct urls, both %q", a)
	}
}

func TestLocalStore_DeleteRejectsForeignURL(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir(), "/uploads")
	for _, u := range []string{"https://elsewhere/x.png", "/uploads/../etc/passwd", "/uploads/"} {
		if err := s.Delete(context.Background(), u); !errors.Is(err, ErrForeignURL) {
			t.Fatalf("Delete(%q) = %v, want ErrForeignURL", u, err)
		}
	}
}

func TestLocalStore_SaveCanceled(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir(), "/uploads")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Save(ctx, "a.png", "image/png", strings.NewReader("1")); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestParseDeliveryURL(t *testing.T) {
	cases := []struct {
		url, rt, id string
		ok          bool
	}{
		{"https://res.cloudinary.com/demo/image/upload/v17/admission/abc.pdf", "image", "admission/abc", true},
		{"https://res.cloudinary.com/demo/raw/upload/admission/abc.pdf", "raw", "admission/abc.pdf", true},
		{"https://example.com/file.png", "", "", false},
	}
	for _, c := range cases {
		rt, id, ok := parseDeliveryURL(c.url)
		if rt != c.rt || id != c.id || ok != c.ok {
			t.Errorf("parseDeliveryURL(%q) = %q, %q, %v", c.url, rt, id, ok)
		}
	}
}
