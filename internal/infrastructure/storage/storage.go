package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"admission-backend/pkg/id"
)

// FileStore persists uploaded documents and hands back a public URL.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// objectName yields a collision-free name keeping the original extension.
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > 8 || strings.ContainsAny(ext, `/\`) {
		ext = ""
	}
	return id.NewID32() + ext
}
