package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrForeignURL = errors.New("url does not belong to this store")

// LocalStore keeps files under a directory served at BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(ctx context.Context, name, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	obj := objectName(name)
	f, err := os.OpenFile(filepath.Join(s.Dir, obj), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return s.BaseURL + "/" + obj, nil
}

func (s *LocalStore) Delete(_ context.Context, url string) error {
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ErrForeignURL
	}
	obj := strings.TrimPrefix(url, prefix)
	if obj == "" || obj != filepath.Base(obj) {
		return ErrForeignURL
	}
	err := os.Remove(filepath.Join(s.Dir, obj))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
