package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrObjectExists is returned when Put would overwrite an existing object.
var ErrObjectExists = errors.New("object already exists")

// DiskStore is an ObjectStore backed by a local directory. The directory is
// served statically under baseURL so stored objects resolve as public URLs.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates the bucket root directory if needed.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root returns the bucket root directory.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

// Put writes the object, refusing to overwrite (upsert is disabled, as in the
// hosted bucket this replaces).
func (s *DiskStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrObjectExists
		}
		return fmt.Errorf("create object: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("write object: %w", err)
	}
	return f.Close()
}

// Delete removes the object; a missing object is treated as already deleted.
func (s *DiskStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// PublicURL returns the URL the static file server exposes the object under.
func (s *DiskStore) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
