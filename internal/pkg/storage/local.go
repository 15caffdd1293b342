package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore serves origin assets from a directory on disk.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a local asset store rooted at basePath.
func NewLocalStore(basePath string) (*LocalStore, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assets directory: %w", err)
	}
	return &LocalStore{basePath: abs}, nil
}

// resolve maps a key onto the base directory and rejects path escapes.
func (s *LocalStore) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	full := filepath.Join(s.basePath, clean)
	if !strings.HasPrefix(full, s.basePath) {
		return "", fmt.Errorf("invalid asset key: %s", key)
	}
	return full, nil
}

// Open returns the asset's content
func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("asset not found: %s", key)
		}
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	return file, nil
}

// Exists checks if an asset exists on disk
func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	full, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ContentType sniffs the asset's MIME type from its first 512 bytes
func (s *LocalStore) ContentType(ctx context.Context, key string) (string, error) {
	f, err := s.Open(ctx, key)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := f.Read(head)
	if n == 0 {
		return "application/octet-stream", nil
	}
	return http.DetectContentType(head[:n]), nil
}
