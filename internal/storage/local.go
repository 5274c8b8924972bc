package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// BlobStorage abstracts the attachment blob directory.
type BlobStorage interface {
	Save(ctx context.Context, name string, reader io.Reader) (string, error)
	Exists(name string) bool
	Path(name string) string
}

// LocalStorage stores blobs as flat files under a single directory.
// Names are reduced to their base component so callers cannot escape it.
type LocalStorage struct {
	root   string
	logger zerolog.Logger
}

// NewLocal creates the blob directory if needed and returns a store over it.
func NewLocal(root string, logger zerolog.Logger) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("upload directory must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &LocalStorage{
		root:   root,
		logger: logger.With().Str("component", "local_storage").Logger(),
	}, nil
}

// Save writes the blob under its sanitized name and returns the stored name.
func (s *LocalStorage) Save(_ context.Context, name string, reader io.Reader) (string, error) {
	clean := filepath.Base(name)
	if clean == "." || clean == string(filepath.Separator) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}

	destination := filepath.Join(s.root, clean)
	file, err := os.Create(destination)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	s.logger.Debug().Str("name", clean).Int64("bytes", written).Msg("blob stored")
	return clean, nil
}

// Exists reports whether a blob with the given name is present.
func (s *LocalStorage) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Path returns the filesystem path a blob name resolves to.
func (s *LocalStorage) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}
