// Package upload validates uploaded résumé files and manages their scratch copies.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/logger"
)

var (
	ErrNoFile            = errors.New("no file part")
	ErrEmptyFileName     = errors.New("no selected file")
	ErrUnsupportedFormat = errors.New("unsupported file format, please upload PDF or DOCX")
	ErrFileTooLarge      = errors.New("file too large")
)

// Store writes scratch copies of uploads under Dir.
type Store struct {
	Dir      string
	MaxBytes int64
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}, nil
}

// CheckSize returns ErrFileTooLarge when size exceeds the store limit.
func (s *Store) CheckSize(size int64) error {
	if s.MaxBytes > 0 && size > s.MaxBytes {
		return fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.MaxBytes)
	}
	return nil
}

// WithScratch saves data to a uniquely named file carrying filename's extension,
// calls fn with its path and removes the file afterwards, whatever fn did.
// Removal errors are ignored.
func (s *Store) WithScratch(filename string, data []byte, fn func(path string) string) (string, error) {
	path := filepath.Join(s.Dir, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("scratch cleanup failed")
		}
	}()
	return fn(path), nil
}
