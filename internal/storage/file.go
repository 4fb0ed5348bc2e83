package storage

import (
	"os"
	"path/filepath"
	"regexp"

	presetlyerrors "github.com/alexisbeaulieu97/presetly/pkg/errors"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// FileStore persists each slot as a file under a directory, written
// atomically via a temporary file and rename.
type FileStore struct {
	dir string
}

// NewFileStore creates the backing directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, presetlyerrors.NewStorageError("", "init", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Read(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Write(key, value string) error {
	path := s.path(key)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o644); err != nil {
		return presetlyerrors.NewStorageError(key, "write", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return presetlyerrors.NewStorageError(key, "write", err)
	}

	return nil
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return presetlyerrors.NewStorageError(key, "delete", err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, unsafeKeyChars.ReplaceAllString(key, "_"))
}

var _ Store = (*FileStore)(nil)
