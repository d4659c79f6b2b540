package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each blob in its own JSON file under the data directory.
// Writes are atomic via the temp-file, fsync, rename pattern.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// path maps a blob name to its file. Blob names are fixed constants, never
// user input, so no path sanitization is needed.
func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Get reads the blob file. A missing file means the blob was never written.
func (s *FileStore) Get(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}

// Put atomically replaces the blob file.
func (s *FileStore) Put(name string, data []byte) error {
	path := s.path(name)
	tmp, err := os.CreateTemp(s.dir, ".blob-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", name, err)
	}
	return nil
}

// Close is a no-op; files are closed after each operation.
func (s *FileStore) Close() error {
	return nil
}
