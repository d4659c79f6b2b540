// Package storage provides the persisted blob port for daykeep state: a
// synchronous named-blob store with file, SQLite, and in-memory backends.
// The record store and migrator are written against the BlobStore interface
// so they can be tested against the in-memory backend.
package storage

import (
	"fmt"
	"os"

	"github.com/daykeep/daykeep/pkg/types"
)

// Names of the persisted blobs.
const (
	BlobSchemaVersion     = "schemaVersion"
	BlobDayData           = "dayData"
	BlobHabitDefinitions  = "habitDefinitions"
	BlobRecurringTasks    = "recurringTasks"
	BlobLastPopulatedDate = "lastPopulatedDate"
)

// BlobStore is the storage port: get/set raw JSON blobs by name. All
// operations are synchronous and complete before returning. The store
// assumes a single writer; concurrent writers get last-write-wins at the
// granularity of one Put.
type BlobStore interface {
	// Get returns the raw blob. ok is false when the blob has never been
	// written; that is not an error.
	Get(name string) (data []byte, ok bool, err error)

	// Put writes the blob, replacing any previous value.
	Put(name string, data []byte) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open creates the data directory if needed and opens the backend selected
// by the config.
func Open(cfg types.Config) (BlobStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		return OpenSQLiteStore(dataDir)
	case types.BackendFile:
		return NewFileStore(dataDir), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
