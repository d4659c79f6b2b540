package store

import (
	"encoding/json"
	"fmt"

	"github.com/daykeep/daykeep/internal/storage"
	"github.com/daykeep/daykeep/pkg/types"
)

// CurrentSchemaVersion is the terminal version of the persisted data shape.
//
// History:
//
//	0/1  legacy: day records carried a deprecated "priorities" field,
//	     tasks could lack a priority, and the habits object could be absent
//	2    current shape
const CurrentSchemaVersion = 2

// Migrate upgrades persisted blobs to the current schema version. It runs
// once per process start, before anything else reads the blobs, and
// short-circuits immediately when the stored version is already current.
//
// Running Migrate on already-migrated data is a no-op: defaults never
// clobber existing non-default values. Unparseable dayData is left in place
// and the version is stamped anyway; the record store treats the malformed
// blob as absent, so the process starts empty instead of crashing.
func Migrate(blobs storage.BlobStore) error {
	version := readSchemaVersion(blobs)
	if version >= CurrentSchemaVersion {
		return nil
	}

	raw, ok, err := blobs.Get(storage.BlobDayData)
	if err != nil {
		return fmt.Errorf("reading day data: %w", err)
	}
	if ok {
		migrated, changed, mErr := migrateDayData(raw)
		if mErr == nil && changed {
			if err := blobs.Put(storage.BlobDayData, migrated); err != nil {
				return fmt.Errorf("writing migrated day data: %w", err)
			}
		}
		// mErr != nil: malformed data, skip the transform and stamp the
		// version; the load path falls back to an empty store.
	}

	versionJSON, err := json.Marshal(CurrentSchemaVersion)
	if err != nil {
		return fmt.Errorf("encoding schema version: %w", err)
	}
	if err := blobs.Put(storage.BlobSchemaVersion, versionJSON); err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}
	return nil
}

// readSchemaVersion returns the stored version, treating a missing or
// malformed marker as 0.
func readSchemaVersion(blobs storage.BlobStore) int {
	raw, ok, err := blobs.Get(storage.BlobSchemaVersion)
	if err != nil || !ok {
		return 0
	}
	var version int
	if err := json.Unmarshal(raw, &version); err != nil {
		return 0
	}
	return version
}

// migrateDayData applies the v<2 -> v2 transform over every stored day
// record, working on generic maps so unknown fields survive untouched:
//
//   - drop the deprecated "priorities" field
//   - default a task's missing priority to "mid"
//   - ensure every record has a "habits" object
//
// changed reports whether anything was rewritten.
func migrateDayData(raw []byte) (migrated []byte, changed bool, err error) {
	var dayData map[string]map[string]any
	if err := json.Unmarshal(raw, &dayData); err != nil {
		return nil, false, fmt.Errorf("parsing day data: %w", err)
	}

	for _, record := range dayData {
		if record == nil {
			continue
		}
		if _, has := record["priorities"]; has {
			delete(record, "priorities")
			changed = true
		}
		if tasks, ok := record["tasks"].([]any); ok {
			for _, entry := range tasks {
				task, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				if pri, _ := task["priority"].(string); pri == "" {
					task["priority"] = string(types.DefaultPriority)
					changed = true
				}
			}
		}
		if _, ok := record["habits"].(map[string]any); !ok {
			record["habits"] = map[string]any{}
			changed = true
		}
	}

	migrated, err = json.Marshal(dayData)
	if err != nil {
		return nil, false, fmt.Errorf("encoding migrated day data: %w", err)
	}
	return migrated, changed, nil
}
