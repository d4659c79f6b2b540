// Package store implements the date-keyed record store and the schema
// migrator over the storage blob port. The store owns the DateKey to
// DayRecord mapping; the planner reads it and writes back only through
// Patch.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/daykeep/daykeep/internal/storage"
	"github.com/daykeep/daykeep/pkg/types"
)

// Store is the record store. State is held in memory and written through to
// the blob port on every mutation, so a crash loses at most the operation in
// flight. Access is single-writer by design; the mutex only guards against
// accidental concurrent use inside one process.
type Store struct {
	mu    sync.RWMutex
	blobs storage.BlobStore

	days          map[types.DateKey]types.DayRecord
	habits        []types.HabitDefinition
	recurring     []types.RecurringTaskDefinition
	lastPopulated types.DateKey
	version       int
}

// Open migrates the persisted blobs to the current schema, then loads them.
// A malformed blob resolves to its empty default rather than an error;
// availability wins over strict validation for local single-user state.
func Open(blobs storage.BlobStore) (*Store, error) {
	if err := Migrate(blobs); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{
		blobs:   blobs,
		days:    make(map[types.DateKey]types.DayRecord),
		version: CurrentSchemaVersion,
	}

	loadJSON(blobs, storage.BlobDayData, &s.days)
	loadJSON(blobs, storage.BlobHabitDefinitions, &s.habits)
	loadJSON(blobs, storage.BlobRecurringTasks, &s.recurring)
	loadJSON(blobs, storage.BlobLastPopulatedDate, &s.lastPopulated)
	s.version = readSchemaVersion(blobs)

	if s.days == nil {
		s.days = make(map[types.DateKey]types.DayRecord)
	}
	return s, nil
}

// loadJSON decodes a blob into dst, leaving dst untouched when the blob is
// absent or malformed.
func loadJSON(blobs storage.BlobStore, name string, dst any) {
	raw, ok, err := blobs.Get(name)
	if err != nil || !ok {
		return
	}
	// Ignore a decode error: malformed persisted data is treated as absence.
	_ = json.Unmarshal(raw, dst)
}

// putJSON encodes v and writes it to the named blob.
func (s *Store) putJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := s.blobs.Put(name, data); err != nil {
		return fmt.Errorf("persisting %s: %w", name, err)
	}
	return nil
}

// Get returns the record for the key, or a structurally complete default
// when the key was never written. The result never aliases store memory.
func (s *Store) Get(key types.DateKey) types.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if stored, ok := s.days[key]; ok {
		return types.MergeDay(&stored, types.DayPatch{})
	}
	return types.DefaultDayRecord()
}

// Patch merges the partial overlay onto the stored record (defaults, then
// stored, then overlay, shallowly per top-level field), stores and persists
// the result, and returns it. Records are created lazily here; Get alone
// never creates one. Patching with the same overlay twice yields the same
// stored state.
func (s *Store) Patch(key types.DateKey, patch types.DayPatch) (types.DayRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored *types.DayRecord
	if existing, ok := s.days[key]; ok {
		stored = &existing
	}

	merged := types.MergeDay(stored, patch)
	s.days[key] = merged

	if err := s.putJSON(storage.BlobDayData, s.days); err != nil {
		return types.DayRecord{}, err
	}
	return merged.Clone(), nil
}

// Days returns a copy of the full DateKey to DayRecord mapping.
func (s *Store) Days() map[types.DateKey]types.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[types.DateKey]types.DayRecord, len(s.days))
	for k, r := range s.days {
		out[k] = r.Clone()
	}
	return out
}

// SchemaVersion returns the stored schema version.
func (s *Store) SchemaVersion() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// HabitDefinitions returns a copy of the habit definition list.
func (s *Store) HabitDefinitions() []types.HabitDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.HabitDefinition, len(s.habits))
	copy(out, s.habits)
	return out
}

// SetHabitDefinitions replaces the habit definition list. The list is
// managed by the calling surface; the store does not enforce the entry cap.
// Removing a definition leaves historical day entries in place.
func (s *Store) SetHabitDefinitions(defs []types.HabitDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits = make([]types.HabitDefinition, len(defs))
	copy(s.habits, defs)
	return s.putJSON(storage.BlobHabitDefinitions, s.habits)
}

// RecurringTasks returns a copy of the recurring-task definition list.
func (s *Store) RecurringTasks() []types.RecurringTaskDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.RecurringTaskDefinition, len(s.recurring))
	copy(out, s.recurring)
	return out
}

// SetRecurringTasks replaces the recurring-task definition list.
func (s *Store) SetRecurringTasks(defs []types.RecurringTaskDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recurring = make([]types.RecurringTaskDefinition, len(defs))
	copy(s.recurring, defs)
	return s.putJSON(storage.BlobRecurringTasks, s.recurring)
}

// LastPopulatedDate returns the day the recurring populator last ran.
// Empty when it has never run.
func (s *Store) LastPopulatedDate() types.DateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPopulated
}

// SetLastPopulatedDate stamps the populator marker.
func (s *Store) SetLastPopulatedDate(key types.DateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastPopulated = key
	return s.putJSON(storage.BlobLastPopulatedDate, s.lastPopulated)
}

// Bundle is the full persisted-state shape used for export and import.
// Field names match the persisted blob names so a bundle round-trips
// verbatim through JSON.
type Bundle struct {
	SchemaVersion     int                               `json:"schemaVersion"`
	DayData           map[types.DateKey]types.DayRecord `json:"dayData"`
	HabitDefinitions  []types.HabitDefinition           `json:"habitDefinitions"`
	RecurringTasks    []types.RecurringTaskDefinition   `json:"recurringTasks"`
	LastPopulatedDate types.DateKey                     `json:"lastPopulatedDate"`
}

// Export serializes the entire persisted state as one JSON document.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle := Bundle{
		SchemaVersion:     s.version,
		DayData:           s.days,
		HabitDefinitions:  s.habits,
		RecurringTasks:    s.recurring,
		LastPopulatedDate: s.lastPopulated,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bundle: %w", err)
	}
	return data, nil
}

// Import replaces the entire persisted state with the bundle's contents and
// persists every blob. A parse failure leaves the current state untouched.
func (s *Store) Import(data []byte) error {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("parsing bundle: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.days = bundle.DayData
	if s.days == nil {
		s.days = make(map[types.DateKey]types.DayRecord)
	}
	s.habits = bundle.HabitDefinitions
	s.recurring = bundle.RecurringTasks
	s.lastPopulated = bundle.LastPopulatedDate

	if err := s.putJSON(storage.BlobDayData, s.days); err != nil {
		return err
	}
	if err := s.putJSON(storage.BlobHabitDefinitions, s.habits); err != nil {
		return err
	}
	if err := s.putJSON(storage.BlobRecurringTasks, s.recurring); err != nil {
		return err
	}
	return s.putJSON(storage.BlobLastPopulatedDate, s.lastPopulated)
}
