// Package planner holds the derived logic over the record store: recurring
// task population and the habit/task analytics. Everything here reads the
// store and writes back only through its patch operation.
package planner

import "github.com/daykeep/daykeep/pkg/types"

// Store is the slice of the record store the planner depends on. The
// concrete implementation lives in internal/store; tests use it over an
// in-memory blob backend.
type Store interface {
	Get(key types.DateKey) types.DayRecord
	Patch(key types.DateKey, patch types.DayPatch) (types.DayRecord, error)
	HabitDefinitions() []types.HabitDefinition
	RecurringTasks() []types.RecurringTaskDefinition
	LastPopulatedDate() types.DateKey
	SetLastPopulatedDate(key types.DateKey) error
}
