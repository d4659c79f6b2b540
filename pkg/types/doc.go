// Package types defines the entity types, closed enums, DateKey arithmetic,
// and the day-record merge model for the daykeep planner, plus the Config and
// standard errors shared by the storage and planner layers.
package types
