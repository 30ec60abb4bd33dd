// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// ErrorRecord is the predicate function for errorrecord builders.
type ErrorRecord func(*sql.Selector)

// ObservationEvent is the predicate function for observationevent builders.
type ObservationEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SkillNode is the predicate function for skillnode builders.
type SkillNode func(*sql.Selector)
