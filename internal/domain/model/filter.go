package model

import "time"

// TodoFilter represents the conjunctive search criteria applied over stored todos.
// Zero values / nil pointers mean filter not applied. Keyword is matched as a
// case-insensitive substring of the title; Deadline bounds are inclusive.
type TodoFilter struct {
	Keyword      string
	Priority     string
	Completed    *bool
	Deadline     *time.Time
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
}

// IsZero reports whether no criteria are set, in which case the filter matches
// every todo.
func (f TodoFilter) IsZero() bool {
	return f.Keyword == "" && f.Priority == "" && f.Completed == nil &&
		f.Deadline == nil && f.DeadlineFrom == nil && f.DeadlineTo == nil
}
