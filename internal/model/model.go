package model

import "strings"

// Task is a single to-do entry.
//
// ID is the creation time in unix milliseconds. IDs are unique within a list;
// same-millisecond creations are disambiguated by the caller (see tasklist).
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Filter selects which tasks a view shows. It is ephemeral UI state and is
// never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter normalizes user input into a Filter.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, true
	case FilterActive:
		return FilterActive, true
	case FilterCompleted:
		return FilterCompleted, true
	}
	return "", false
}

// Matches reports whether the task is visible under the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next cycles all -> active -> completed -> all. Used by the TUI filter key.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}
