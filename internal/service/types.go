// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"time"
)

// Status is a task's lifecycle state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus parses a status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status: %s", ErrInvalidInput, s)
	}
	return st, nil
}

// Filter selects which tasks ListTasks returns.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterTodo       Filter = Filter(StatusTodo)
	FilterInProgress Filter = Filter(StatusInProgress)
	FilterDone       Filter = Filter(StatusDone)
)

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterTodo, FilterInProgress, FilterDone:
		return true
	}
	return false
}

// ParseFilter parses a filter string. The empty string means all.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: unknown filter: %s", ErrInvalidInput, s)
	}
	return f, nil
}

// Matches reports whether a task with the given status passes the filter.
func (f Filter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// Task represents a single tracked unit of work.
// Struct field order is the persisted field order.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
