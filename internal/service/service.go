// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task store operations.
// All reads and writes of the task collection go through this interface.
// Commands never touch the backing file directly.
type Service interface {
	// AddTask appends a new task with the given description.
	// The task gets the next free id, status todo, and both timestamps
	// set to now. Returns ErrInvalidInput if the description is empty.
	AddTask(ctx context.Context, description string) (Task, error)

	// ListTasks returns tasks matching the filter, in insertion order.
	// Returns ErrInvalidInput if the filter is not a known filter.
	ListTasks(ctx context.Context, filter Filter) ([]Task, error)

	// UpdateTask replaces a task's description and refreshes updatedAt.
	// Returns ErrNotFound if no task has the id, ErrInvalidInput if the
	// description is empty.
	UpdateTask(ctx context.Context, id int, description string) (Task, error)

	// DeleteTask removes a task. Remaining ids are not renumbered.
	// Returns ErrNotFound if no task has the id.
	DeleteTask(ctx context.Context, id int) error

	// MarkTask sets a task's status and refreshes updatedAt.
	// Returns ErrNotFound if no task has the id.
	MarkTask(ctx context.Context, id int, status Status) (Task, error)
}
