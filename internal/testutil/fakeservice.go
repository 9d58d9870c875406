// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ltask/internal/service"
)

// BaseTime is the fixed timestamp used for seeded tasks, so golden output
// stays stable.
var BaseTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int

	// Error injection for testing
	AddTaskErr    error
	ListTasksErr  error
	UpdateTaskErr error
	DeleteTaskErr error
	MarkTaskErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// SeedTask adds a task with a fixed timestamp and returns its id.
func (f *FakeService) SeedTask(description string, status service.Status) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Description: description,
		Status:      status,
		CreatedAt:   BaseTime,
		UpdatedAt:   BaseTime,
	})
	return id
}

// Tasks returns a copy of the current tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, description string) (service.Task, error) {
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	if strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: description is empty", service.ErrInvalidInput)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{
		ID:          f.nextID,
		Description: description,
		Status:      service.StatusTodo,
		CreatedAt:   BaseTime,
		UpdatedAt:   BaseTime,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, filter service.Filter) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown filter: %s", service.ErrInvalidInput, filter)
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var matched []service.Task
	for _, t := range f.tasks {
		if filter.Matches(t.Status) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int, description string) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	if strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: description is empty", service.ErrInvalidInput)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Description = description
			f.tasks[i].UpdatedAt = BaseTime.Add(time.Minute)
			return f.tasks[i], nil
		}
	}
	return service.Task{}, fmt.Errorf("%w: %d", service.ErrNotFound, id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", service.ErrNotFound, id)
}

// MarkTask implements service.Service.
func (f *FakeService) MarkTask(ctx context.Context, id int, status service.Status) (service.Task, error) {
	if f.MarkTaskErr != nil {
		return service.Task{}, f.MarkTaskErr
	}
	if !status.Valid() {
		return service.Task{}, fmt.Errorf("%w: unknown status: %s", service.ErrInvalidInput, status)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Status = status
			f.tasks[i].UpdatedAt = BaseTime.Add(time.Minute)
			return f.tasks[i], nil
		}
	}
	return service.Task{}, fmt.Errorf("%w: %d", service.ErrNotFound, id)
}
