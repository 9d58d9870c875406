// Package jsonfile implements service.Service on top of a single JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"ltask/internal/config"
	"ltask/internal/logging"
	"ltask/internal/service"
)

// ErrCorruptData is returned by load when the task file exists but does not
// parse as the expected schema. Operations recover from it by starting the
// run from an empty collection; the file on disk is left alone until the
// next save overwrites it.
var ErrCorruptData = errors.New("corrupt task file")

// Store persists the task collection as one JSON array on local disk.
// Single-process, single-threaded; concurrent invocations are last writer
// wins.
type Store struct {
	path   string
	logger *log.Logger
	now    func() time.Time
}

// New creates a Store for the data file named by the config.
func New(ctx context.Context, cfg *config.Config) (service.Service, error) {
	if cfg.DataFile == "" {
		return nil, errors.New("data file path is empty")
	}
	return &Store{
		path:   cfg.DataFile,
		logger: logging.New(cfg.Debug),
		now:    time.Now,
	}, nil
}

// AddTask implements service.Service.
func (s *Store) AddTask(ctx context.Context, description string) (service.Task, error) {
	if strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: description is empty", service.ErrInvalidInput)
	}

	tasks := s.loadLenient()
	now := s.timestamp()
	task := service.Task{
		ID:          nextID(tasks),
		Description: description,
		Status:      service.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tasks = append(tasks, task)

	if err := s.save(tasks); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// ListTasks implements service.Service.
func (s *Store) ListTasks(ctx context.Context, filter service.Filter) ([]service.Task, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: unknown filter: %s", service.ErrInvalidInput, filter)
	}

	tasks := s.loadLenient()
	if filter == service.FilterAll {
		return tasks, nil
	}

	var matched []service.Task
	for _, t := range tasks {
		if filter.Matches(t.Status) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(ctx context.Context, id int, description string) (service.Task, error) {
	if strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: description is empty", service.ErrInvalidInput)
	}

	tasks := s.loadLenient()
	i := indexByID(tasks, id)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}

	tasks[i].Description = description
	tasks[i].UpdatedAt = s.timestamp()

	if err := s.save(tasks); err != nil {
		return service.Task{}, err
	}
	return tasks[i], nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	tasks := s.loadLenient()
	i := indexByID(tasks, id)
	if i < 0 {
		return fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}

	tasks = append(tasks[:i], tasks[i+1:]...)
	return s.save(tasks)
}

// MarkTask implements service.Service.
func (s *Store) MarkTask(ctx context.Context, id int, status service.Status) (service.Task, error) {
	if !status.Valid() {
		return service.Task{}, fmt.Errorf("%w: unknown status: %s", service.ErrInvalidInput, status)
	}

	tasks := s.loadLenient()
	i := indexByID(tasks, id)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}

	tasks[i].Status = status
	tasks[i].UpdatedAt = s.timestamp()

	if err := s.save(tasks); err != nil {
		return service.Task{}, err
	}
	return tasks[i], nil
}

// timestamp returns now in UTC, truncated to whole seconds so the persisted
// RFC 3339 form round-trips byte-identically.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// loadLenient loads the collection, recovering from corrupt content with a
// warning and an empty collection for this run.
func (s *Store) loadLenient() []service.Task {
	tasks, err := s.load()
	if err != nil {
		s.logger.Warn("task file is corrupt, continuing with an empty list",
			"path", s.path, "err", err)
		return nil
	}
	return tasks
}

// load reads and validates the task file. A missing or zero-length file is
// an empty collection, not an error.
func (s *Store) load() ([]service.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if err := taskSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	s.logger.Debug("loaded task file", "path", s.path, "tasks", len(tasks))
	return tasks, nil
}

// save serializes the full collection and replaces the task file. The write
// goes to a temp file in the same directory followed by a rename, so a
// failed write never leaves a truncated task file behind.
func (s *Store) save(tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write task file: %w", err)
	}

	s.logger.Debug("saved task file", "path", s.path, "tasks", len(tasks))
	return nil
}

// nextID assigns max existing id + 1, starting at 1.
func nextID(tasks []service.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// indexByID returns the index of the task with the given id, or -1.
func indexByID(tasks []service.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
