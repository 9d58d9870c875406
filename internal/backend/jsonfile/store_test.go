package jsonfile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ltask/internal/logging"
	"ltask/internal/service"
)

// newTestStore returns a store on a temp file with a controllable clock.
func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s := &Store{
		path:   filepath.Join(t.TempDir(), "tasks.json"),
		logger: logging.NewWithWriter(io.Discard, false),
		now:    func() time.Time { return now },
	}
	return s, &now
}

func TestLoad_MissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	tasks, err := s.ListTasks(context.Background(), service.FilterAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
	if _, err := os.Stat(s.path); !errors.Is(err, os.ErrNotExist) {
		t.Error("listing must not create the task file")
	}
}

func TestLoad_ZeroByteFile(t *testing.T) {
	s, _ := newTestStore(t)
	if err := os.WriteFile(s.path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := s.ListTasks(context.Background(), service.FilterAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestLoad_CorruptJSON(t *testing.T) {
	s, _ := newTestStore(t)
	corrupt := []byte("{not json")
	if err := os.WriteFile(s.path, corrupt, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.load(); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}

	// Listing recovers with an empty collection and leaves the file alone
	tasks, err := s.ListTasks(context.Background(), service.FilterAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty collection, got %d tasks", len(tasks))
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(corrupt) {
		t.Error("listing must not rewrite a corrupt file")
	}
}

func TestLoad_SchemaRejectsBadRecords(t *testing.T) {
	s, _ := newTestStore(t)
	// Valid JSON, wrong shape: id below 1, missing status
	bad := []byte(`[{"id": 0, "description": "x", "createdAt": "2026-03-14T09:30:00Z", "updatedAt": "2026-03-14T09:30:00Z"}]`)
	if err := os.WriteFile(s.path, bad, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.load(); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
}

func TestAddTask_AssignsIncreasingIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		task, err := s.AddTask(ctx, "task")
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if task.ID != i {
			t.Errorf("expected id %d, got %d", i, task.ID)
		}
		if task.Status != service.StatusTodo {
			t.Errorf("expected status todo, got %s", task.Status)
		}
	}

	// Next id is max existing id + 1
	if err := s.DeleteTask(ctx, 5); err != nil {
		t.Fatal(err)
	}
	task, err := s.AddTask(ctx, "after delete")
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != 5 {
		t.Errorf("expected id 5 (max 4 + 1), got %d", task.ID)
	}
}

func TestAddTask_EmptyDescription(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.AddTask(context.Background(), "   "); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := os.Stat(s.path); !errors.Is(err, os.ErrNotExist) {
		t.Error("rejected add must not create the task file")
	}
}

func TestListTasks_FilterDone(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, desc := range []string{"one", "two", "three"} {
		if _, err := s.AddTask(ctx, desc); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.MarkTask(ctx, 3, service.StatusDone); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MarkTask(ctx, 1, service.StatusInProgress); err != nil {
		t.Fatal(err)
	}

	done, err := s.ListTasks(ctx, service.FilterDone)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 || done[0].ID != 3 {
		t.Fatalf("expected exactly task 3, got %+v", done)
	}
}

func TestListTasks_UnknownFilter(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.ListTasks(context.Background(), service.Filter("bogus")); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateTask_RefreshesUpdatedAt(t *testing.T) {
	s, now := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddTask(ctx, "original")
	if err != nil {
		t.Fatal(err)
	}

	*now = now.Add(time.Hour)
	updated, err := s.UpdateTask(ctx, created.ID, "revised")
	if err != nil {
		t.Fatal(err)
	}

	if updated.Description != "revised" {
		t.Errorf("expected revised description, got %q", updated.Description)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must not change on update")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updatedAt must be refreshed on update")
	}
}

func TestUpdateTask_NotFoundLeavesFileUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "only task"); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.UpdateTask(ctx, 99, "nope"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed update must leave the file unchanged")
	}
}

func TestDeleteTask_RemovesExactlyOne(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, desc := range []string{"one", "two", "three"} {
		if _, err := s.AddTask(ctx, desc); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.DeleteTask(ctx, 2); err != nil {
		t.Fatal(err)
	}

	tasks, err := s.ListTasks(ctx, service.FilterAll)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	// No renumbering
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Errorf("expected ids [1 3], got [%d %d]", tasks[0].ID, tasks[1].ID)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.DeleteTask(context.Background(), 7); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkTask_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.MarkTask(context.Background(), 7, service.StatusDone); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSave_EmptyCollectionIsArray(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "short lived"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTask(ctx, 1); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("expected empty array file, got %q", data)
	}
}

func TestRoundTrip_ByteStable(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddTask(ctx, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddTask(ctx, "second"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.MarkTask(ctx, 2, service.StatusInProgress); err != nil {
		t.Fatal(err)
	}

	before, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}

	tasks, err := s.load()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.save(tasks); err != nil {
		t.Fatal(err)
	}

	after, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Errorf("save(load()) not byte-stable\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestSave_OverwritesCorruptFileOnNextMutation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := os.WriteFile(s.path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	task, err := s.AddTask(ctx, "fresh start")
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != 1 {
		t.Errorf("expected id 1 on fresh collection, got %d", task.ID)
	}

	tasks, err := s.load()
	if err != nil {
		t.Fatalf("file still corrupt after save: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}
