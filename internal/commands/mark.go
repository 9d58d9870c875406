package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&MarkInProgressCmd{})
	Register(&MarkDoneCmd{})
	Register(&MarkTodoCmd{})
}

// MarkInProgressCmd implements the mark-in-progress command.
type MarkInProgressCmd struct{}

func (c *MarkInProgressCmd) Name() string      { return "mark-in-progress" }
func (c *MarkInProgressCmd) Aliases() []string { return []string{"start"} }
func (c *MarkInProgressCmd) Synopsis() string  { return "Mark a task in progress" }
func (c *MarkInProgressCmd) Usage() string     { return "ltask mark-in-progress <id>" }
func (c *MarkInProgressCmd) NeedsStore() bool  { return true }

func (c *MarkInProgressCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkInProgressCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, service.StatusInProgress, args, out, errOut)
}

// MarkDoneCmd implements the mark-done command.
type MarkDoneCmd struct{}

func (c *MarkDoneCmd) Name() string      { return "mark-done" }
func (c *MarkDoneCmd) Aliases() []string { return []string{"done"} }
func (c *MarkDoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *MarkDoneCmd) Usage() string     { return "ltask mark-done <id>" }
func (c *MarkDoneCmd) NeedsStore() bool  { return true }

func (c *MarkDoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkDoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, service.StatusDone, args, out, errOut)
}

// MarkTodoCmd implements the mark-todo command, resetting a task to todo.
type MarkTodoCmd struct{}

func (c *MarkTodoCmd) Name() string      { return "mark-todo" }
func (c *MarkTodoCmd) Aliases() []string { return nil }
func (c *MarkTodoCmd) Synopsis() string  { return "Reset a task to todo" }
func (c *MarkTodoCmd) Usage() string     { return "ltask mark-todo <id>" }
func (c *MarkTodoCmd) NeedsStore() bool  { return true }

func (c *MarkTodoCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkTodoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMark(ctx, cfg, svc, service.StatusTodo, args, out, errOut)
}

// runMark is the shared implementation for the mark-* commands.
func runMark(ctx context.Context, cfg *config.Config, svc service.Service, status service.Status, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		if errors.Is(err, ErrIDRequired) {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if _, err := svc.MarkTask(ctx, id, status); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
