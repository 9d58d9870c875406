package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return nil }
func (c *UpdateCmd) Synopsis() string  { return "Replace a task's description" }
func (c *UpdateCmd) Usage() string     { return "ltask update <id> <description...>" }
func (c *UpdateCmd) NeedsStore() bool  { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseID(args)
	if err != nil {
		if errors.Is(err, ErrIDRequired) {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	if _, err := svc.UpdateTask(ctx, id, description); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			fmt.Fprintf(errOut, "error: task not found: %d\n", id)
			return exitcode.UserError
		case errors.Is(err, service.ErrInvalidInput):
			fmt.Fprintln(errOut, "error: description required")
			return exitcode.UserError
		default:
			fmt.Fprintf(errOut, "error: store error: %v\n", err)
			return exitcode.StoreError
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
