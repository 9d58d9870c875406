package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `ltask` (no args) and `ltask list [status]`.
type ListCmd struct {
	long bool
}

// SetLong sets long output mode (for testing).
func (c *ListCmd) SetLong(long bool) {
	c.long = long
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally filtered by status" }
func (c *ListCmd) Usage() string     { return "ltask list [--long] [todo|in-progress|done|all]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.long, "long", false, "")
	fs.BoolVar(&c.long, "l", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %s\n", args[1])
		return exitcode.UserError
	}

	var filterArg string
	if len(args) == 1 {
		filterArg = args[0]
	}

	filter, err := service.ParseFilter(filterArg)
	if err != nil {
		fmt.Fprintf(errOut, "error: unknown filter: %s\n", filterArg)
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx, filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	formatter := output.NewFormatter(!cfg.NoColor, c.long)
	for _, task := range tasks {
		formatter.Task(out, task)
	}
	return exitcode.Success
}
