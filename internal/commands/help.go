package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                        List all tasks
  ltask list [common flags] [--long] [status]  List tasks (status: todo, in-progress, done, all)
  ltask add [common flags] <description...>
  ltask update [common flags] <id> <description...>
  ltask delete [common flags] <id>             (alias: rm)
  ltask mark-in-progress [common flags] <id>   (alias: start)
  ltask mark-done [common flags] <id>          (alias: done)
  ltask mark-todo [common flags] <id>
  ltask help
  ltask version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task file path (default: tasks.json)
  --quiet          Suppress informational output
  --no-color       Disable status colors
  --debug          Print debug logs to stderr
`
