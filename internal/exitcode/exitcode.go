// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command,
	// unknown filter, unknown task id).
	UserError = 1

	// StoreError indicates a failure reading or writing the task file.
	StoreError = 2
)
