// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty task, bad task number).
	UserError = 1

	// StorageError indicates the task file could not be read or written.
	StorageError = 2

	// InternalError indicates an unexpected condition; the task list was not saved.
	InternalError = 3
)
