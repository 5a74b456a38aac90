// Package storage defines the backend-agnostic interface for persisting the task list.
package storage

import "context"

// Storage reads and writes the whole task list.
// The controller never touches files directly; everything goes through this interface.
type Storage interface {
	// Path returns the location of the persisted list, for user messages.
	Path() string

	// Exists reports whether a persisted list is present.
	Exists(ctx context.Context) (bool, error)

	// Save writes tasks in order, replacing any previous contents.
	Save(ctx context.Context, tasks []string) error

	// Load returns the persisted tasks in order, skipping blank entries.
	// Returns an empty result, not an error, when nothing has been persisted yet.
	Load(ctx context.Context) ([]string, error)
}
