// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
)

// FakePath is the path reported by FakeStorage.
const FakePath = "tasks.txt"

// ErrDiskFull is a canned I/O error for error injection.
var ErrDiskFull = errors.New("no space left on device")

// FakeStorage is an in-memory implementation of storage.Storage for testing.
type FakeStorage struct {
	mu      sync.RWMutex
	tasks   []string
	present bool

	// SaveCalls counts successful and failed Save invocations.
	SaveCalls int

	// Error injection for testing
	ExistsErr error
	SaveErr   error
	LoadErr   error
}

// NewFakeStorage creates a FakeStorage with nothing persisted.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{}
}

// NewFakeStorageWith creates a FakeStorage that already holds lines, as if a
// file had been written outside the application. Blank lines are kept here and
// filtered by Load, like the real backend.
func NewFakeStorageWith(lines ...string) *FakeStorage {
	return &FakeStorage{tasks: slices.Clone(lines), present: true}
}

// Saved returns what the last successful Save wrote.
func (f *FakeStorage) Saved() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks)
}

// Present reports whether anything has been persisted.
func (f *FakeStorage) Present() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.present
}

// Path implements storage.Storage.
func (f *FakeStorage) Path() string { return FakePath }

// Exists implements storage.Storage.
func (f *FakeStorage) Exists(ctx context.Context) (bool, error) {
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.present, nil
}

// Save implements storage.Storage.
func (f *FakeStorage) Save(ctx context.Context, tasks []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.tasks = slices.Clone(tasks)
	f.present = true
	return nil
}

// Load implements storage.Storage.
func (f *FakeStorage) Load(ctx context.Context) ([]string, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.present {
		return nil, nil
	}

	var lines []string
	for _, line := range f.tasks {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
