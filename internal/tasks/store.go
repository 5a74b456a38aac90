// Package tasks holds the in-memory task list.
package tasks

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptyTask is returned when task text is empty after trimming.
var ErrEmptyTask = errors.New("task text is empty")

// ErrIndexOutOfRange is returned for a position outside the list.
var ErrIndexOutOfRange = errors.New("task index out of range")

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Normalize trims surrounding whitespace from text and folds embedded line
// breaks into spaces, since a task is persisted as a single line.
// Returns ErrEmptyTask if nothing is left.
func Normalize(text string) (string, error) {
	text = lineBreaks.Replace(text)
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTask
	}
	return text, nil
}

// Store is an ordered sequence of task texts.
// Insertion order is display order and persistence order.
// No element is ever empty or whitespace-only; duplicates are allowed.
//
// Store is not safe for concurrent use. All mutations happen on the
// single event loop that owns it.
type Store struct {
	items []string
}

// NewStore creates a store holding items, skipping blank ones.
func NewStore(items ...string) *Store {
	s := &Store{}
	s.Reset(items)
	return s
}

// Add appends text after trimming it and returns the stored value.
func (s *Store) Add(text string) (string, error) {
	text, err := Normalize(text)
	if err != nil {
		return "", err
	}
	s.items = append(s.items, text)
	return text, nil
}

// Replace sets the task at index i. On error the prior value is kept.
func (s *Store) Replace(i int, text string) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	text, err := Normalize(text)
	if err != nil {
		return err
	}
	s.items[i] = text
	return nil
}

// RemoveAt removes the tasks at the given positions.
// Positions are removed from highest to lowest so that earlier removals do not
// shift later targets. Duplicate positions collapse. If any position is out of
// range nothing is removed.
func (s *Store) RemoveAt(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted[0] < 0 || sorted[len(sorted)-1] >= len(s.items) {
		return fmt.Errorf("%w: %v", ErrIndexOutOfRange, indices)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		s.items = slices.Delete(s.items, sorted[i], sorted[i]+1)
	}
	return nil
}

// Clear removes every task.
func (s *Store) Clear() {
	s.items = nil
}

// Reset replaces the whole list with items. Blank items are dropped.
func (s *Store) Reset(items []string) {
	s.items = make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		s.items = append(s.items, item)
	}
}

// At returns the task at index i.
func (s *Store) At(i int) (string, error) {
	if i < 0 || i >= len(s.items) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return s.items[i], nil
}

// All returns a copy of the tasks in order.
func (s *Store) All() []string {
	return slices.Clone(s.items)
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.items) }
