// Package flatfile implements storage.Storage as a newline-delimited text file.
package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FileMode is the permission used when creating the task file.
const FileMode = 0644

// File stores one task per line at a fixed path.
type File struct {
	path string
}

// New creates a File backed by path. The file is not touched until Save or Load.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string { return f.path }

// Exists reports whether the file is present.
func (f *File) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", f.path, err)
	}
	return true, nil
}

// Save writes each task followed by a newline, truncating the file first.
func (f *File) Save(ctx context.Context, tasks []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}

	w := bufio.NewWriter(file)
	for _, task := range tasks {
		w.WriteString(task)
		w.WriteByte('\n')
	}
	// bufio keeps the first write error; Flush reports it.
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}

// Load reads the file and returns its non-blank lines.
// A missing file yields an empty result.
func (f *File) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return ParseLines(string(data)), nil
}

// ParseLines splits data on line endings (\n or \r\n) and drops
// blank or whitespace-only lines. Kept lines are returned as written.
func ParseLines(data string) []string {
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
