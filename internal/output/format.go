// Package output provides formatters for task list output.
package output

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrefix precedes the task count in the status readout.
const StatusPrefix = "Tasks: "

// FormatStatus returns the status readout for count tasks.
func FormatStatus(count int) string {
	return fmt.Sprintf("%s%d", StatusPrefix, count)
}

// FormatTask formats a task line for the list command.
// Format: "{N:>4}  {TEXT}\n" (4-wide right-aligned number, two spaces, text)
func FormatTask(w io.Writer, num int, task string) {
	fmt.Fprintf(w, "%4d  %s\n", num, DisplayText(task))
}

// FormatList writes every task numbered from 1, followed by the status line.
func FormatList(w io.Writer, tasks []string) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
	fmt.Fprintln(w, FormatStatus(len(tasks)))
}

// DisplayText normalizes a task for single-line display.
// - Tabs, carriage returns and newlines become spaces
// - Blank text becomes "(empty)"
func DisplayText(task string) string {
	task = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(task)
	if strings.TrimSpace(task) == "" {
		return "(empty)"
	}
	return task
}
