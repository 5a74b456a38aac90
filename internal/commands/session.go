package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"todo/internal/controller"
	"todo/internal/exitcode"
	"todo/internal/storage"
	"todo/internal/tasks"
)

// openSession loads the task file and hands it to a fresh controller.
// Unlike the window's startup load, a read failure is reported: a command
// that saves afterwards would otherwise overwrite a file it could not read.
func openSession(ctx context.Context, st storage.Storage, errOut io.Writer) (*controller.Controller, int) {
	lines, err := st.Load(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return nil, exitcode.StorageError
	}
	slog.Debug("task file loaded", "path", st.Path(), "count", len(lines))
	return controller.New(tasks.NewStore(lines...), st, slog.Default()), exitcode.Success
}

// drive feeds events to the controller in order, answering prompts the way
// a user confirming everything would. The first warning or error notice
// stops the sequence and determines the exit code.
func drive(ctx context.Context, ctl *controller.Controller, errOut io.Writer, events ...controller.Event) int {
	for _, ev := range events {
		reply, err := ctl.Handle(ctx, ev)
		if err != nil {
			fmt.Fprintf(errOut, "error: internal: %v\n", err)
			return exitcode.InternalError
		}
		if reply.Notice == nil {
			continue
		}
		switch reply.Notice.Severity {
		case controller.SeverityWarning:
			fmt.Fprintf(errOut, "error: %s\n", lowerFirst(reply.Notice.Text))
			return exitcode.UserError
		case controller.SeverityError:
			fmt.Fprintf(errOut, "error: %s\n", lowerFirst(reply.Notice.Text))
			return exitcode.StorageError
		}
	}
	return exitcode.Success
}

// checkRange validates 1-based task numbers against the loaded list and
// converts them to row indices.
func checkRange(ctl *controller.Controller, nums []int, errOut io.Writer) ([]int, bool) {
	count := len(ctl.Snapshot().Tasks)
	rows := make([]int, 0, len(nums))
	for _, n := range nums {
		if n < 1 || n > count {
			fmt.Fprintf(errOut, "error: task number out of range: %d\n", n)
			return nil, false
		}
		rows = append(rows, n-1)
	}
	return rows, true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// ok prints the success acknowledgement unless quiet.
func ok(quiet bool, out io.Writer) int {
	if !quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
