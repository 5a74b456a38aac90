// Package controller turns user gestures into task list mutations and
// persistence calls. It is driven one event at a time by the presentation layer
// and answers with a Reply describing what to render next.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"todo/internal/output"
	"todo/internal/storage"
	"todo/internal/tasks"
)

// User-facing messages.
const (
	msgEmptyTask      = "Enter a non-empty task."
	msgSelectToDelete = "Select at least one task to delete."
	msgConfirmDelete  = "Delete selected task(s)?"
	msgSelectToEdit   = "Select a single task to edit (double-click also works)."
	msgEditPrompt     = "Edit task:"
	msgEditEmpty      = "Task cannot be empty."
	msgConfirmClear   = "Clear ALL tasks?"
	msgConfirmExit    = "Do you want to save tasks before exit?"
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingDelete
	pendingClear
	pendingEdit
	pendingExit
)

// pending is the prompt the controller is waiting on, if any.
type pending struct {
	kind      pendingKind
	selection []int
	index     int
}

// Controller mediates between the presentation layer, the task store and storage.
// It is not safe for concurrent use; events are expected to arrive serially.
type Controller struct {
	store   *tasks.Store
	storage storage.Storage
	logger  *slog.Logger
	pending pending
}

// New creates a controller. A nil logger discards log output.
func New(store *tasks.Store, st storage.Storage, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:   store,
		storage: st,
		logger:  logger,
	}
}

// Snapshot returns a Reply describing the current list without changing anything.
func (c *Controller) Snapshot() Reply {
	tasks := c.store.All()
	return Reply{
		Tasks:  tasks,
		Status: output.FormatStatus(len(tasks)),
	}
}

// Waiting reports whether a prompt is outstanding.
func (c *Controller) Waiting() bool {
	return c.pending.kind != pendingNone
}

// StartupLoad populates the store from storage if anything was persisted.
// Failures are logged and otherwise ignored; no notice is ever produced.
func (c *Controller) StartupLoad(ctx context.Context) Reply {
	exists, err := c.storage.Exists(ctx)
	if err != nil {
		c.logger.Warn("startup load skipped", "path", c.storage.Path(), "error", err)
		return c.Snapshot()
	}
	if !exists {
		c.logger.Debug("startup load: nothing persisted", "path", c.storage.Path())
		return c.Snapshot()
	}

	lines, err := c.storage.Load(ctx)
	if err != nil {
		c.logger.Warn("startup load failed", "path", c.storage.Path(), "error", err)
		return c.Snapshot()
	}

	c.store.Reset(lines)
	c.logger.Debug("startup load", "path", c.storage.Path(), "count", c.store.Len())
	r := c.Snapshot()
	r.Changed = true
	return r
}

// Handle processes one event.
// The error is non-nil only for conditions the presentation layer should never
// produce, such as a selection outside the list; callers should terminate.
func (c *Controller) Handle(ctx context.Context, ev Event) (Reply, error) {
	c.logger.Debug("event", "type", fmt.Sprintf("%T", ev), "count", c.store.Len())

	// Answers resolve the outstanding prompt.
	switch ev := ev.(type) {
	case Confirmed:
		return c.confirm(ev)
	case InputSubmitted:
		return c.submitEdit(ev)
	case ExitChosen:
		return c.chooseExit(ctx, ev), nil
	}

	// Any new gesture abandons an outstanding prompt.
	c.pending = pending{}

	switch ev := ev.(type) {
	case AddRequested:
		return c.add(ev.Text), nil
	case DeleteRequested:
		return c.requestDelete(ev.Selection)
	case EditRequested:
		return c.requestEdit(ev.Selection)
	case RowActivated:
		return c.activate(ev.Index)
	case ClearRequested:
		return c.requestClear(), nil
	case SaveRequested:
		return c.save(ctx), nil
	case LoadRequested:
		return c.load(ctx), nil
	case CloseRequested:
		c.pending = pending{kind: pendingExit}
		return c.prompt(Prompt{Kind: PromptExit, Title: "Exit", Text: msgConfirmExit}), nil
	default:
		return Reply{}, fmt.Errorf("unhandled event %T", ev)
	}
}

func (c *Controller) add(text string) Reply {
	stored, err := c.store.Add(text)
	if err != nil {
		return c.notice(SeverityWarning, "Warning", msgEmptyTask)
	}
	c.logger.Debug("task added", "text", stored, "count", c.store.Len())
	r := c.Snapshot()
	r.Changed = true
	r.ClearInput = true
	return r
}

func (c *Controller) requestDelete(selection []int) (Reply, error) {
	if len(selection) == 0 {
		return c.notice(SeverityInfo, "Info", msgSelectToDelete), nil
	}
	if err := c.checkSelection(selection); err != nil {
		return Reply{}, err
	}
	c.pending = pending{kind: pendingDelete, selection: selection}
	return c.prompt(Prompt{Kind: PromptConfirm, Title: "Confirm", Text: msgConfirmDelete}), nil
}

func (c *Controller) requestEdit(selection []int) (Reply, error) {
	if len(selection) != 1 {
		return c.notice(SeverityInfo, "Info", msgSelectToEdit), nil
	}
	return c.activate(selection[0])
}

func (c *Controller) activate(index int) (Reply, error) {
	current, err := c.store.At(index)
	if err != nil {
		return Reply{}, err
	}
	c.pending = pending{kind: pendingEdit, index: index}
	return c.prompt(Prompt{Kind: PromptInput, Title: "Edit", Text: msgEditPrompt, Initial: current}), nil
}

func (c *Controller) requestClear() Reply {
	if c.store.Len() == 0 {
		return c.Snapshot()
	}
	c.pending = pending{kind: pendingClear}
	return c.prompt(Prompt{Kind: PromptConfirm, Title: "Confirm", Text: msgConfirmClear})
}

func (c *Controller) confirm(ev Confirmed) (Reply, error) {
	p := c.pending
	if p.kind != pendingDelete && p.kind != pendingClear {
		return c.Snapshot(), nil
	}
	c.pending = pending{}
	if !ev.Yes {
		return c.Snapshot(), nil
	}

	switch p.kind {
	case pendingDelete:
		if err := c.store.RemoveAt(p.selection); err != nil {
			return Reply{}, err
		}
		c.logger.Debug("tasks deleted", "selection", p.selection, "count", c.store.Len())
	case pendingClear:
		c.store.Clear()
		c.logger.Debug("tasks cleared")
	}
	r := c.Snapshot()
	r.Changed = true
	return r, nil
}

func (c *Controller) submitEdit(ev InputSubmitted) (Reply, error) {
	p := c.pending
	if p.kind != pendingEdit {
		return c.Snapshot(), nil
	}
	c.pending = pending{}
	if ev.Cancelled {
		return c.Snapshot(), nil
	}

	err := c.store.Replace(p.index, ev.Text)
	if errors.Is(err, tasks.ErrEmptyTask) {
		return c.notice(SeverityWarning, "Warning", msgEditEmpty), nil
	}
	if err != nil {
		return Reply{}, err
	}
	c.logger.Debug("task edited", "index", p.index)
	r := c.Snapshot()
	r.Changed = true
	return r, nil
}

func (c *Controller) chooseExit(ctx context.Context, ev ExitChosen) Reply {
	if c.pending.kind != pendingExit {
		return c.Snapshot()
	}
	c.pending = pending{}
	c.logger.Debug("exit chosen", "choice", ev.Choice)

	switch ev.Choice {
	case SaveAndExit:
		r := c.save(ctx)
		// Exit proceeds even when the save failed; only the failure is worth showing.
		if r.Notice != nil && r.Notice.Severity != SeverityError {
			r.Notice = nil
		}
		r.Quit = true
		return r
	case ExitWithoutSaving:
		r := c.Snapshot()
		r.Quit = true
		return r
	default:
		return c.Snapshot()
	}
}

func (c *Controller) save(ctx context.Context) Reply {
	path := c.storage.Path()
	if err := c.storage.Save(ctx, c.store.All()); err != nil {
		c.logger.Error("save tasks", "path", path, "error", err)
		return c.notice(SeverityError, "Error", "Error saving tasks: "+err.Error())
	}
	c.logger.Info("tasks saved", "path", path, "count", c.store.Len())
	return c.notice(SeverityInfo, "Saved", "Tasks saved to "+path)
}

func (c *Controller) load(ctx context.Context) Reply {
	path := c.storage.Path()
	exists, err := c.storage.Exists(ctx)
	if err != nil {
		c.logger.Error("load tasks", "path", path, "error", err)
		return c.notice(SeverityError, "Error", "Error loading tasks: "+err.Error())
	}
	if !exists {
		return c.notice(SeverityInfo, "Info", path+" not found. Nothing loaded.")
	}

	lines, err := c.storage.Load(ctx)
	if err != nil {
		c.logger.Error("load tasks", "path", path, "error", err)
		return c.notice(SeverityError, "Error", "Error loading tasks: "+err.Error())
	}

	c.store.Reset(lines)
	c.logger.Info("tasks loaded", "path", path, "count", c.store.Len())
	r := c.notice(SeverityInfo, "Loaded", "Tasks loaded from "+path)
	r.Changed = true
	return r
}

// checkSelection verifies every selected row exists.
func (c *Controller) checkSelection(selection []int) error {
	for _, i := range selection {
		if i < 0 || i >= c.store.Len() {
			return fmt.Errorf("selection %v: %w", selection, tasks.ErrIndexOutOfRange)
		}
	}
	return nil
}

func (c *Controller) notice(sev Severity, title, text string) Reply {
	r := c.Snapshot()
	r.Notice = &Notice{Severity: sev, Title: title, Text: text}
	return r
}

func (c *Controller) prompt(p Prompt) Reply {
	r := c.Snapshot()
	r.Prompt = &p
	return r
}
