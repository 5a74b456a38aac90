// Package ui is the interactive task list window.
//
// The model owns no task data. It forwards gestures to the controller and
// re-renders from the snapshot in each reply.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"todo/internal/controller"
)

const (
	// doubleClickThreshold is the maximum interval between two presses
	// on the same row to count as a double-click.
	doubleClickThreshold = 400 * time.Millisecond

	defaultVisibleRows = 10
	minVisibleRows     = 3
	inputWidth         = 40
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used for double-click detection.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Model) { m.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the bubbletea model for the task window.
type Model struct {
	ctx    context.Context
	ctl    *controller.Controller
	clock  clockwork.Clock
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	input  textinput.Model // new task entry
	editor textinput.Model // edit prompt

	tasks    []string
	status   string
	cursor   int
	offset   int
	selected map[int]bool
	focus    focus

	notice          *controller.Notice
	prompt          *controller.Prompt
	quitAfterNotice bool

	lastClickRow int
	lastClickAt  time.Time

	width  int
	height int

	err error
}

// New creates the window model and performs the silent startup load.
func New(ctx context.Context, ctl *controller.Controller, opts ...Option) *Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Describe the task"
	input.CharLimit = 0 // task text has no length limit
	input.Width = inputWidth
	input.Focus()

	editor := textinput.New()
	editor.Prompt = "> "
	editor.CharLimit = 0
	editor.Width = inputWidth

	m := &Model{
		ctx:          ctx,
		ctl:          ctl,
		clock:        clockwork.NewRealClock(),
		logger:       slog.New(slog.DiscardHandler),
		keys:         defaultKeyMap(),
		help:         help.New(),
		input:        input,
		editor:       editor,
		selected:     make(map[int]bool),
		focus:        focusInput,
		lastClickRow: -1,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.apply(ctl.StartupLoad(ctx))
	return m
}

// Err returns the unexpected condition that terminated the program, if any.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	var cmd tea.Cmd
	if m.prompt != nil && m.prompt.Kind == controller.PromptInput {
		m.editor, cmd = m.editor.Update(msg)
	} else if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.notice != nil:
		return m.dismissNotice()
	case m.prompt != nil && key.Matches(msg, m.keys.ForceQuit):
		// ctrl+c always reaches the exit dialog; an open prompt is abandoned.
		return m.dispatch(controller.CloseRequested{})
	case m.prompt != nil:
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.dispatch(controller.CloseRequested{})
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(controller.SaveRequested{})
	case key.Matches(msg, m.keys.Load):
		return m.dispatch(controller.LoadRequested{})
	case key.Matches(msg, m.keys.Clear):
		return m.dispatch(controller.ClearRequested{})
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.dispatch(controller.AddRequested{Text: m.input.Value()})
	case msg.Type == tea.KeyEsc:
		m.setFocus(focusList)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.dispatch(controller.CloseRequested{})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.tasks) - 1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected(m.cursor)
	case key.Matches(msg, m.keys.SelectAll):
		for i := range m.tasks {
			m.selected[i] = true
		}
	case key.Matches(msg, m.keys.Edit):
		return m.dispatch(controller.EditRequested{Selection: m.selection()})
	case key.Matches(msg, m.keys.Delete):
		return m.dispatch(controller.DeleteRequested{Selection: m.selection()})
	case key.Matches(msg, m.keys.NewTask):
		m.setFocus(focusInput)
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch m.prompt.Kind {
	case controller.PromptConfirm:
		switch msg.String() {
		case "y", "Y", "enter":
			return m.dispatch(controller.Confirmed{Yes: true})
		case "n", "N", "esc":
			return m.dispatch(controller.Confirmed{Yes: false})
		}
	case controller.PromptInput:
		switch msg.Type {
		case tea.KeyEnter:
			return m.dispatch(controller.InputSubmitted{Text: m.editor.Value()})
		case tea.KeyEsc:
			return m.dispatch(controller.InputSubmitted{Cancelled: true})
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	case controller.PromptExit:
		switch msg.String() {
		case "s", "S", "y", "Y", "enter":
			return m.dispatch(controller.ExitChosen{Choice: controller.SaveAndExit})
		case "d", "D", "n", "N":
			return m.dispatch(controller.ExitChosen{Choice: controller.ExitWithoutSaving})
		case "c", "C", "esc":
			return m.dispatch(controller.ExitChosen{Choice: controller.CancelExit})
		}
	}
	return nil
}

func (m *Model) dismissNotice() tea.Cmd {
	m.notice = nil
	if m.quitAfterNotice {
		return tea.Quit
	}
	return nil
}

// dispatch hands ev to the controller and applies the reply.
func (m *Model) dispatch(ev controller.Event) tea.Cmd {
	// Whatever prompt was showing has been answered or abandoned.
	m.prompt = nil
	m.editor.Blur()

	reply, err := m.ctl.Handle(m.ctx, ev)
	if err != nil {
		m.err = fmt.Errorf("handle %T: %w", ev, err)
		m.logger.Error("unexpected condition, terminating", "error", m.err)
		return tea.Quit
	}
	return m.apply(reply)
}

func (m *Model) apply(r controller.Reply) tea.Cmd {
	m.tasks = r.Tasks
	m.status = r.Status

	if r.Changed {
		clear(m.selected)
		m.lastClickRow = -1
	}
	m.moveCursor(m.cursor)

	if r.ClearInput {
		m.input.Reset()
	}

	var cmd tea.Cmd
	if r.Prompt != nil {
		m.prompt = r.Prompt
		if r.Prompt.Kind == controller.PromptInput {
			m.editor.SetValue(r.Prompt.Initial)
			m.editor.CursorEnd()
			cmd = m.editor.Focus()
		}
	}
	if r.Notice != nil {
		m.notice = r.Notice
	}

	if r.Quit {
		if m.notice != nil {
			// Let the user read the failure before the window goes away.
			m.quitAfterNotice = true
			return nil
		}
		return tea.Quit
	}
	return cmd
}

// selection returns the selected rows in ascending order.
func (m *Model) selection() []int {
	rows := make([]int, 0, len(m.selected))
	for i, ok := range m.selected {
		if ok && i < len(m.tasks) {
			rows = append(rows, i)
		}
	}
	slices.Sort(rows)
	return rows
}

func (m *Model) toggleSelected(row int) {
	if row < 0 || row >= len(m.tasks) {
		return
	}
	if m.selected[row] {
		delete(m.selected, row)
	} else {
		m.selected[row] = true
	}
}

// selectOnly moves to row and makes it the only selected row.
func (m *Model) selectOnly(row int) {
	if len(m.tasks) == 0 {
		return
	}
	m.moveCursor(row)
	clear(m.selected)
	m.selected[m.cursor] = true
}

// moveCursor moves to row, clamped to the list. The selection is unchanged.
func (m *Model) moveCursor(row int) {
	m.cursor = max(0, min(row, len(m.tasks)-1))
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.tasks)-visible))
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.setFocus(focusList)
	} else {
		m.setFocus(focusInput)
	}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// visibleRows is the height of the list area.
func (m *Model) visibleRows() int {
	if m.height == 0 {
		return defaultVisibleRows
	}
	reserved := reservedRows
	if !m.statusBesideButtons() {
		reserved++
	}
	return max(minVisibleRows, m.height-reserved)
}
