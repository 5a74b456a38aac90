package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/controller"
	"todo/internal/output"
)

// Screen layout, in rows from the top. Mouse hit-testing depends on it.
const (
	titleRow = 0
	inputRow = 1
	listTop  = 3

	// rows outside the list: title, input, blank, blank, buttons, help,
	// plus room for the tallest dialog box (the edit prompt) below the help
	// line. A narrow window moves the status to a row of its own.
	reservedRows = listTop + 3 + dialogRows
	dialogRows   = 6
)

const windowTitle = "To-Do"

type action int

const (
	actionAdd action = iota
	actionDelete
	actionEdit
	actionSave
	actionLoad
	actionClear
)

type button struct {
	label  string
	action action
}

var buttons = []button{
	{"Add", actionAdd},
	{"Delete", actionDelete},
	{"Edit", actionEdit},
	{"Save", actionSave},
	{"Load", actionLoad},
	{"Clear All", actionClear},
}

// buttonText is the on-screen form of a button, without styling.
func buttonText(b button) string {
	return "[ " + b.label + " ]"
}

// buttonsRow is the row holding the buttons and the status readout.
func (m *Model) buttonsRow() int {
	return listTop + m.visibleRows() + 1
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(windowTitle))
	b.WriteByte('\n')

	b.WriteString(labelStyle.Render("New task: "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	m.renderList(&b)
	b.WriteByte('\n')

	m.renderButtons(&b)
	b.WriteByte('\n')

	b.WriteString(m.help.View(m.keys))

	if dialog := m.renderDialog(); dialog != "" {
		b.WriteByte('\n')
		b.WriteString(dialog)
	}
	return b.String()
}

func (m *Model) renderList(b *strings.Builder) {
	visible := m.visibleRows()
	for i := 0; i < visible; i++ {
		row := m.offset + i
		switch {
		case row < len(m.tasks):
			b.WriteString(m.renderRow(row))
		case row == 0:
			b.WriteString(emptyStyle.Render("  (no tasks)"))
		}
		b.WriteByte('\n')
	}
}

func (m *Model) renderRow(row int) string {
	pointer := "  "
	if row == m.cursor && m.focus == focusList {
		pointer = "> "
	}
	check := "[ ] "
	if m.selected[row] {
		check = "[x] "
	}
	line := pointer + check + output.DisplayText(m.tasks[row])
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}

	switch {
	case m.selected[row]:
		return selectedStyle.Render(line)
	case row == m.cursor && m.focus == focusList:
		return cursorStyle.Render(line)
	default:
		return line
	}
}

const statusGap = "   "

func (m *Model) renderButtons(b *strings.Builder) {
	for i, btn := range buttons {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(buttonStyle.Render(buttonText(btn)))
	}
	if m.statusBesideButtons() {
		b.WriteString(statusGap)
	} else {
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.status))
}

// buttonsWidth is the unstyled width of the buttons row without the status.
func buttonsWidth() int {
	w := len(buttons) - 1
	for _, btn := range buttons {
		w += len(buttonText(btn))
	}
	return w
}

// statusBesideButtons reports whether the status fits on the buttons row.
func (m *Model) statusBesideButtons() bool {
	return m.width == 0 || buttonsWidth()+len(statusGap)+len(m.status) <= m.width
}

func (m *Model) renderDialog() string {
	var title, body, hint string
	color := severityColor(controller.SeverityInfo)

	switch {
	case m.notice != nil:
		title = m.notice.Title
		body = m.notice.Text
		hint = "press any key"
		color = severityColor(m.notice.Severity)
	case m.prompt != nil:
		title = m.prompt.Title
		body = m.prompt.Text
		switch m.prompt.Kind {
		case controller.PromptConfirm:
			hint = "[y] Yes  [n] No"
		case controller.PromptInput:
			body += "\n" + m.editor.View()
			hint = "enter to save, esc to cancel"
		case controller.PromptExit:
			hint = "[s] Save and exit  [d] Exit without saving  [c] Cancel"
		}
	default:
		return ""
	}

	content := dialogTitleStyle.Render(title) + "\n" + body + "\n" + hintStyle.Render(hint)
	return dialogStyle.BorderForeground(color).Render(content)
}
