package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/controller"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Dialogs are modal.
	if m.notice != nil || m.prompt != nil {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.cursor - 1)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.cursor + 1)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch {
	case msg.Y == inputRow:
		m.setFocus(focusInput)
		return nil
	case msg.Y == m.buttonsRow():
		if a, ok := buttonAt(msg.X); ok {
			return m.press(a)
		}
		return nil
	case msg.Y >= listTop && msg.Y < listTop+m.visibleRows():
		return m.clickRow(m.offset+msg.Y-listTop, msg.Ctrl)
	}
	return nil
}

// clickRow selects row, or toggles it with ctrl held. A second press on the
// same row within doubleClickThreshold edits it.
func (m *Model) clickRow(row int, toggle bool) tea.Cmd {
	if row < 0 || row >= len(m.tasks) {
		return nil
	}
	m.setFocus(focusList)

	now := m.clock.Now()
	if row == m.lastClickRow && now.Sub(m.lastClickAt) <= doubleClickThreshold {
		// Reset so a third press does not count as another double-click.
		m.lastClickRow = -1
		return m.dispatch(controller.RowActivated{Index: row})
	}
	m.lastClickRow = row
	m.lastClickAt = now

	if toggle {
		m.moveCursor(row)
		m.toggleSelected(row)
	} else {
		m.selectOnly(row)
	}
	return nil
}

// buttonAt returns the button under column x of the buttons row.
func buttonAt(x int) (action, bool) {
	start := 0
	for _, btn := range buttons {
		end := start + len(buttonText(btn))
		if x >= start && x < end {
			return btn.action, true
		}
		start = end + 1
	}
	return 0, false
}

// press performs a button's action.
func (m *Model) press(a action) tea.Cmd {
	switch a {
	case actionAdd:
		return m.dispatch(controller.AddRequested{Text: m.input.Value()})
	case actionDelete:
		return m.dispatch(controller.DeleteRequested{Selection: m.selection()})
	case actionEdit:
		return m.dispatch(controller.EditRequested{Selection: m.selection()})
	case actionSave:
		return m.dispatch(controller.SaveRequested{})
	case actionLoad:
		return m.dispatch(controller.LoadRequested{})
	case actionClear:
		return m.dispatch(controller.ClearRequested{})
	}
	return nil
}
