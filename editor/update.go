package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/portal/input"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	rev := m.vp.Revision()
	for _, ev := range m.cfg.KeyMap.Translate(msg) {
		if m.cfg.ReadOnly && isEdit(ev.Combo) {
			continue
		}
		if out, ok := m.vp.Update(ev); ok {
			return m, emit(out)
		}
	}
	if m.vp.Revision() != rev && m.cfg.OnChange != nil {
		m.cfg.OnChange(m.changeEvent())
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.vp.Update(input.ScrollUp())
	case tea.MouseButtonWheelDown:
		m.vp.Update(input.ScrollDown())
	}
	return m, nil
}

func emit(out input.Message) tea.Cmd {
	return func() tea.Msg { return MessageMsg{Message: out} }
}

func isEdit(c input.KeyCombo) bool {
	switch c.Key {
	case input.KeyChar:
		return !c.Ctrl
	case input.KeyTab, input.KeyEnter, input.KeyBackspace, input.KeyDelete:
		return true
	}
	return false
}

func (m Model) changeEvent() ChangeEvent {
	return ChangeEvent{
		Line:   m.vp.Offset() + m.vp.Active(),
		Column: m.vp.CursorIndex().Display,
		Text:   m.vp.Text(),
	}
}
