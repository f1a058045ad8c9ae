package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/fieldeditor/internal/tui"
)

// ToggleChangedMsg is sent whenever a toggle flips.
type ToggleChangedMsg struct {
	Label string
	Value bool
}

// ToggleModel is a one-line on/off item, drawn as an entry of a checklist.
type ToggleModel struct {
	label       string
	value       bool
	focused     bool
	dirty       bool
	originalVal bool
}

func NewToggle(label string, value bool) ToggleModel {
	return ToggleModel{
		label:       label,
		value:       value,
		originalVal: value,
	}
}

func (m ToggleModel) Init() tea.Cmd {
	return nil
}

func (m ToggleModel) Update(msg tea.Msg) (ToggleModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	next := m.value
	switch key.String() {
	case "enter", " ":
		next = !m.value
	case "y", "Y":
		next = true
	case "n", "N":
		next = false
	}
	if next == m.value {
		return m, nil
	}

	m.value = next
	m.dirty = m.value != m.originalVal
	label, value := m.label, m.value
	return m, func() tea.Msg {
		return ToggleChangedMsg{Label: label, Value: value}
	}
}

func (m ToggleModel) View() string {
	icon, style := tui.IconHidden, tui.StyleMuted
	if m.value {
		icon, style = tui.IconVisible, tui.StyleNavItemHover
	}

	prefix := "  "
	if m.focused {
		prefix = tui.StyleHighlight.Render("▸ ")
		style = tui.StyleNavItemActive
	}

	return prefix + style.Render(icon+" "+m.label)
}

func (m *ToggleModel) SetValue(v bool) {
	m.value = v
	m.originalVal = v
	m.dirty = false
}

func (m ToggleModel) Value() bool {
	return m.value
}

func (m ToggleModel) Label() string {
	return m.label
}

func (m ToggleModel) IsDirty() bool {
	return m.dirty
}

func (m *ToggleModel) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *ToggleModel) Blur() {
	m.focused = false
}

func (m ToggleModel) Focused() bool {
	return m.focused
}
