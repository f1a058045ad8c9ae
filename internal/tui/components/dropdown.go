package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/tui"
)

type DropdownOption struct {
	Value string
	Label string
}

// DropdownChosenMsg is sent when an option is confirmed in the expanded list.
type DropdownChosenMsg struct {
	Label string
	Value string
}

// DropdownModel picks one value from a fixed list. A value that matches no
// option is kept and shown as-is until another option is chosen.
type DropdownModel struct {
	label    string
	helpText string
	options  []DropdownOption
	selected int
	cursor   int
	raw      string
	expanded bool
	focused  bool
	dirty    bool
	original int
}

func NewDropdown(label string, options []DropdownOption, helpText string) DropdownModel {
	return DropdownModel{
		label:    label,
		options:  options,
		helpText: helpText,
		selected: -1,
		original: -1,
	}
}

func (m DropdownModel) Init() tea.Cmd {
	return nil
}

func (m DropdownModel) Update(msg tea.Msg) (DropdownModel, tea.Cmd) {
	if !m.focused || len(m.options) == 0 {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "enter", " ":
		if !m.expanded {
			m.expanded = true
			m.cursor = max(m.selected, 0)
			return m, nil
		}
		m.expanded = false
		m.selected = m.cursor
		m.dirty = m.selected != m.original
		chosen := m.options[m.selected]
		return m, func() tea.Msg {
			return DropdownChosenMsg{Label: m.label, Value: chosen.Value}
		}
	case "esc":
		m.expanded = false
	case "up", "k":
		if m.expanded && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.expanded && m.cursor < len(m.options)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m DropdownModel) View() string {
	label := tui.StyleFormLabel.Render(m.label)

	var current string
	switch {
	case len(m.options) == 0:
		current = "No options"
	case m.selected >= 0:
		current = m.options[m.selected].Label
	case m.raw != "":
		current = m.raw + " (not an option)"
	default:
		current = "Select..."
	}

	style := tui.StyleFormInput
	if m.focused {
		style = tui.StyleFormInputFocused
	}

	arrow := " ▼"
	if m.expanded {
		arrow = " ▲"
	}

	selectedView := style.Render(current + arrow)

	var optionsView string
	if m.expanded {
		opts := make([]string, 0, len(m.options))
		for i, opt := range m.options {
			prefix := "  "
			optStyle := tui.StyleMuted
			if i == m.cursor {
				prefix = "▸ "
				optStyle = tui.StyleHighlight
			}
			opts = append(opts, optStyle.Render(prefix+opt.Label))
		}
		optionsView = tui.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, opts...))
	}

	helpView := tui.StyleFormHelp.Render(m.helpText)

	return lipgloss.JoinVertical(lipgloss.Left, label, selectedView, optionsView, helpView)
}

// SetValue selects the option holding value. Unknown values leave nothing
// selected.
func (m *DropdownModel) SetValue(value string) {
	m.raw = value
	m.selected = -1
	for i, opt := range m.options {
		if opt.Value == value {
			m.selected = i
			break
		}
	}
	m.original = m.selected
	m.cursor = max(m.selected, 0)
	m.dirty = false
}

// Value returns the selected option's value, or the value given to SetValue
// when it matched no option.
func (m DropdownModel) Value() string {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected].Value
	}
	return m.raw
}

func (m DropdownModel) Selected() int {
	return m.selected
}

func (m DropdownModel) Expanded() bool {
	return m.expanded
}

func (m DropdownModel) Empty() bool {
	return len(m.options) == 0
}

func (m DropdownModel) IsDirty() bool {
	return m.dirty
}

func (m *DropdownModel) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *DropdownModel) Blur() {
	m.focused = false
	m.expanded = false
}

func (m DropdownModel) Focused() bool {
	return m.focused
}
