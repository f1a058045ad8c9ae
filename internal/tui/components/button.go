package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/tui"
)

type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = iota
	ButtonStyleSecondary
	ButtonStyleSuccess
)

// ButtonModel runs onPressCmd on enter or space. The label can change after
// creation, which is how the copy button shows its confirmation.
type ButtonModel struct {
	label      string
	helpText   string
	focused    bool
	style      ButtonStyle
	onPressCmd func() tea.Msg
}

type ButtonOption func(*ButtonModel)

func WithButtonStyle(style ButtonStyle) ButtonOption {
	return func(b *ButtonModel) {
		b.style = style
	}
}

func WithButtonHelp(text string) ButtonOption {
	return func(b *ButtonModel) {
		b.helpText = text
	}
}

func NewButton(label string, onPressCmd func() tea.Msg, opts ...ButtonOption) ButtonModel {
	b := ButtonModel{
		label:      label,
		onPressCmd: onPressCmd,
		style:      ButtonStylePrimary,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (m ButtonModel) Init() tea.Cmd {
	return nil
}

func (m ButtonModel) Update(msg tea.Msg) (ButtonModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			return m, m.Press()
		}
	}
	return m, nil
}

// Press returns the button's command regardless of focus.
func (m ButtonModel) Press() tea.Cmd {
	if m.onPressCmd == nil {
		return nil
	}
	return m.onPressCmd
}

func (m ButtonModel) View() string {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)

	color := tui.ColorPrimary
	switch m.style {
	case ButtonStyleSecondary:
		color = tui.ColorSubtle
	case ButtonStyleSuccess:
		color = tui.ColorSuccess
	}

	var style lipgloss.Style
	if m.focused {
		style = base.
			Background(color).
			Foreground(lipgloss.Color("#FFFFFF"))
	} else {
		style = base.
			Border(lipgloss.NormalBorder()).
			BorderForeground(color).
			Foreground(color)
	}

	buttonView := style.Render(m.label)

	if m.helpText != "" {
		return lipgloss.JoinVertical(lipgloss.Left, buttonView, tui.StyleFormHelp.Render(m.helpText))
	}
	return buttonView
}

func (m *ButtonModel) SetLabel(label string) {
	m.label = label
}

func (m ButtonModel) Label() string {
	return m.label
}

func (m *ButtonModel) SetStyle(style ButtonStyle) {
	m.style = style
}

func (m *ButtonModel) Focus() tea.Cmd {
	m.focused = true
	return nil
}

func (m *ButtonModel) Blur() {
	m.focused = false
}

func (m ButtonModel) Focused() bool {
	return m.focused
}

func (m ButtonModel) IsDirty() bool {
	return false
}
