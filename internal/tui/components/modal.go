package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/tui"
)

type ModalAction int

const (
	ModalActionConfirm ModalAction = iota
	ModalActionExport
	ModalActionDiscard
	ModalActionCancel
)

// ModalResultMsg reports how the modal identified by ID was closed. Value
// holds the input of a prompt modal.
type ModalResultMsg struct {
	ID     string
	Action ModalAction
	Value  string
}

// ModalModel is a centred dialog. With an input it acts as a prompt: enter
// confirms the typed value and letter shortcuts are disabled.
type ModalModel struct {
	id          string
	title       string
	message     string
	input       *TextFieldModel
	visible     bool
	focusIndex  int
	width       int
	height      int
	showConfirm bool
	showExport  bool
	showDiscard bool
	showCancel  bool
}

type ModalOption func(*ModalModel)

func WithModalConfirm() ModalOption {
	return func(m *ModalModel) {
		m.showConfirm = true
	}
}

func WithModalExport() ModalOption {
	return func(m *ModalModel) {
		m.showExport = true
	}
}

func WithModalDiscard() ModalOption {
	return func(m *ModalModel) {
		m.showDiscard = true
	}
}

// WithModalInput turns the modal into a prompt around field.
func WithModalInput(field TextFieldModel) ModalOption {
	return func(m *ModalModel) {
		m.input = &field
		m.showConfirm = true
	}
}

func NewModal(id, title, message string, opts ...ModalOption) ModalModel {
	m := ModalModel{
		id:         id,
		title:      title,
		message:    message,
		showCancel: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewConfirmModal asks what to do with unsaved work.
func NewConfirmModal(id, title, message string) ModalModel {
	return NewModal(id, title, message,
		WithModalExport(),
		WithModalDiscard(),
	)
}

// NewPromptModal asks for a single line of text, e.g. a file path.
func NewPromptModal(id, title, label, placeholder string) ModalModel {
	field := NewTextField(label, WithPlaceholder(placeholder))
	return NewModal(id, title, "", WithModalInput(field))
}

func (m ModalModel) Init() tea.Cmd {
	return nil
}

func (m ModalModel) Update(msg tea.Msg) (ModalModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.input != nil {
			return m.updatePrompt(msg)
		}

		buttons := m.getButtons()
		buttonCount := len(buttons)

		switch msg.String() {
		case "left", "h", "shift+tab":
			m.focusIndex = (m.focusIndex - 1 + buttonCount) % buttonCount

		case "right", "l", "tab":
			m.focusIndex = (m.focusIndex + 1) % buttonCount

		case "enter", " ":
			return m.close(buttons[m.focusIndex], "")

		case "esc", "c":
			return m.close(ModalActionCancel, "")

		case "e":
			if m.showExport {
				return m.close(ModalActionExport, "")
			}

		case "d":
			if m.showDiscard {
				return m.close(ModalActionDiscard, "")
			}
		}
	}

	return m, nil
}

func (m ModalModel) updatePrompt(msg tea.KeyMsg) (ModalModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.close(ModalActionConfirm, strings.TrimSpace(m.input.Value()))
	case "esc":
		return m.close(ModalActionCancel, "")
	}

	updated, cmd := m.input.Update(msg)
	*m.input = updated
	return m, cmd
}

func (m ModalModel) close(action ModalAction, value string) (ModalModel, tea.Cmd) {
	m.visible = false
	if m.input != nil {
		m.input.Blur()
	}
	id := m.id
	return m, func() tea.Msg {
		return ModalResultMsg{ID: id, Action: action, Value: value}
	}
}

func (m ModalModel) getButtons() []ModalAction {
	var buttons []ModalAction
	if m.showConfirm {
		buttons = append(buttons, ModalActionConfirm)
	}
	if m.showExport {
		buttons = append(buttons, ModalActionExport)
	}
	if m.showDiscard {
		buttons = append(buttons, ModalActionDiscard)
	}
	if m.showCancel {
		buttons = append(buttons, ModalActionCancel)
	}
	return buttons
}

func (m ModalModel) View() string {
	if !m.visible {
		return ""
	}

	const minModalWidth = 30
	modalWidth := 56
	if m.width > 0 && m.width < modalWidth+10 {
		modalWidth = max(m.width-10, minModalWidth)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(tui.ColorPrimary).
		Bold(true).
		Width(modalWidth).
		Align(lipgloss.Center)

	messageStyle := lipgloss.NewStyle().
		Foreground(tui.ColorText).
		Width(modalWidth).
		Align(lipgloss.Center).
		Padding(1, 0)

	buttons := m.getButtons()
	buttonViews := make([]string, 0, len(buttons))

	for i, action := range buttons {
		var style lipgloss.Style
		if i == m.focusIndex && m.input == nil {
			style = lipgloss.NewStyle().
				Background(tui.ColorPrimary).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 2).
				Bold(true)
		} else {
			style = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(tui.ColorSubtle).
				Foreground(tui.ColorTextDim).
				Padding(0, 1)
		}

		text := m.getButtonLabel(action)
		if shortcut := m.getButtonShortcut(action); shortcut != "" {
			text = "[" + shortcut + "] " + text
		}
		buttonViews = append(buttonViews, style.Render(text))
	}

	buttonsContainer := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Center).
		Render(strings.Join(buttonViews, "  "))

	parts := []string{titleStyle.Render(m.title)}
	if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message))
	}
	if m.input != nil {
		parts = append(parts, m.input.View())
	}
	parts = append(parts, buttonsContainer)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tui.ColorPrimary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	if m.width > 0 && m.height > 0 {
		modal = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	return modal
}

func (m ModalModel) getButtonLabel(action ModalAction) string {
	switch action {
	case ModalActionConfirm:
		return "OK"
	case ModalActionExport:
		return "Export"
	case ModalActionDiscard:
		return "Discard"
	case ModalActionCancel:
		return "Cancel"
	}
	return ""
}

func (m ModalModel) getButtonShortcut(action ModalAction) string {
	if m.input != nil {
		switch action {
		case ModalActionConfirm:
			return "Enter"
		case ModalActionCancel:
			return "Esc"
		}
		return ""
	}
	switch action {
	case ModalActionExport:
		return "E"
	case ModalActionDiscard:
		return "D"
	case ModalActionCancel:
		return "C"
	}
	return ""
}

// Show opens the modal. A prompt starts out holding value.
func (m *ModalModel) Show(value string) tea.Cmd {
	m.visible = true
	m.focusIndex = 0
	if m.input != nil {
		m.input.SetValue(value)
		return m.input.Focus()
	}
	return nil
}

func (m *ModalModel) Hide() {
	m.visible = false
}

func (m ModalModel) Visible() bool {
	return m.visible
}

func (m ModalModel) ID() string {
	return m.id
}

func (m *ModalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
