package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/tui"
)

const (
	defaultTextAreaWidth  = 60
	defaultTextAreaHeight = 6
)

// TextAreaModel is a multi-line input for long text and for JSON
// properties. Enter inserts a newline; the owner decides which key commits.
type TextAreaModel struct {
	area        textarea.Model
	label       string
	helpText    string
	validator   func(string) error
	lastError   error
	dirty       bool
	originalVal string
}

type TextAreaOption func(*TextAreaModel)

func WithAreaHelp(h string) TextAreaOption {
	return func(m *TextAreaModel) {
		m.helpText = h
	}
}

func WithAreaValidator(v func(string) error) TextAreaOption {
	return func(m *TextAreaModel) {
		m.validator = v
	}
}

func WithAreaSize(width, height int) TextAreaOption {
	return func(m *TextAreaModel) {
		m.area.SetWidth(width)
		m.area.SetHeight(height)
	}
}

func NewTextArea(label string, opts ...TextAreaOption) TextAreaModel {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(defaultTextAreaWidth)
	area.SetHeight(defaultTextAreaHeight)

	m := TextAreaModel{
		area:  area,
		label: label,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m TextAreaModel) Init() tea.Cmd {
	return nil
}

func (m TextAreaModel) Update(msg tea.Msg) (TextAreaModel, tea.Cmd) {
	if !m.area.Focused() {
		return m, nil
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	m.dirty = m.area.Value() != m.originalVal
	m.validate()

	return m, cmd
}

func (m *TextAreaModel) validate() {
	if m.validator != nil {
		m.lastError = m.validator(m.area.Value())
	}
}

func (m TextAreaModel) View() string {
	style := tui.StyleFormInput
	if m.area.Focused() {
		style = tui.StyleFormInputFocused
		if m.lastError != nil {
			style = tui.StyleFormInputError
		}
	}

	label := tui.StyleFormLabel.Render(m.label)
	areaView := style.Render(m.area.View())

	var helpView string
	if m.lastError != nil {
		helpView = tui.StyleError.Render(m.lastError.Error())
	} else if m.helpText != "" {
		helpView = tui.StyleFormHelp.Render(m.helpText)
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, areaView, helpView)
}

func (m *TextAreaModel) SetValue(v string) {
	m.area.SetValue(v)
	m.originalVal = v
	m.dirty = false
	m.validate()
}

func (m TextAreaModel) Value() string {
	return m.area.Value()
}

func (m TextAreaModel) IsDirty() bool {
	return m.dirty
}

// Err returns the last validation error.
func (m TextAreaModel) Err() error {
	return m.lastError
}

func (m *TextAreaModel) SetWidth(width int) {
	m.area.SetWidth(width)
}

func (m *TextAreaModel) Focus() tea.Cmd {
	return m.area.Focus()
}

func (m *TextAreaModel) Blur() {
	m.area.Blur()
}

func (m TextAreaModel) Focused() bool {
	return m.area.Focused()
}
