package dashboard

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/tui"
)

type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageSuccess
	MessageError
)

// StatusBarModel shows the schema source, the modified flag and the last
// message.
type StatusBarModel struct {
	source      string
	fields      int
	modified    bool
	lastMessage string
	messageType MessageType
	width       int
}

func NewStatusBar() StatusBarModel {
	return StatusBarModel{}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case ShowMessageMsg:
		m.lastMessage = msg.Text
		m.messageType = msg.Type
	case ClearMessageMsg:
		m.lastMessage = ""
		m.messageType = MessageNone
	}
	return m, nil
}

func (m StatusBarModel) View() string {
	source := m.source
	if source == "" {
		source = "untitled"
	}
	sourceText := tui.StyleStatusSource.Render(tui.IconFile + " " + source)

	var modifiedText string
	if m.modified {
		modifiedText = tui.StyleStatusModified.Render(" [Modified]")
	} else {
		modifiedText = tui.StyleStatusSaved.Render(" [Saved]")
	}
	countText := tui.StyleMuted.Render(" " + pluralFields(m.fields))

	var messageText string
	switch m.messageType {
	case MessageSuccess:
		messageText = tui.StyleSuccess.Render(m.lastMessage)
	case MessageError:
		messageText = tui.StyleError.Render(m.lastMessage)
	case MessageInfo:
		messageText = tui.StyleInfo.Render(m.lastMessage)
	}

	left := sourceText + modifiedText + countText
	spacer := max(m.width-lipgloss.Width(left)-lipgloss.Width(messageText)-2, 1)

	content := left + strings.Repeat(" ", spacer) + messageText
	return tui.StyleStatusBar.Width(m.width).Render(content)
}

// SetDocument updates the document part of the bar.
func (m *StatusBarModel) SetDocument(source string, fields int, modified bool) {
	m.source = source
	m.fields = fields
	m.modified = modified
}

func (m StatusBarModel) IsModified() bool {
	return m.modified
}

func (m StatusBarModel) Message() (string, MessageType) {
	return m.lastMessage, m.messageType
}

type ShowMessageMsg struct {
	Text string
	Type MessageType
}

type ClearMessageMsg struct{}

func pluralFields(n int) string {
	if n == 1 {
		return "1 field"
	}
	return strconv.Itoa(n) + " fields"
}
