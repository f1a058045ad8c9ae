package dashboard

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/schema"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/tui/components"
)

type FocusPane int

const (
	FocusFields FocusPane = iota
	FocusSidebar
	FocusProperty
	FocusDraft
)

const (
	modalQuit   = "quit"
	modalImport = "import"
	modalExport = "export"
)

const (
	sidebarWidth    = 28
	chromeHeight    = 7
	minContentWidth = 20
	minListHeight   = 5
)

// DashboardModel is the interactive field editor. Every change goes through
// the controller; the model only keeps the latest state and its view.
type DashboardModel struct {
	ctrl   *editor.Controller
	state  editor.State
	view   editor.View
	logger *logging.Logger

	copyIndicator time.Duration
	clipboard     ClipboardWriter
	exportPath    string
	openPath      string

	keys         KeyMap
	help         help.Model
	sidebar      SidebarModel
	fields       FieldListModel
	statusbar    StatusBarModel
	property     *PropertyEditor
	draft        DraftForm
	copyButton   components.ButtonModel
	quitModal    components.ModalModel
	importPrompt components.ModalModel
	exportPrompt components.ModalModel

	focusPane       FocusPane
	width           int
	height          int
	quitting        bool
	quitAfterExport bool
	helpVisible     bool
}

type Option func(*DashboardModel)

// WithClipboard replaces the system clipboard, e.g. in tests.
func WithClipboard(w ClipboardWriter) Option {
	return func(m *DashboardModel) {
		m.clipboard = w
	}
}

// WithSchemaFile imports path when the program starts, or, if it does not
// exist yet, proposes it as the export target.
func WithSchemaFile(path string) Option {
	return func(m *DashboardModel) {
		if path == "" {
			return
		}
		if _, err := os.Stat(path); err == nil {
			m.openPath = path
		}
		m.exportPath = path
	}
}

func NewDashboard(cfg config.EditorConfig, logger *logging.Logger, opts ...Option) (DashboardModel, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	visible, err := cfg.Visibility()
	if err != nil {
		return DashboardModel{}, err
	}

	ctrl := editor.NewController(logger, cfg.Indent)
	state := editor.NewState(visible)

	m := DashboardModel{
		ctrl:          ctrl,
		state:         state,
		logger:        logger.Named("tui"),
		copyIndicator: cfg.GetCopyIndicator(),
		clipboard:     SystemClipboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		fields:        NewFieldList(80, 20),
		statusbar:     NewStatusBar(),
		copyButton:    components.NewButton(editor.CopyLabel, nil, components.WithButtonStyle(components.ButtonStyleSecondary)),
		quitModal: components.NewConfirmModal(modalQuit,
			"Unsaved Changes",
			"The schema has changes that were not exported. What would you like to do?"),
		importPrompt: components.NewPromptModal(modalImport, "Import schema", "JSON file to load", "fields.json"),
		exportPrompt: components.NewPromptModal(modalExport, "Export schema", "Write JSON to", "fields.json"),
		focusPane:     FocusFields,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.exportPath == "" {
		m.exportPath = cfg.SchemaFile
	}

	m.view = ctrl.Render(state)
	m.sidebar = NewSidebar(m.view.Visibility)
	m.refresh()
	return m, nil
}

func (m DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.openPath != "" {
		cmds = append(cmds, readSchemaCmd(m.openPath))
	}
	return tea.Batch(cmds...)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sidebar, _ = m.sidebar.Update(msg)
		m.statusbar, _ = m.statusbar.Update(msg)
		m.quitModal.SetSize(msg.Width, msg.Height)
		m.importPrompt.SetSize(msg.Width, msg.Height)
		m.exportPrompt.SetSize(msg.Width, msg.Height)
		m.fields.SetSize(m.contentWidth(), max(msg.Height-chromeHeight, minListHeight))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.ModalResultMsg:
		return m.handleModal(msg)

	case components.ToggleChangedMsg:
		if p, ok := schema.ParseProperty(msg.Label); ok {
			_ = m.apply(editor.ToggleVisibility{Property: p})
		}
		return m, nil

	case components.DropdownChosenMsg:
		if m.focusPane == FocusProperty && m.property != nil {
			cmd, _ := m.property.Update(msg)
			return m, cmd
		}
		return m, nil

	case propertyCommitMsg:
		return m.commitProperty(msg)

	case draftSubmitMsg:
		return m.submitDraft()

	case schemaLoadedMsg:
		return m.importLoaded(msg)

	case schemaWrittenMsg:
		return m.exportWritten(msg)

	case copyResultMsg:
		if msg.Err != nil {
			m.logger.Warn("Clipboard write failed", logging.Error(msg.Err))
			return m, ShowError(errorText(msg.Err))
		}
		_ = m.apply(editor.CopySucceeded{})
		return m, expireCopyCmd(m.copyIndicator, m.state.CopyGeneration)

	case copyExpiredMsg:
		_ = m.apply(editor.CopyExpired{Generation: msg.Generation})
		return m, nil

	case quitAfterExportMsg:
		m.quitting = true
		return m, tea.Quit

	case ShowMessageMsg, ClearMessageMsg:
		m.statusbar, _ = m.statusbar.Update(msg)
		return m, nil
	}

	return m, nil
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if modal := m.activeModal(); modal != nil {
		updated, cmd := modal.Update(msg)
		*modal = updated
		return m, cmd
	}

	if m.helpVisible {
		switch msg.String() {
		case "?", "esc", "q":
			m.helpVisible = false
		}
		return m, nil
	}

	switch m.focusPane {
	case FocusProperty:
		cmd, done := m.property.Update(msg)
		if done {
			m.closeProperty()
		}
		return m, cmd

	case FocusDraft:
		if msg.String() == "esc" && !m.draft.Expanded() {
			m.draft.Blur()
			_ = m.apply(editor.CancelDraft{})
			m.focusPane = FocusFields
			return m, nil
		}
		return m, m.draft.Update(msg)

	case FocusSidebar:
		switch msg.String() {
		case "esc", "tab", "shift+tab", "v":
			m.focusFields()
			return m, nil
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.state.Modified {
			m.quitModal.Show("")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true

	case key.Matches(msg, m.keys.MoveUp):
		m.moveField(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveField(1)

	case key.Matches(msg, m.keys.Up):
		m.fields.MoveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.fields.MoveCursor(1)

	case key.Matches(msg, m.keys.PrevProp):
		m.fields.MoveProp(-1)

	case key.Matches(msg, m.keys.NextProp):
		m.fields.MoveProp(1)

	case key.Matches(msg, m.keys.Edit):
		return m, m.openProperty()

	case key.Matches(msg, m.keys.NewField):
		return m, m.openDraft()

	case key.Matches(msg, m.keys.Visibility):
		m.focusPane = FocusSidebar
		m.fields.SetFocused(false)
		return m, m.sidebar.SetFocused(true)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copy()

	case key.Matches(msg, m.keys.Import):
		return m, m.importPrompt.Show(m.state.Source)

	case key.Matches(msg, m.keys.Export):
		return m, m.exportPrompt.Show(m.exportTarget())
	}

	return m, nil
}

func (m DashboardModel) handleModal(msg components.ModalResultMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case modalQuit:
		switch msg.Action {
		case components.ModalActionExport:
			m.quitAfterExport = true
			return m, m.exportPrompt.Show(m.exportTarget())
		case components.ModalActionDiscard:
			m.quitting = true
			return m, tea.Quit
		}

	case modalImport:
		if msg.Action == components.ModalActionConfirm && msg.Value != "" {
			return m, readSchemaCmd(msg.Value)
		}

	case modalExport:
		if msg.Action != components.ModalActionConfirm || msg.Value == "" {
			m.quitAfterExport = false
			return m, nil
		}
		text, err := m.ctrl.Export(m.state)
		if err != nil {
			m.quitAfterExport = false
			return m, ShowError(errorText(err))
		}
		return m, writeSchemaCmd(msg.Value, text)
	}
	return m, nil
}

func (m DashboardModel) importLoaded(msg schemaLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("Schema file unreadable", logging.String("path", msg.Path), logging.Error(msg.Err))
		return m, ShowError(errorText(msg.Err))
	}

	if err := m.apply(editor.ImportSchema{Source: msg.Path, Text: msg.Text}); err != nil {
		return m, ShowError(errorText(err))
	}

	m.fields.Select(0)
	m.exportPath = msg.Path
	report := m.state.LastImport
	if !report.Clean() {
		return m, ShowInfo(report.String())
	}
	return m, ShowSuccess(fmt.Sprintf("Imported %s from %s", pluralFields(report.Fields), msg.Path))
}

func (m DashboardModel) exportWritten(msg schemaWrittenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.quitAfterExport = false
		m.logger.Error("Schema export failed", logging.String("path", msg.Path), logging.Error(msg.Err))
		return m, ShowError(errorText(msg.Err))
	}

	_ = m.apply(editor.SchemaExported{Path: msg.Path})
	m.exportPath = msg.Path
	if m.quitAfterExport {
		return m, func() tea.Msg { return quitAfterExportMsg{} }
	}
	return m, ShowSuccess("Exported to " + msg.Path)
}

func (m *DashboardModel) commitProperty(msg propertyCommitMsg) (tea.Model, tea.Cmd) {
	err := m.apply(editor.EditProperty{Index: msg.Index, Property: msg.Property, Input: msg.Input})
	if err != nil {
		if !errors.Is(err, errors.CodeMalformedOptions) {
			m.closeProperty()
		}
		return *m, ShowError(errorText(err))
	}
	m.closeProperty()
	return *m, ShowSuccess(fmt.Sprintf("Updated %s of #%d", msg.Property, msg.Index+1))
}

func (m *DashboardModel) submitDraft() (tea.Model, tea.Cmd) {
	for _, ev := range m.draft.Edits() {
		if err := m.apply(ev); err != nil {
			return *m, ShowError(errorText(err))
		}
	}

	id := m.state.Draft.ID
	if err := m.apply(editor.SubmitDraft{}); err != nil {
		return *m, ShowError(errorText(err))
	}

	m.draft.Blur()
	m.focusFields()
	m.fields.Select(m.state.Fields.Len() - 1)
	return *m, ShowSuccess("Added field " + id)
}

// apply dispatches ev and, when the controller accepts it, adopts the new
// state.
func (m *DashboardModel) apply(ev editor.Event) error {
	next, err := m.ctrl.Dispatch(m.state, ev)
	if err != nil {
		return err
	}
	m.state = next
	m.refresh()
	return nil
}

func (m *DashboardModel) refresh() {
	m.view = m.ctrl.Render(m.state)
	m.fields.SetRows(m.view.Rows)
	m.sidebar.Sync(m.view.Visibility)
	m.copyButton.SetLabel(m.view.CopyLabel)
	if m.view.Copied {
		m.copyButton.SetStyle(components.ButtonStyleSuccess)
	} else {
		m.copyButton.SetStyle(components.ButtonStyleSecondary)
	}
	m.statusbar.SetDocument(m.view.Source, len(m.view.Rows), m.view.Modified)
}

func (m *DashboardModel) moveField(delta int) {
	from := m.fields.Cursor()
	to := from + delta
	if to < 0 || to >= m.state.Fields.Len() {
		return
	}
	if err := m.apply(editor.MoveField{From: from, To: to}); err == nil {
		m.fields.Select(to)
	}
}

func (m *DashboardModel) openProperty() tea.Cmd {
	row, w, ok := m.fields.SelectedWidget()
	if !ok {
		return nil
	}
	m.property = NewPropertyEditor(row.Index, row.Heading, w, m.contentWidth())
	m.focusPane = FocusProperty
	m.fields.SetFocused(false)
	return m.property.Focus()
}

func (m *DashboardModel) closeProperty() {
	m.property = nil
	m.focusFields()
}

func (m *DashboardModel) openDraft() tea.Cmd {
	_ = m.apply(editor.OpenDraft{})
	m.draft = NewDraftForm(m.state.Draft)
	m.focusPane = FocusDraft
	m.fields.SetFocused(false)
	return m.draft.Focus()
}

func (m *DashboardModel) focusFields() {
	m.focusPane = FocusFields
	m.sidebar.SetFocused(false)
	m.fields.SetFocused(true)
}

func (m DashboardModel) copy() tea.Cmd {
	text, err := m.ctrl.Export(m.state)
	if err != nil {
		return ShowError(errorText(err))
	}
	return copyCmd(m.clipboard, text)
}

func (m *DashboardModel) activeModal() *components.ModalModel {
	for _, modal := range []*components.ModalModel{&m.quitModal, &m.importPrompt, &m.exportPrompt} {
		if modal.Visible() {
			return modal
		}
	}
	return nil
}

func (m DashboardModel) exportTarget() string {
	if m.exportPath != "" {
		return m.exportPath
	}
	return m.state.Source
}

func (m DashboardModel) contentWidth() int {
	return max(m.width-sidebarWidth-4, minContentWidth)
}

func (m DashboardModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if modal := m.activeModalView(); modal != "" {
		return modal
	}

	if m.helpVisible {
		return m.renderHelp()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		tui.StyleTitle.Render("Field Editor"), "  ", m.copyButton.View())

	var content string
	switch {
	case m.focusPane == FocusProperty && m.property != nil:
		content = m.property.View()
	case m.focusPane == FocusDraft:
		content = m.draft.View()
	default:
		content = m.fields.View()
	}
	content = tui.StyleSectionContent.Width(m.contentWidth()).Render(content)

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), content)
	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, m.help.View(m.keys), m.statusbar.View())
}

func (m DashboardModel) activeModalView() string {
	for _, modal := range []components.ModalModel{m.quitModal, m.importPrompt, m.exportPrompt} {
		if modal.Visible() {
			return modal.View()
		}
	}
	return ""
}

func (m DashboardModel) renderHelp() string {
	title := tui.StyleSectionHeader.Render("Field Editor keys")
	body := m.help.FullHelpView(m.keys.FullHelp())
	footer := tui.StyleMuted.Render("Press ? or Esc to close help")
	return tui.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer))
}

// State returns the current editor state.
func (m DashboardModel) State() editor.State {
	return m.state
}

func (m DashboardModel) FocusPane() FocusPane {
	return m.focusPane
}
