package dashboard

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/schema"
	testHelpers "github.com/user/fieldeditor/internal/testing"
	"github.com/user/fieldeditor/internal/tui/components"
)

func newTestDashboard(t *testing.T, opts ...Option) DashboardModel {
	t.Helper()
	m, err := NewDashboard(config.DefaultConfig().Editor, logging.NewNopLogger(), opts...)
	if err != nil {
		t.Fatalf("NewDashboard() error = %v", err)
	}
	return m
}

func loadedDashboard(t *testing.T, opts ...Option) DashboardModel {
	t.Helper()
	m := newTestDashboard(t, opts...)
	m, _ = send(m, schemaLoadedMsg{Path: "fields.json", Text: testHelpers.SampleSchema()})
	if m.State().Fields.Len() != 6 {
		t.Fatalf("sample import gave %d fields", m.State().Fields.Len())
	}
	return m
}

func send(m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(DashboardModel), cmd
}

func press(m DashboardModel, keys ...string) DashboardModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = send(m, msg)
	}
	return m
}

// pressCmd sends one key and returns the command it produced.
func pressCmd(m DashboardModel, k string) (DashboardModel, tea.Cmd) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	}
	return send(m, msg)
}

func statusOf(t *testing.T, cmd tea.Cmd) ShowMessageMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a status command")
	}
	msg, ok := cmd().(ShowMessageMsg)
	if !ok {
		t.Fatalf("Expected ShowMessageMsg, got %T", cmd())
	}
	return msg
}

func TestDashboard_NewDashboard_InitializesCorrectly(t *testing.T) {
	m := newTestDashboard(t)

	if m.FocusPane() != FocusFields {
		t.Error("Expected initial focus on the field list")
	}
	if m.State().Fields.Len() != 0 {
		t.Error("Expected an empty collection")
	}
	if got := m.State().Visible.String(); got != "id,type,label,default" {
		t.Errorf("Visible = %q", got)
	}
	if m.Init() == nil {
		t.Error("Init should return a command")
	}
}

func TestDashboard_NewDashboard_RejectsUnknownProperty(t *testing.T) {
	cfg := config.DefaultConfig().Editor
	cfg.VisibleProperties = []string{"id", "colour"}

	if _, err := NewDashboard(cfg, nil); err == nil {
		t.Error("Expected an error for an unknown visible property")
	}
}

func TestDashboard_WithSchemaFile_MissingFileBecomesExportTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.json")

	m := newTestDashboard(t, WithSchemaFile(path))

	if m.openPath != "" {
		t.Errorf("openPath = %q, want empty for a missing file", m.openPath)
	}
	if m.exportTarget() != path {
		t.Errorf("exportTarget() = %q, want %q", m.exportTarget(), path)
	}
}

func TestDashboard_Import_FromFile(t *testing.T) {
	dir := testHelpers.CreateTempDir(t, testHelpers.SampleSchemaFiles())
	path := filepath.Join(dir, "fields.json")

	m := newTestDashboard(t, WithSchemaFile(path))
	m, cmd := send(m, readSchemaCmd(path)())

	s := m.State()
	if s.Fields.Len() != 6 {
		t.Fatalf("Fields.Len() = %d, want 6", s.Fields.Len())
	}
	if s.Source != path || s.Modified {
		t.Errorf("Source = %q, Modified = %v", s.Source, s.Modified)
	}
	status := statusOf(t, cmd)
	if status.Type != MessageSuccess || !strings.Contains(status.Text, "Imported 6 fields") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_Import_ReportsIgnoredKeys(t *testing.T) {
	dir := testHelpers.CreateTempDir(t, testHelpers.SampleSchemaFiles())
	path := filepath.Join(dir, "nested", "more.json")

	m := newTestDashboard(t)
	_, cmd := send(m, readSchemaCmd(path)())

	status := statusOf(t, cmd)
	if status.Type != MessageInfo || !strings.Contains(status.Text, "unknown") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_Import_KeepsMalformedElements(t *testing.T) {
	m := newTestDashboard(t)
	m, cmd := send(m, schemaLoadedMsg{Path: "loose.json", Text: `[{"id": "a", "options": "oops"}, null]`})

	if n := m.State().Fields.Len(); n != 2 {
		t.Fatalf("Fields.Len() = %d, want 2", n)
	}
	status := statusOf(t, cmd)
	if status.Type != MessageInfo {
		t.Errorf("status = %+v, want an info message", status)
	}
	for _, want := range []string{"dropped values in #0 (options)", "non-object elements #1"} {
		if !strings.Contains(status.Text, want) {
			t.Errorf("status %q does not contain %q", status.Text, want)
		}
	}
}

func TestDashboard_Import_RejectedKeepsState(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"broken json", `[{"id": "title",]`, errors.InvalidJSONUserMessage},
		{"object", `{"id": "title"}`, errors.InvalidSchemaUserMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedDashboard(t)
			before := m.State()

			m, cmd := send(m, schemaLoadedMsg{Path: "bad.json", Text: tt.text})

			status := statusOf(t, cmd)
			if status.Type != MessageError || status.Text != tt.want {
				t.Errorf("status = %+v, want %q", status, tt.want)
			}
			if m.State().Fields.Len() != before.Fields.Len() || m.State().Source != before.Source {
				t.Error("Rejected import must keep the previous collection")
			}
		})
	}
}

func TestDashboard_Import_UnreadableFile(t *testing.T) {
	m := newTestDashboard(t)
	_, cmd := send(m, readSchemaCmd(filepath.Join(t.TempDir(), "missing.json"))())

	status := statusOf(t, cmd)
	if status.Type != MessageError || !strings.Contains(status.Text, "Failed to read file") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_EditTextProperty(t *testing.T) {
	m := loadedDashboard(t)

	m = press(m, "down", "right", "right", "enter")
	if m.FocusPane() != FocusProperty {
		t.Fatalf("FocusPane() = %v, want FocusProperty", m.FocusPane())
	}
	if m.property.Property() != schema.PropLabel || m.property.Value() != "Title" {
		t.Fatalf("editing %v = %q", m.property.Property(), m.property.Value())
	}

	m = press(m, "!")
	m, cmd := pressCmd(m, "enter")
	m, cmd = send(m, cmd())

	f, _ := m.State().Fields.At(1)
	if f.Label != "Title!" {
		t.Errorf("Label = %q, want %q", f.Label, "Title!")
	}
	if !m.State().Modified {
		t.Error("Edit should mark the schema modified")
	}
	if m.FocusPane() != FocusFields {
		t.Error("Editor should close after a commit")
	}
	if status := statusOf(t, cmd); status.Type != MessageSuccess {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_EditEscCancels(t *testing.T) {
	m := loadedDashboard(t)

	m = press(m, "down", "right", "right", "enter", "x", "esc")

	if m.FocusPane() != FocusFields {
		t.Error("Esc should close the editor")
	}
	f, _ := m.State().Fields.At(1)
	if f.Label != "Title" || m.State().Modified {
		t.Error("Cancelled edit must not change the field")
	}
}

func TestDashboard_EditChoiceProperty(t *testing.T) {
	m := loadedDashboard(t)

	// enabled is the boolean field; default is the fourth visible property
	m = press(m, "down", "down", "down", "right", "right", "right", "enter")
	if m.FocusPane() != FocusProperty || m.property.Property() != schema.PropDefault {
		t.Fatal("Expected the default editor to be open")
	}

	m, cmd := send(m, components.DropdownChosenMsg{Label: "default", Value: "false"})
	m, _ = send(m, cmd())

	f, _ := m.State().Fields.At(3)
	if f.Default == nil || f.Default.String() != "false" {
		t.Errorf("Default = %v, want false", f.Default)
	}
	if flag, ok := f.Default.Flag(); !ok || flag {
		t.Error("Boolean default should stay a flag")
	}
}

func TestDashboard_MalformedOptionsKeepsEditorOpen(t *testing.T) {
	m := loadedDashboard(t)
	m, _ = send(m, components.ToggleChangedMsg{Label: "options", Value: true})

	m = press(m, "down", "down", "down", "down", "right", "right", "right", "right", "enter")
	if m.FocusPane() != FocusProperty || m.property.Property() != schema.PropOptions {
		t.Fatal("Expected the options editor to be open")
	}

	m, cmd := send(m, propertyCommitMsg{Index: 4, Property: schema.PropOptions, Input: `[{"value":`})

	if m.FocusPane() != FocusProperty {
		t.Error("Editor should stay open after malformed options")
	}
	status := statusOf(t, cmd)
	if status.Type != MessageError || status.Text != "Invalid JSON for options" {
		t.Errorf("status = %+v", status)
	}
	f, _ := m.State().Fields.At(4)
	if len(f.Options) != 2 {
		t.Errorf("Options = %v, want the previous two", f.Options)
	}
}

func TestDashboard_CommitOutOfRange(t *testing.T) {
	m := loadedDashboard(t)

	_, cmd := send(m, propertyCommitMsg{Index: 99, Property: schema.PropLabel, Input: "x"})

	status := statusOf(t, cmd)
	if status.Type != MessageError || !strings.Contains(status.Text, "out of range") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_MoveField(t *testing.T) {
	m := loadedDashboard(t)

	m = press(m, "J")

	ids := fieldIDs(m.State())
	if ids[0] != "title" || ids[1] != "appearance" {
		t.Errorf("ids = %v", ids)
	}
	if m.fields.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", m.fields.Cursor())
	}
	if !m.State().Modified {
		t.Error("Move should mark the schema modified")
	}

	m = press(m, "K", "K")
	if ids := fieldIDs(m.State()); ids[0] != "appearance" {
		t.Errorf("ids after moving back = %v", ids)
	}
}

func fieldIDs(s editor.State) []string {
	ids := make([]string, 0, s.Fields.Len())
	for _, f := range s.Fields.Fields() {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestDashboard_DraftSubmit(t *testing.T) {
	m := loadedDashboard(t)

	m = press(m, "n")
	if m.FocusPane() != FocusDraft || !m.State().Draft.Open {
		t.Fatal("n should open the draft form")
	}

	m = press(m, "new_id")
	m, cmd := send(m, draftSubmitMsg{})

	s := m.State()
	if s.Fields.Len() != 7 {
		t.Fatalf("Fields.Len() = %d, want 7", s.Fields.Len())
	}
	last, _ := s.Fields.At(6)
	if last.ID != "new_id" || last.Type != schema.TypeText {
		t.Errorf("appended %+v", last)
	}
	if s.Draft.Open || m.FocusPane() != FocusFields {
		t.Error("Form should close after submit")
	}
	if m.fields.Cursor() != 6 {
		t.Errorf("Cursor() = %d, want the new field", m.fields.Cursor())
	}
	if status := statusOf(t, cmd); !strings.Contains(status.Text, "new_id") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_DraftSubmitWithoutID(t *testing.T) {
	m := newTestDashboard(t)

	m = press(m, "n")
	m, cmd := send(m, draftSubmitMsg{})

	if m.State().Fields.Len() != 0 {
		t.Error("Incomplete draft must not be appended")
	}
	if m.FocusPane() != FocusDraft {
		t.Error("Form should stay open")
	}
	if status := statusOf(t, cmd); status.Type != MessageError || !strings.Contains(status.Text, "id") {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_DraftEscCancels(t *testing.T) {
	m := newTestDashboard(t)

	m = press(m, "n", "abc", "esc")

	if m.State().Draft.Open || m.State().Draft.ID != "" {
		t.Errorf("Draft = %+v, want reset", m.State().Draft)
	}
	if m.FocusPane() != FocusFields {
		t.Error("Esc should return to the field list")
	}
}

func TestDashboard_ToggleVisibilityFromSidebar(t *testing.T) {
	m := loadedDashboard(t)

	m = press(m, "tab")
	if m.FocusPane() != FocusSidebar {
		t.Fatal("tab should focus the sidebar")
	}

	// options is fifth in the catalog
	m = press(m, "down", "down", "down", "down")
	m, cmd := pressCmd(m, "space")
	m, _ = send(m, cmd())

	if !m.State().Visible.IsVisible(schema.PropOptions) {
		t.Error("options should be visible")
	}
	if m.State().Modified {
		t.Error("Visibility is not part of the schema")
	}

	m = press(m, "esc")
	if m.FocusPane() != FocusFields {
		t.Error("esc should return to the field list")
	}
}

type recordingClipboard struct {
	texts []string
	err   error
}

func (r *recordingClipboard) write(text string) error {
	r.texts = append(r.texts, text)
	return r.err
}

func TestDashboard_Copy(t *testing.T) {
	clip := &recordingClipboard{}
	m := loadedDashboard(t, WithClipboard(clip.write))

	m, cmd := pressCmd(m, "c")
	m, expire := send(m, cmd())

	if len(clip.texts) != 1 || clip.texts[0] != testHelpers.SampleSchema() {
		t.Fatalf("clipboard got %q", clip.texts)
	}
	if !m.State().Copied || m.view.CopyLabel != editor.CopiedLabel {
		t.Error("Copy should show the indicator")
	}
	if !strings.Contains(m.View(), editor.CopiedLabel) {
		t.Error("View should show the copied label")
	}
	if expire == nil {
		t.Error("Copy should schedule the indicator expiry")
	}
	if m.State().Modified {
		t.Error("Copy must not touch the modified flag")
	}
}

func TestDashboard_CopyExpiryOnlyClearsLatest(t *testing.T) {
	clip := &recordingClipboard{}
	m := loadedDashboard(t, WithClipboard(clip.write))

	for range 2 {
		var cmd tea.Cmd
		m, cmd = pressCmd(m, "c")
		m, _ = send(m, cmd())
	}
	gen := m.State().CopyGeneration

	m, _ = send(m, copyExpiredMsg{Generation: gen - 1})
	if !m.State().Copied {
		t.Error("Stale expiry must not clear the indicator")
	}

	m, _ = send(m, copyExpiredMsg{Generation: gen})
	if m.State().Copied || m.view.CopyLabel != editor.CopyLabel {
		t.Error("Latest expiry should clear the indicator")
	}
}

func TestDashboard_CopyFailure(t *testing.T) {
	clip := &recordingClipboard{err: fmt.Errorf("no clipboard utility")}
	m := loadedDashboard(t, WithClipboard(clip.write))

	m, cmd := pressCmd(m, "c")
	m, cmd = send(m, cmd())

	if m.State().Copied {
		t.Error("Failed copy must not show the indicator")
	}
	if status := statusOf(t, cmd); status.Type != MessageError {
		t.Errorf("status = %+v", status)
	}
}

func TestDashboard_ExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	m := loadedDashboard(t)
	m = press(m, "J")

	m, cmd := send(m, components.ModalResultMsg{ID: modalExport, Action: components.ModalActionConfirm, Value: path})
	m, _ = send(m, cmd())

	if m.State().Modified || m.State().Source != path {
		t.Errorf("Modified = %v, Source = %q", m.State().Modified, m.State().Source)
	}
	testHelpers.AssertFileExists(t, path)
	testHelpers.AssertFileContains(t, path, `"id": "title"`)
}

func TestDashboard_ExportPromptDefaultsToSource(t *testing.T) {
	m := loadedDashboard(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlE})

	if !m.exportPrompt.Visible() {
		t.Fatal("ctrl+e should open the export prompt")
	}
	if !strings.Contains(m.View(), "fields.json") {
		t.Error("Prompt should propose the imported file")
	}
}

func TestDashboard_Quit(t *testing.T) {
	t.Run("clean quits at once", func(t *testing.T) {
		m := loadedDashboard(t)
		_, cmd := pressCmd(m, "q")
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("q on a clean schema should quit")
		}
	})

	t.Run("modified asks first", func(t *testing.T) {
		m := loadedDashboard(t)
		m = press(m, "J", "q")

		if !m.quitModal.Visible() {
			t.Fatal("q on a modified schema should open the modal")
		}
		if !strings.Contains(m.View(), "Unsaved Changes") {
			t.Error("View should show the modal")
		}

		m, cmd := pressCmd(m, "d")
		m, cmd = send(m, cmd())
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("Discard should quit")
		}
		if m.View() != "Goodbye!\n" {
			t.Errorf("View() = %q", m.View())
		}
	})

	t.Run("export then quit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		m := loadedDashboard(t)
		m = press(m, "J", "q")

		m, cmd := pressCmd(m, "e")
		m, _ = send(m, cmd())
		if !m.exportPrompt.Visible() || !m.quitAfterExport {
			t.Fatal("Export should open the export prompt")
		}

		m, cmd = send(m, components.ModalResultMsg{ID: modalExport, Action: components.ModalActionConfirm, Value: path})
		m, cmd = send(m, cmd())
		if _, ok := cmd().(quitAfterExportMsg); !ok {
			t.Fatalf("Expected quitAfterExportMsg, got %T", cmd())
		}
		_, cmd = send(m, quitAfterExportMsg{})
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("Should quit after the export")
		}
	})
}

func TestDashboard_View_ShowsFieldsAndChrome(t *testing.T) {
	m := loadedDashboard(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"Field Editor", editor.CopyLabel, "#1 Appearance", "#2 Title", "Visible properties", "fields.json"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestDashboard_View_Empty(t *testing.T) {
	m := newTestDashboard(t)

	if !strings.Contains(m.View(), "No fields yet") {
		t.Error("Empty view should explain how to start")
	}
}

func TestDashboard_HelpToggle(t *testing.T) {
	m := newTestDashboard(t)

	m = press(m, "?")
	if !m.helpVisible || !strings.Contains(m.View(), "move field up") {
		t.Error("? should show the full help")
	}

	m = press(m, "?")
	if m.helpVisible {
		t.Error("? should close the help")
	}
}
