// Package wizard is the interactive form behind `config init --interactive`.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/schema"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/tui/components"
	"github.com/user/fieldeditor/internal/tui/dashboard/validation"
	"github.com/user/fieldeditor/internal/visibility"
)

// Step represents a configuration step
type Step int

const (
	StepScope Step = iota
	StepProperties
	StepEditor
	StepConfirm
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepScope:
		return "Scope"
	case StepProperties:
		return "Visible Properties"
	case StepEditor:
		return "Editor Settings"
	case StepConfirm:
		return "Confirm"
	case StepComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Model holds the wizard state
type Model struct {
	Step        Step
	Global      bool
	Quitting    bool
	ConfigPath  string
	SavedConfig bool
	Err         error

	projectDir string
	base       config.Config
	saver      *config.Saver
	inputErr   string

	toggles    []*components.ToggleModel
	properties *components.FocusableSlice

	copyIndicator *components.TextFieldModel
	indent        *components.TextFieldModel
	settings      *components.FocusableSlice
}

// NewWizardModel starts from base, usually the loaded configuration, and
// saves into projectDir unless the global scope is picked.
func NewWizardModel(base *config.Config, projectDir string) Model {
	if base == nil {
		base = config.DefaultConfig()
	}

	current, err := base.Editor.Visibility()
	if err != nil {
		current = visibility.Default()
	}

	toggles := make([]*components.ToggleModel, 0, len(schema.Properties()))
	wrapped := make([]components.FocusableUpdater, 0, len(schema.Properties()))
	for _, p := range schema.Properties() {
		t := components.NewToggle(p.String(), current.IsVisible(p))
		toggles = append(toggles, &t)
		wrapped = append(wrapped, components.WrapToggle(&t))
	}

	indicator := components.NewTextField("Copy indicator",
		components.WithPlaceholder(config.DefaultCopyIndicator),
		components.WithValidator(validation.ValidatePositiveDuration()),
		components.WithHelp("How long \"Copied!\" stays on the button"),
		components.WithCharLimit(16),
	)
	indicator.SetValue(base.Editor.CopyIndicator)

	indent := components.NewTextField("Indent",
		components.WithPlaceholder(strconv.Itoa(config.DefaultIndent)),
		components.WithValidator(validation.ValidateIntRange(0, 8)),
		components.WithHelp("Spaces per level in exported JSON"),
		components.WithCharLimit(1),
	)
	indent.SetValue(strconv.Itoa(base.Editor.Indent))

	return Model{
		projectDir:    projectDir,
		base:          *base,
		saver:         config.NewSaver(),
		toggles:       toggles,
		properties:    components.NewFocusableSlice(wrapped...),
		copyIndicator: &indicator,
		indent:        &indent,
		settings: components.NewFocusableSlice(
			components.WrapTextField(&indicator),
			components.WrapTextField(&indent),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Step {
	case StepScope:
		return m.updateScope(key)
	case StepProperties:
		return m.updateProperties(key)
	case StepEditor:
		return m.updateEditor(key)
	case StepConfirm:
		return m.updateConfirm(key)
	case StepComplete:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateScope(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "1":
		m.Global = false
	case "2":
		m.Global = true
	case "enter":
		m.Step = StepProperties
		return m, m.properties.FocusFirst()
	}
	return m, nil
}

func (m Model) updateProperties(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.properties.Index() > 0 {
			return m, m.properties.FocusPrev()
		}
		return m, nil
	case "down", "j":
		if m.properties.Index() < m.properties.Len()-1 {
			return m, m.properties.FocusNext()
		}
		return m, nil
	case "enter":
		m.properties.BlurAll()
		m.Step = StepEditor
		return m, m.settings.FocusFirst()
	case "esc":
		m.properties.BlurAll()
		m.Step = StepScope
		return m, nil
	}
	// space, y and n reach the focused toggle
	return m, m.properties.UpdateCurrent(key)
}

func (m Model) updateEditor(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab", "down":
		return m, m.settings.FocusNext()
	case "shift+tab", "up":
		return m, m.settings.FocusPrev()
	case "esc":
		m.settings.BlurAll()
		m.inputErr = ""
		m.Step = StepProperties
		return m, m.properties.FocusFirst()
	case "enter":
		if _, err := m.build(); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.inputErr = ""
		m.settings.BlurAll()
		m.Step = StepConfirm
		return m, nil
	}
	return m, m.settings.UpdateCurrent(key)
}

func (m Model) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "y", "Y":
		path, err := m.saveConfig()
		m.ConfigPath = path
		m.Err = err
		m.SavedConfig = err == nil
		m.Step = StepComplete
	case "n", "N":
		m.Step = StepScope
	}
	return m, nil
}

// VisibleProperties lists the checked properties in catalogue order.
func (m Model) VisibleProperties() []string {
	var names []string
	for _, t := range m.toggles {
		if t.Value() {
			names = append(names, t.Label())
		}
	}
	return names
}

// build returns base with the answers applied.
func (m Model) build() (*config.Config, error) {
	cfg := m.base
	cfg.Version = config.CurrentConfigVersion
	cfg.Editor.VisibleProperties = m.VisibleProperties()
	cfg.Editor.CopyIndicator = strings.TrimSpace(m.copyIndicator.Value())

	indent, err := strconv.Atoi(strings.TrimSpace(m.indent.Value()))
	if err != nil {
		return nil, fmt.Errorf("indent must be a number")
	}
	cfg.Editor.Indent = indent

	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (m Model) saveConfig() (string, error) {
	cfg, err := m.build()
	if err != nil {
		return "", err
	}
	if m.Global {
		return m.saver.SaveGlobalConfig(cfg)
	}
	return m.saver.SaveProjectConfig(m.projectDir, cfg)
}

// GetConfigPath returns the path where config was saved
func (m Model) GetConfigPath() string {
	return m.ConfigPath
}

func (m Model) View() string {
	if m.Quitting {
		return "Exiting...\n"
	}

	if m.Step == StepComplete {
		if m.Err != nil {
			return fmt.Sprintf("\n%s\n\nError saving configuration: %v\n\nPress any key to exit...",
				tui.StyleError.Render("Configuration Failed"), m.Err)
		}
		return fmt.Sprintf("\n%s\n\nConfiguration saved to: %s\n\nPress any key to exit...",
			tui.StyleSuccess.Render("Configuration Saved Successfully!"), m.ConfigPath)
	}

	var b strings.Builder
	b.WriteString(tui.StyleTitle.Render(" Field Editor Configuration ") + "\n\n")
	fmt.Fprintf(&b, "Step %d/4: %s\n\n", int(m.Step)+1, m.Step.String())

	switch m.Step {
	case StepScope:
		b.WriteString(m.renderScope())
	case StepProperties:
		b.WriteString("Properties shown for every field:\n\n")
		b.WriteString(strings.Join(m.properties.Views(), "\n"))
	case StepEditor:
		b.WriteString(strings.Join(m.settings.Views(), "\n\n"))
		if m.inputErr != "" {
			b.WriteString("\n\n" + tui.StyleError.Render(tui.IconError+" "+m.inputErr))
		}
	case StepConfirm:
		b.WriteString(m.renderConfirm())
	}

	b.WriteString("\n\n")
	switch m.Step {
	case StepScope:
		b.WriteString(tui.StyleMuted.Render("1-2: Select scope  |  Enter: Continue  |  q: Quit"))
	case StepProperties:
		b.WriteString(tui.StyleMuted.Render("↑/↓: Move  |  Space: Toggle  |  Enter: Continue  |  Esc: Go back"))
	case StepEditor:
		b.WriteString(tui.StyleMuted.Render("Tab: Next field  |  Enter: Continue  |  Esc: Go back"))
	case StepConfirm:
		b.WriteString(tui.StyleMuted.Render("y: Yes (save)  |  n: No (start over)  |  q: Quit"))
	}
	return b.String() + "\n"
}

func (m Model) renderScope() string {
	s := "Where should the configuration be stored?\n\n"
	scopes := []struct {
		key    string
		name   string
		global bool
	}{
		{"1", "Project (" + config.ProjectConfigPath + ")", false},
		{"2", "Global (~/" + config.GlobalConfigName + ")", true},
	}
	for _, sc := range scopes {
		prefix := " "
		if m.Global == sc.global {
			prefix = tui.StyleHighlight.Render("✓")
		}
		s += fmt.Sprintf("%s %s. %s\n", prefix, sc.key, sc.name)
	}
	return s
}

func (m Model) renderConfirm() string {
	scope := "project"
	if m.Global {
		scope = "global"
	}
	visible := strings.Join(m.VisibleProperties(), ", ")
	if visible == "" {
		visible = "(none)"
	}

	s := "Review your configuration:\n\n"
	s += fmt.Sprintf("  Scope:           %s\n", tui.StyleHighlight.Render(scope))
	s += fmt.Sprintf("  Visible:         %s\n", tui.StyleHighlight.Render(visible))
	s += fmt.Sprintf("  Copy indicator:  %s\n", tui.StyleHighlight.Render(m.copyIndicator.Value()))
	s += fmt.Sprintf("  Indent:          %s\n", tui.StyleHighlight.Render(m.indent.Value()))
	s += "\nSave this configuration?"
	return s
}
