package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/tui/components"
)

// SidebarModel is the visibility checklist: one toggle per property in
// catalog order.
type SidebarModel struct {
	toggles []*components.ToggleModel
	focus   *components.FocusableSlice
	focused bool
	height  int
}

func NewSidebar(items []editor.VisibilityItem) SidebarModel {
	m := SidebarModel{}
	wrapped := make([]components.FocusableUpdater, 0, len(items))
	for _, item := range items {
		t := components.NewToggle(item.Property.String(), item.Visible)
		m.toggles = append(m.toggles, &t)
		wrapped = append(wrapped, components.WrapToggle(&t))
	}
	m.focus = components.NewFocusableSlice(wrapped...)
	return m
}

func (m SidebarModel) Init() tea.Cmd {
	return nil
}

func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.focus.Index() > 0 {
				return m, m.focus.FocusPrev()
			}
			return m, nil
		case "down", "j":
			if m.focus.Index() < m.focus.Len()-1 {
				return m, m.focus.FocusNext()
			}
			return m, nil
		case "home", "g":
			return m, m.focus.FocusFirst()
		case "end", "G":
			return m, m.focus.FocusLast()
		}
		return m, m.focus.UpdateCurrent(msg)
	}
	return m, nil
}

func (m SidebarModel) View() string {
	title := tui.StyleSectionHeader.Render("Visible properties")
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, m.focus.Views()...)...)
	style := tui.StyleSidebarContainer
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(content)
}

// Sync loads the visibility flags without moving focus.
func (m *SidebarModel) Sync(items []editor.VisibilityItem) {
	for i, item := range items {
		if i < len(m.toggles) {
			m.toggles[i].SetValue(item.Visible)
		}
	}
}

func (m *SidebarModel) SetFocused(focused bool) tea.Cmd {
	m.focused = focused
	if !focused {
		m.focus.BlurAll()
		return nil
	}
	return m.focus.FocusAt(m.focus.Index())
}

func (m SidebarModel) IsFocused() bool {
	return m.focused
}

func (m SidebarModel) ActiveIndex() int {
	return m.focus.Index()
}
