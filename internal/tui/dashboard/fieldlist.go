package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/tui"
)

const maxInlineValue = 48

// FieldListModel draws the rows of the editor view inside a scrolling
// viewport and tracks the selected field and property.
type FieldListModel struct {
	rows       []editor.Row
	cursor     int
	propCursor int
	viewport   viewport.Model
	lineStarts []int
	focused    bool
}

func NewFieldList(width, height int) FieldListModel {
	return FieldListModel{
		viewport: viewport.New(width, height),
		focused:  true,
	}
}

// SetRows replaces the rows and clamps the cursors.
func (m *FieldListModel) SetRows(rows []editor.Row) {
	m.rows = rows
	m.cursor = clamp(m.cursor, len(rows))
	m.propCursor = clamp(m.propCursor, m.widgetCount())
	m.render()
}

func (m *FieldListModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *FieldListModel) SetFocused(focused bool) {
	m.focused = focused
	m.render()
}

// MoveCursor selects the field delta rows away, stopping at the ends.
func (m *FieldListModel) MoveCursor(delta int) {
	m.Select(m.cursor + delta)
}

// Select selects field i, clamped into range.
func (m *FieldListModel) Select(i int) {
	m.cursor = clamp(i, len(m.rows))
	m.propCursor = clamp(m.propCursor, m.widgetCount())
	m.render()
}

// MoveProp selects the property delta widgets away within the field.
func (m *FieldListModel) MoveProp(delta int) {
	m.propCursor = clamp(m.propCursor+delta, m.widgetCount())
	m.render()
}

// Cursor returns the selected field index; it is 0 on an empty list.
func (m FieldListModel) Cursor() int {
	return m.cursor
}

func (m FieldListModel) Len() int {
	return len(m.rows)
}

// SelectedWidget returns the selected property widget of the selected field.
func (m FieldListModel) SelectedWidget() (editor.Row, registry.Widget, bool) {
	if m.cursor >= len(m.rows) {
		return editor.Row{}, registry.Widget{}, false
	}
	row := m.rows[m.cursor]
	if m.propCursor >= len(row.Widgets) {
		return row, registry.Widget{}, false
	}
	return row, row.Widgets[m.propCursor], true
}

func (m FieldListModel) View() string {
	return m.viewport.View()
}

func (m FieldListModel) widgetCount() int {
	if m.cursor >= len(m.rows) {
		return 0
	}
	return len(m.rows[m.cursor].Widgets)
}

func (m *FieldListModel) render() {
	if len(m.rows) == 0 {
		m.lineStarts = nil
		m.viewport.SetContent(tui.StyleMuted.Render("No fields yet. Press n to add one or ctrl+o to import a file."))
		m.viewport.GotoTop()
		return
	}

	blocks := make([]string, 0, len(m.rows))
	m.lineStarts = m.lineStarts[:0]
	line := 0
	for i, row := range m.rows {
		block := m.renderRow(i, row)
		blocks = append(blocks, block)
		m.lineStarts = append(m.lineStarts, line)
		line += lipgloss.Height(block)
	}
	m.viewport.SetContent(strings.Join(blocks, "\n"))
	m.scrollToCursor()
}

func (m *FieldListModel) scrollToCursor() {
	if m.cursor >= len(m.lineStarts) || m.viewport.Height <= 0 {
		return
	}
	top := m.lineStarts[m.cursor]
	bottom := top + 1 + m.propCursor
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m FieldListModel) renderRow(i int, row editor.Row) string {
	selected := i == m.cursor

	title := fmt.Sprintf("#%d %s", row.Index+1, row.Heading)
	titleStyle := tui.StyleFieldHeading
	if row.IsHeader {
		titleStyle = tui.StyleFieldHeader
	}
	lines := []string{titleStyle.Render(title)}

	for j, w := range row.Widgets {
		nameStyle := tui.StylePropertyName
		prefix := "  "
		if selected && j == m.propCursor {
			nameStyle = tui.StylePropertyActive
			if m.focused {
				prefix = tui.StyleHighlight.Render(tui.IconArrow + " ")
			}
		}
		lines = append(lines, prefix+nameStyle.Render(w.Property.String())+" "+inlineValue(w))
	}

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if selected {
		return tui.StyleFieldSelected.Render(block)
	}
	return tui.StyleFieldIdle.Render(block)
}

// inlineValue is the one-line summary of a widget's value.
func inlineValue(w registry.Widget) string {
	value := w.Value
	switch w.Kind {
	case registry.WidgetChoice:
		if w.Selected >= 0 {
			value = w.Choices[w.Selected].Label
		}
		value += " ▼"
	case registry.WidgetColor:
		return tui.Swatch(w.Swatch) + " " + value
	}

	if w.Value == "" && w.Kind != registry.WidgetChoice {
		return tui.StyleMuted.Render("—")
	}
	if first, _, multi := strings.Cut(value, "\n"); multi {
		value = first + " …"
	}
	if len([]rune(value)) > maxInlineValue {
		value = string([]rune(value)[:maxInlineValue-1]) + "…"
	}
	return value
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
