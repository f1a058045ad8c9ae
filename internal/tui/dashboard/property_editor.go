package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/schema"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/tui/components"
	"github.com/user/fieldeditor/internal/tui/dashboard/validation"
)

// propertyCommitMsg asks the model to store Input into one property.
type propertyCommitMsg struct {
	Index    int
	Property schema.Property
	Input    string
}

// PropertyEditor edits one property of one field with the control its
// widget kind calls for.
type PropertyEditor struct {
	index    int
	heading  string
	widget   registry.Widget
	input    components.FocusableInput
	updater  components.FocusableUpdater
	dropdown *components.DropdownModel
}

func NewPropertyEditor(index int, heading string, w registry.Widget, width int) *PropertyEditor {
	e := &PropertyEditor{index: index, heading: heading, widget: w}
	label := w.Property.String()

	switch w.Kind {
	case registry.WidgetChoice:
		opts := make([]components.DropdownOption, 0, len(w.Choices))
		for _, c := range w.Choices {
			opts = append(opts, components.DropdownOption{Value: c.Value, Label: c.Label})
		}
		help := "enter: open list · enter: choose · esc: cancel"
		if len(opts) == 0 {
			help = "Set options first · esc: back"
		}
		d := components.NewDropdown(label, opts, help)
		e.dropdown = &d
		e.input = &d
		e.updater = components.WrapDropdown(&d)

	case registry.WidgetTextArea, registry.WidgetJSON:
		opts := []components.TextAreaOption{
			components.WithAreaHelp("ctrl+s: save · esc: cancel"),
			components.WithAreaSize(max(width-6, 20), 8),
		}
		if w.Kind == registry.WidgetJSON {
			opts = append(opts, components.WithAreaValidator(validation.ValidateOptionsJSON()))
		}
		a := components.NewTextArea(label, opts...)
		e.input = &a
		e.updater = components.WrapTextArea(&a)

	case registry.WidgetColor:
		f := components.NewTextField(label,
			components.WithPlaceholder("#RRGGBB"),
			components.WithValidator(validation.ValidateColor()),
			components.WithPreview(func(s string) string {
				if registry.ValidColor(s) {
					return tui.Swatch(s)
				}
				return tui.Swatch("")
			}),
			components.WithHelp("enter: save · esc: cancel"),
		)
		e.input = &f
		e.updater = components.WrapTextField(&f)

	default:
		f := components.NewTextField(label, components.WithHelp("enter: save · esc: cancel"))
		e.input = &f
		e.updater = components.WrapTextField(&f)
	}

	e.input.SetValue(w.Value)
	return e
}

func (e *PropertyEditor) Focus() tea.Cmd {
	return e.input.Focus()
}

// Update returns done when the editor should close without committing.
func (e *PropertyEditor) Update(msg tea.Msg) (cmd tea.Cmd, done bool) {
	switch msg := msg.(type) {
	case components.DropdownChosenMsg:
		return e.commit(msg.Value), false

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if e.dropdown != nil && e.dropdown.Expanded() {
				break
			}
			return nil, true
		case "enter":
			if !e.widget.Kind.Multiline() && e.dropdown == nil {
				return e.commit(e.input.Value()), false
			}
		case "ctrl+s":
			if e.widget.Kind.Multiline() {
				return e.commit(e.input.Value()), false
			}
		}
	}
	return e.updater.Update(msg), false
}

func (e *PropertyEditor) commit(input string) tea.Cmd {
	msg := propertyCommitMsg{Index: e.index, Property: e.widget.Property, Input: input}
	return func() tea.Msg { return msg }
}

func (e *PropertyEditor) Property() schema.Property {
	return e.widget.Property
}

func (e *PropertyEditor) Index() int {
	return e.index
}

func (e *PropertyEditor) Value() string {
	return e.input.Value()
}

func (e *PropertyEditor) View() string {
	title := tui.StyleSectionHeader.Render("Editing " + e.heading)
	kind := tui.StyleMuted.Render(e.widget.Kind.String())
	return tui.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, kind, e.input.View()))
}
