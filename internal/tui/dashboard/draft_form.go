package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/schema"
	"github.com/user/fieldeditor/internal/tui"
	"github.com/user/fieldeditor/internal/tui/components"
	"github.com/user/fieldeditor/internal/tui/dashboard/validation"
)

type draftSubmitMsg struct{}

// DraftForm is the new-field form: id, type, label and an add button.
type DraftForm struct {
	id     *components.TextFieldModel
	typ    *components.DropdownModel
	label  *components.TextFieldModel
	add    *components.ButtonModel
	inputs *components.FocusableSlice
}

func NewDraftForm(d editor.Draft) DraftForm {
	id := components.NewTextField("id",
		components.WithRequired(),
		components.WithPlaceholder("unique_id"),
		components.WithValidator(validation.ValidateNonEmpty("id")),
	)

	types := make([]components.DropdownOption, 0, len(schema.FieldTypes()))
	for _, t := range schema.FieldTypes() {
		types = append(types, components.DropdownOption{Value: string(t), Label: string(t)})
	}
	typ := components.NewDropdown("type", types, "")

	label := components.NewTextField("label", components.WithPlaceholder("Shown to the user"))
	add := components.NewButton("Add field", func() tea.Msg { return draftSubmitMsg{} })

	f := DraftForm{id: &id, typ: &typ, label: &label, add: &add}
	f.inputs = components.NewFocusableSlice(
		components.WrapTextField(f.id),
		components.WrapDropdown(f.typ),
		components.WrapTextField(f.label),
		components.WrapButton(f.add),
	)
	f.Load(d)
	return f
}

// Load fills the inputs from the draft held in editor state.
func (f DraftForm) Load(d editor.Draft) {
	f.id.SetValue(d.ID)
	f.typ.SetValue(string(d.Type))
	f.label.SetValue(d.Label)
}

func (f DraftForm) Focus() tea.Cmd {
	return f.inputs.FocusFirst()
}

func (f DraftForm) Blur() {
	f.inputs.BlurAll()
}

// Update routes keys to the focused input. Enter on a text input moves on
// to the next one.
func (f DraftForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			if !f.typ.Expanded() {
				return f.inputs.FocusNext()
			}
		case "shift+tab", "up":
			if !f.typ.Expanded() {
				return f.inputs.FocusPrev()
			}
		case "enter":
			if f.id.Focused() || f.label.Focused() {
				return f.inputs.FocusNext()
			}
		}
	}
	return f.inputs.UpdateCurrent(msg)
}

// Edits returns the draft events that bring editor state in line with the
// form.
func (f DraftForm) Edits() []editor.EditDraft {
	return []editor.EditDraft{
		{Property: schema.PropID, Value: f.id.Value()},
		{Property: schema.PropType, Value: f.typ.Value()},
		{Property: schema.PropLabel, Value: f.label.Value()},
	}
}

// Expanded reports whether the type list is open and owns esc.
func (f DraftForm) Expanded() bool {
	return f.typ.Expanded()
}

func (f DraftForm) View() string {
	title := tui.StyleSectionHeader.Render("New field")
	hint := tui.StyleFormHelp.Render("tab: next · esc: cancel")
	parts := append([]string{title}, f.inputs.Views()...)
	parts = append(parts, hint)
	return tui.StyleBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
