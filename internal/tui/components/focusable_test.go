package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFocusableSlice_Navigation(t *testing.T) {
	id := NewTextField("Id")
	typ := NewDropdown("Type", sizeOptions(), "")
	add := NewButton("Add", nil)

	fs := NewFocusableSlice(
		WrapTextField(&id),
		WrapDropdown(&typ),
		WrapButton(&add),
	)

	if fs.Len() != 3 {
		t.Errorf("Len() = %d, want 3", fs.Len())
	}
	if fs.Index() != 0 {
		t.Errorf("initial Index() = %d, want 0", fs.Index())
	}

	fs.FocusFirst()
	if !id.Focused() {
		t.Error("FocusFirst(): id should be focused")
	}

	fs.FocusNext()
	if id.Focused() {
		t.Error("FocusNext(): id should be blurred")
	}
	if !typ.Focused() {
		t.Error("FocusNext(): type should be focused")
	}

	fs.FocusNext()
	fs.FocusNext()
	if fs.Index() != 0 || !id.Focused() {
		t.Errorf("FocusNext() wrap Index() = %d, want 0", fs.Index())
	}

	fs.FocusPrev()
	if fs.Index() != 2 || !add.Focused() {
		t.Errorf("FocusPrev() wrap Index() = %d, want 2", fs.Index())
	}

	fs.FocusLast()
	if fs.Index() != 2 {
		t.Errorf("FocusLast() Index() = %d, want 2", fs.Index())
	}
}

func TestFocusableSlice_FocusAt(t *testing.T) {
	a := NewToggle("a", true)
	b := NewToggle("b", false)
	fs := NewFocusableSlice(WrapToggle(&a), WrapToggle(&b))

	fs.FocusAt(1)
	if a.Focused() || !b.Focused() {
		t.Error("FocusAt(1) should focus only b")
	}

	fs.FocusAt(5)
	if fs.Index() != 1 {
		t.Errorf("out of range FocusAt moved focus to %d", fs.Index())
	}
}

func TestFocusableSlice_BlurAll(t *testing.T) {
	tf1 := NewTextField("Field1")
	tf2 := NewTextField("Field2")
	fs := NewFocusableSlice(WrapTextField(&tf1), WrapTextField(&tf2))

	fs.FocusFirst()
	fs.FocusNext()
	fs.BlurAll()

	if tf1.Focused() || tf2.Focused() {
		t.Error("BlurAll() should blur every component")
	}
}

func TestFocusableSlice_UpdateCurrent_ReachesFocusedOnly(t *testing.T) {
	tf1 := NewTextField("Field1")
	tf2 := NewTextField("Field2")
	fs := NewFocusableSlice(WrapTextField(&tf1), WrapTextField(&tf2))

	fs.FocusAt(1)
	fs.UpdateCurrent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	if tf1.Value() != "" {
		t.Errorf("tf1 = %q, want empty", tf1.Value())
	}
	if tf2.Value() != "x" {
		t.Errorf("tf2 = %q, want x", tf2.Value())
	}
	if !fs.IsDirty() {
		t.Error("IsDirty() should report the edited field")
	}
}

func TestFocusableSlice_TextAreaWrapper(t *testing.T) {
	ta := NewTextArea("Content")
	fs := NewFocusableSlice(WrapTextArea(&ta))

	fs.FocusFirst()
	fs.UpdateCurrent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("body")})

	if ta.Value() != "body" {
		t.Errorf("Value() = %q, want body", ta.Value())
	}
}

func TestFocusableSlice_Empty(t *testing.T) {
	fs := NewFocusableSlice()

	if fs.FocusNext() != nil || fs.FocusPrev() != nil || fs.FocusFirst() != nil {
		t.Error("Focus moves on an empty slice should return nil")
	}
	if fs.Current() != nil {
		t.Error("Current() on an empty slice should be nil")
	}
	if fs.UpdateCurrent(nil) != nil {
		t.Error("UpdateCurrent on an empty slice should be nil")
	}
	if len(fs.Views()) != 0 {
		t.Error("Views() on an empty slice should be empty")
	}
}
