package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable represents a UI component that can receive and lose focus.
// Text fields, text areas, dropdowns, toggles and buttons all implement it,
// so a form can keep its inputs in one slice and move focus by index.
type Focusable interface {
	// Focus activates this component. Returns a command if needed (e.g., cursor blink).
	Focus() tea.Cmd

	// Blur deactivates this component.
	Blur()

	// Focused returns true if this component currently has focus.
	Focused() bool

	// View renders the component.
	View() string

	// IsDirty returns true if the value has changed since the last SetValue.
	IsDirty() bool
}

// FocusableInput extends Focusable with string get/set. Every editor of a
// field property implements it, whatever widget draws the value.
type FocusableInput interface {
	Focusable

	// Value returns the current value as string.
	Value() string

	// SetValue loads the value without marking the component dirty.
	SetValue(string)
}

// FocusableUpdater wraps a component to provide a unified Update interface.
// Go interfaces can't express "returns same type as receiver", so the
// wrappers update the component in place.
type FocusableUpdater interface {
	Focusable
	Update(msg tea.Msg) tea.Cmd
}

// FocusableSlice holds the inputs of a form and tracks which one has focus.
type FocusableSlice struct {
	items      []FocusableUpdater
	focusIndex int
}

// NewFocusableSlice creates a new slice from the given components.
func NewFocusableSlice(items ...FocusableUpdater) *FocusableSlice {
	return &FocusableSlice{items: items}
}

// Len returns the number of items.
func (fs *FocusableSlice) Len() int {
	return len(fs.items)
}

// Current returns the currently focused item.
func (fs *FocusableSlice) Current() FocusableUpdater {
	return fs.Get(fs.focusIndex)
}

// Index returns the current focus index.
func (fs *FocusableSlice) Index() int {
	return fs.focusIndex
}

// FocusNext moves focus to the next component, wrapping around.
func (fs *FocusableSlice) FocusNext() tea.Cmd {
	if len(fs.items) == 0 {
		return nil
	}
	return fs.FocusAt((fs.focusIndex + 1) % len(fs.items))
}

// FocusPrev moves focus to the previous component, wrapping around.
func (fs *FocusableSlice) FocusPrev() tea.Cmd {
	if len(fs.items) == 0 {
		return nil
	}
	return fs.FocusAt((fs.focusIndex - 1 + len(fs.items)) % len(fs.items))
}

// FocusFirst focuses the first component.
func (fs *FocusableSlice) FocusFirst() tea.Cmd {
	return fs.FocusAt(0)
}

// FocusLast focuses the last component.
func (fs *FocusableSlice) FocusLast() tea.Cmd {
	return fs.FocusAt(len(fs.items) - 1)
}

// FocusAt blurs everything and focuses the component at index. Out of range
// indexes are ignored.
func (fs *FocusableSlice) FocusAt(index int) tea.Cmd {
	if index < 0 || index >= len(fs.items) {
		return nil
	}
	fs.BlurAll()
	fs.focusIndex = index
	return fs.items[index].Focus()
}

// BlurAll removes focus from all components.
func (fs *FocusableSlice) BlurAll() {
	for _, item := range fs.items {
		item.Blur()
	}
}

// UpdateCurrent sends a message to the currently focused component.
func (fs *FocusableSlice) UpdateCurrent(msg tea.Msg) tea.Cmd {
	if cur := fs.Current(); cur != nil {
		return cur.Update(msg)
	}
	return nil
}

// IsDirty returns true if any component has been modified.
func (fs *FocusableSlice) IsDirty() bool {
	for _, item := range fs.items {
		if item.IsDirty() {
			return true
		}
	}
	return false
}

// Get returns the item at the given index.
func (fs *FocusableSlice) Get(index int) FocusableUpdater {
	if index >= 0 && index < len(fs.items) {
		return fs.items[index]
	}
	return nil
}

// Views renders every component in order.
func (fs *FocusableSlice) Views() []string {
	views := make([]string, 0, len(fs.items))
	for _, item := range fs.items {
		views = append(views, item.View())
	}
	return views
}
