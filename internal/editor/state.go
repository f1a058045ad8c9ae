// Package editor holds the application state of the field editor and the
// controller that advances it one event at a time.
package editor

import (
	"github.com/user/fieldeditor/internal/schema"
	"github.com/user/fieldeditor/internal/visibility"
)

// Draft is the new-field form.
type Draft struct {
	Open  bool
	ID    string
	Type  schema.FieldType
	Label string
}

// NewDraft returns the empty form: a text field with no id or label.
func NewDraft() Draft {
	return Draft{Type: schema.TypeText}
}

// Field returns the field the draft would append.
func (d Draft) Field() schema.Field {
	return schema.Field{ID: d.ID, Type: d.Type, Label: d.Label}
}

// State is the whole editor state. It is passed by value through
// Controller.Dispatch and never mutated in place.
type State struct {
	Fields  schema.Collection
	Visible visibility.Set
	Draft   Draft

	// Copied drives the transient "Copied!" indicator. CopyGeneration
	// increases on every copy so that only the latest expiry clears it.
	Copied         bool
	CopyGeneration int

	// Modified is set by edits and cleared by import and file export.
	Modified   bool
	Source     string
	LastImport schema.ImportReport
}

// NewState returns an empty editor showing visible.
func NewState(visible visibility.Set) State {
	return State{
		Fields:  schema.NewCollection(),
		Visible: visible,
		Draft:   NewDraft(),
	}
}
