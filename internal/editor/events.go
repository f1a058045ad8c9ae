package editor

import (
	"github.com/user/fieldeditor/internal/schema"
)

// Event is a discrete user action handled by Controller.Dispatch.
type Event interface {
	eventName() string
}

// AddField appends a complete field.
type AddField struct {
	Field schema.Field
}

// EditProperty replaces one property of the field at Index with Input.
type EditProperty struct {
	Index    int
	Property schema.Property
	Input    string
}

// MoveField reorders the collection; To indexes the sequence after removal.
type MoveField struct {
	From int
	To   int
}

// ToggleVisibility shows or hides a property for every field.
type ToggleVisibility struct {
	Property schema.Property
}

// ImportSchema replaces the collection with the fields parsed from Text.
type ImportSchema struct {
	Source string
	Text   string
}

// CopySucceeded records a clipboard copy and restarts the indicator.
type CopySucceeded struct{}

// CopyExpired clears the indicator if no newer copy happened since
// Generation was issued.
type CopyExpired struct {
	Generation int
}

// SchemaExported records that the collection was written to Path.
type SchemaExported struct {
	Path string
}

// OpenDraft shows the new-field form.
type OpenDraft struct{}

// EditDraft sets one of the draft's id, type or label.
type EditDraft struct {
	Property schema.Property
	Value    string
}

// SubmitDraft appends the draft as a new field.
type SubmitDraft struct{}

// CancelDraft closes the form and discards its content.
type CancelDraft struct{}

func (AddField) eventName() string         { return "add_field" }
func (EditProperty) eventName() string     { return "edit_property" }
func (MoveField) eventName() string        { return "move_field" }
func (ToggleVisibility) eventName() string { return "toggle_visibility" }
func (ImportSchema) eventName() string     { return "import_schema" }
func (CopySucceeded) eventName() string    { return "copy_succeeded" }
func (CopyExpired) eventName() string      { return "copy_expired" }
func (SchemaExported) eventName() string   { return "schema_exported" }
func (OpenDraft) eventName() string        { return "open_draft" }
func (EditDraft) eventName() string        { return "edit_draft" }
func (SubmitDraft) eventName() string      { return "submit_draft" }
func (CancelDraft) eventName() string      { return "cancel_draft" }
