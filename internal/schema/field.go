package schema

// FieldType is the kind of form control a field describes.
type FieldType string

const (
	TypeText    FieldType = "text"
	TypeColor   FieldType = "color"
	TypeButton  FieldType = "button"
	TypeBoolean FieldType = "boolean"
	TypeSelect  FieldType = "select"
	TypeHeader  FieldType = "header"
)

var fieldTypes = []FieldType{TypeText, TypeColor, TypeButton, TypeBoolean, TypeSelect, TypeHeader}

// FieldTypes returns the type vocabulary in selector order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Known reports whether t is part of the vocabulary. Unknown types are still
// accepted everywhere and render with the plain text widget.
func (t FieldType) Known() bool {
	for _, ft := range fieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is one form-field definition. Empty strings mean "absent".
type Field struct {
	ID               string
	Content          string
	Type             FieldType
	Label            string
	Default          *Default
	Options          []Option
	Info             string
	Placeholder      string
	HighlightingElem string
	Thumbnail        string
	Banner           string
	Subheadline      string
	PopupHTML        string
	TooltipHTML      string
}

// Clone returns a deep copy of f. Empty options are normalised to nil.
func (f Field) Clone() Field {
	if f.Default != nil {
		d := *f.Default
		f.Default = &d
	}
	if len(f.Options) == 0 {
		f.Options = nil
	} else {
		f.Options = append([]Option(nil), f.Options...)
	}
	return f
}

// Heading is the display title: header fields prefer content, all fields
// then fall back to label and finally id.
func (f Field) Heading() string {
	if f.Type == TypeHeader && f.Content != "" {
		return f.Content
	}
	if f.Label != "" {
		return f.Label
	}
	return f.ID
}

// Text returns the textual value of p as an editor shows it. Options are
// rendered as their compact JSON array.
func (f Field) Text(p Property) string {
	switch p {
	case PropType:
		return string(f.Type)
	case PropDefault:
		if f.Default == nil {
			return ""
		}
		return f.Default.String()
	case PropOptions:
		return OptionsJSON(f.Options)
	}
	if ptr := f.textSlot(p); ptr != nil {
		return *ptr
	}
	return ""
}

// Set returns a copy of f with exactly property p replaced by value.
// Options are parsed from JSON; a parse failure leaves f untouched and is
// returned as an error.
func (f Field) Set(p Property, value string) (Field, error) {
	next := f.Clone()
	switch p {
	case PropType:
		return next.WithType(FieldType(value)), nil
	case PropDefault:
		return next.WithDefault(value), nil
	case PropOptions:
		opts, err := ParseOptions(value)
		if err != nil {
			return f, err
		}
		next.Options = opts
		return next, nil
	}
	if ptr := next.textSlot(p); ptr != nil {
		*ptr = value
	}
	return next, nil
}

// WithType sets the type verbatim and re-tags an existing default for the
// new type. Options are kept so switching back to select loses nothing.
func (f Field) WithType(t FieldType) Field {
	next := f.Clone()
	next.Type = t
	if next.Default != nil {
		d := ResolveDefault(t, next.Default.String())
		next.Default = &d
	}
	return next
}

// WithDefault sets the default from its wire form; an empty value unsets it.
func (f Field) WithDefault(raw string) Field {
	next := f.Clone()
	if raw == "" {
		next.Default = nil
		return next
	}
	d := ResolveDefault(next.Type, raw)
	next.Default = &d
	return next
}

func (f *Field) textSlot(p Property) *string {
	switch p {
	case PropID:
		return &f.ID
	case PropLabel:
		return &f.Label
	case PropInfo:
		return &f.Info
	case PropPlaceholder:
		return &f.Placeholder
	case PropHighlightingElem:
		return &f.HighlightingElem
	case PropContent:
		return &f.Content
	case PropThumbnail:
		return &f.Thumbnail
	case PropBanner:
		return &f.Banner
	case PropSubheadline:
		return &f.Subheadline
	case PropPopupHTML:
		return &f.PopupHTML
	case PropTooltipHTML:
		return &f.TooltipHTML
	}
	return nil
}
