// Package registry maps every field property to the widget that edits it.
package registry

import (
	"github.com/user/fieldeditor/internal/schema"
)

// WidgetKind is the editing control used for one property.
type WidgetKind int

const (
	// WidgetText is a single-line free-text editor.
	WidgetText WidgetKind = iota
	// WidgetTextArea is a multi-line free-text editor.
	WidgetTextArea
	// WidgetChoice is a single-choice selector.
	WidgetChoice
	// WidgetColor is a single-line editor paired with a colour swatch.
	WidgetColor
	// WidgetJSON is a multi-line editor whose text must parse as JSON.
	WidgetJSON
)

func (k WidgetKind) String() string {
	switch k {
	case WidgetTextArea:
		return "textarea"
	case WidgetChoice:
		return "choice"
	case WidgetColor:
		return "color"
	case WidgetJSON:
		return "json"
	default:
		return "text"
	}
}

// Multiline reports whether the widget edits more than one line.
func (k WidgetKind) Multiline() bool {
	return k == WidgetTextArea || k == WidgetJSON
}

// Entry is the static catalog entry of one property.
type Entry struct {
	Property  schema.Property
	Kind      WidgetKind
	Overrides map[schema.FieldType]WidgetKind
}

// KindFor returns the widget kind used for fields of type t.
func (e Entry) KindFor(t schema.FieldType) WidgetKind {
	if k, ok := e.Overrides[t]; ok {
		return k
	}
	return e.Kind
}

var catalog = buildCatalog()

func buildCatalog() []Entry {
	entries := make([]Entry, 0, len(schema.Properties()))
	for _, p := range schema.Properties() {
		e := Entry{Property: p, Kind: WidgetText}
		switch p {
		case schema.PropType:
			e.Kind = WidgetChoice
		case schema.PropOptions:
			e.Kind = WidgetJSON
		case schema.PropDefault:
			e.Kind = WidgetTextArea
			e.Overrides = map[schema.FieldType]WidgetKind{
				schema.TypeBoolean: WidgetChoice,
				schema.TypeSelect:  WidgetChoice,
				schema.TypeColor:   WidgetColor,
			}
		case schema.PropPopupHTML, schema.PropTooltipHTML:
			e.Kind = WidgetTextArea
		}
		entries = append(entries, e)
	}
	return entries
}

// Catalog returns every entry in canonical property order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the entry for p.
func Lookup(p schema.Property) (Entry, bool) {
	if !p.Valid() {
		return Entry{}, false
	}
	return catalog[p], true
}
