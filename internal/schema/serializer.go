package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/user/fieldeditor/internal/errors"
)

// DefaultIndent is the number of spaces per level in exported JSON.
const DefaultIndent = 2

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// wireField fixes the exported key order.
type wireField struct {
	ID               string    `json:"id"`
	Content          string    `json:"content,omitempty"`
	Type             FieldType `json:"type"`
	Label            string    `json:"label,omitempty"`
	Default          *string   `json:"default,omitempty"`
	Options          []Option  `json:"options,omitempty"`
	Info             string    `json:"info,omitempty"`
	Placeholder      string    `json:"placeholder,omitempty"`
	HighlightingElem string    `json:"highlightingElem,omitempty"`
	Thumbnail        string    `json:"thumbnail,omitempty"`
	Banner           string    `json:"banner,omitempty"`
	Subheadline      string    `json:"subheadline,omitempty"`
	PopupHTML        string    `json:"popup_html,omitempty"`
	TooltipHTML      string    `json:"tooltip_html,omitempty"`
}

func toWire(f Field) wireField {
	w := wireField{
		ID:               f.ID,
		Content:          f.Content,
		Type:             f.Type,
		Label:            f.Label,
		Options:          f.Options,
		Info:             f.Info,
		Placeholder:      f.Placeholder,
		HighlightingElem: f.HighlightingElem,
		Thumbnail:        f.Thumbnail,
		Banner:           f.Banner,
		Subheadline:      f.Subheadline,
		PopupHTML:        f.PopupHTML,
		TooltipHTML:      f.TooltipHTML,
	}
	if f.Default != nil {
		s := f.Default.String()
		w.Default = &s
	}
	return w
}

// Export renders c as a JSON array indented by DefaultIndent spaces.
func Export(c Collection) (string, error) {
	return ExportIndent(c, DefaultIndent)
}

// ExportIndent renders c as a JSON array indented by indent spaces; zero
// produces compact output. HTML characters are written verbatim.
func ExportIndent(c Collection, indent int) (string, error) {
	wire := make([]wireField, 0, c.Len())
	for _, f := range c.fields {
		wire = append(wire, toWire(f))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(wire); err != nil {
		return "", fmt.Errorf("failed to encode schema: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// ImportReport lists what an import accepted and what it left out. Elements
// are never rejected one by one: an element that is not an object becomes an
// empty field, and a value a field cannot hold is dropped.
type ImportReport struct {
	Source      string
	Fields      int
	IgnoredKeys map[int][]string // element index -> keys outside the catalog
	DroppedKeys map[int][]string // element index -> catalog keys with unusable values
	NotObjects  []int            // elements imported as empty fields
}

// Clean reports whether every element was taken over in full.
func (r ImportReport) Clean() bool {
	return len(r.IgnoredKeys) == 0 && len(r.DroppedKeys) == 0 && len(r.NotObjects) == 0
}

// String summarises the report on one line.
func (r ImportReport) String() string {
	var parts []string
	if len(r.IgnoredKeys) > 0 {
		parts = append(parts, "ignored keys in "+keysByIndex(r.IgnoredKeys))
	}
	if len(r.DroppedKeys) > 0 {
		parts = append(parts, "dropped values in "+keysByIndex(r.DroppedKeys))
	}
	if len(r.NotObjects) > 0 {
		indexes := make([]string, 0, len(r.NotObjects))
		for _, i := range r.NotObjects {
			indexes = append(indexes, fmt.Sprintf("#%d", i))
		}
		parts = append(parts, "empty fields for non-object elements "+strings.Join(indexes, ", "))
	}

	summary := fmt.Sprintf("%s: %d fields", r.Source, r.Fields)
	if len(parts) == 0 {
		return summary
	}
	return summary + ", " + strings.Join(parts, "; ")
}

func keysByIndex(keys map[int][]string) string {
	indexes := make([]int, 0, len(keys))
	for i := range keys {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	parts := make([]string, 0, len(indexes))
	for _, i := range indexes {
		parts = append(parts, fmt.Sprintf("#%d (%s)", i, joinKeys(keys[i])))
	}
	return strings.Join(parts, "; ")
}

// Import parses text as a JSON array of fields.
func Import(text string) (Collection, error) {
	c, _, err := ImportWithReport("input", text)
	return c, err
}

// ImportWithReport parses text as a JSON array of fields. It fails with an
// InvalidJSONError when text is not JSON and an InvalidSchemaError when the
// top-level value is not an array. Every element of an array is imported.
// source names the origin of text in errors and the report.
func ImportWithReport(source, text string) (Collection, ImportReport, error) {
	report := ImportReport{Source: source}
	data := bytes.TrimPrefix([]byte(text), utf8BOM)

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Collection{}, report, errors.NewInvalidJSONError(source, err)
	}
	if kind := jsonKind(raw); kind != "an array" {
		return Collection{}, report, errors.NewInvalidSchemaError(source, "top-level value is "+kind)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Collection{}, report, errors.NewInvalidSchemaError(source, err.Error())
	}

	fields := make([]Field, 0, len(elems))
	for i, elem := range elems {
		d := decodeField(elem)
		if d.NotObject {
			report.NotObjects = append(report.NotObjects, i)
		}
		if len(d.Unknown) > 0 {
			if report.IgnoredKeys == nil {
				report.IgnoredKeys = make(map[int][]string)
			}
			report.IgnoredKeys[i] = d.Unknown
		}
		if len(d.Dropped) > 0 {
			if report.DroppedKeys == nil {
				report.DroppedKeys = make(map[int][]string)
			}
			report.DroppedKeys[i] = d.Dropped
		}
		fields = append(fields, d.Field)
	}

	report.Fields = len(fields)
	return NewCollection(fields...), report, nil
}
