package schema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/user/fieldeditor/internal/errors"
)

func sampleCollection() Collection {
	flag := FlagDefault(true)
	choice := ChoiceDefault("b")
	color := TextDefault("#FF0000")
	return NewCollection(
		Field{ID: "section", Type: TypeHeader, Content: "Appearance", Banner: "banner.png"},
		Field{ID: "title", Type: TypeText, Label: "Title", Placeholder: "Enter a title", Info: "Shown on top"},
		Field{ID: "accent", Type: TypeColor, Label: "Accent", Default: &color},
		Field{ID: "enabled", Type: TypeBoolean, Label: "Enabled", Default: &flag},
		Field{
			ID:      "size",
			Type:    TypeSelect,
			Label:   "Size",
			Default: &choice,
			Options: []Option{{Value: "a", Label: "Small"}, {Value: "b", Label: "Large"}},
		},
		Field{ID: "cta", Type: TypeButton, Label: "Go", PopupHTML: "<b>hi</b>", TooltipHTML: "<i>tip</i>"},
		Field{ID: "odd", Type: FieldType("slider"), HighlightingElem: "#slider", Thumbnail: "t.png", Subheadline: "sub"},
	)
}

func mustImport(t *testing.T, text string) (Collection, ImportReport) {
	t.Helper()
	c, report, err := ImportWithReport("upload.json", text)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	return c, report
}

func TestExportImport_RoundTrip(t *testing.T) {
	c := sampleCollection()

	text, err := Export(c)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	back, err := Import(text)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !reflect.DeepEqual(back.Fields(), c.Fields()) {
		t.Errorf("round trip changed the fields:\n%+v\n%+v", c.Fields(), back.Fields())
	}

	again, err := Export(back)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if again != text {
		t.Errorf("second export differs:\n%s\n%s", text, again)
	}
}

func TestExport_Empty(t *testing.T) {
	text, err := Export(NewCollection())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if text != "[]" {
		t.Errorf("Expected [], got %s", text)
	}

	back, err := Import(text)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if back.Len() != 0 {
		t.Errorf("Expected no fields, got %d", back.Len())
	}
}

func TestExport_Format(t *testing.T) {
	d := TextDefault("x")
	c := NewCollection(Field{
		ID:          "f",
		Type:        TypeButton,
		Label:       "L",
		Default:     &d,
		Content:     "C",
		TooltipHTML: "<a href=\"#\">&</a>",
	})

	text, err := Export(c)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := `[
  {
    "id": "f",
    "content": "C",
    "type": "button",
    "label": "L",
    "default": "x",
    "tooltip_html": "<a href=\"#\">&</a>"
  }
]`
	if text != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, text)
	}
}

func TestExportIndent_Compact(t *testing.T) {
	c := NewCollection(Field{ID: "a", Type: TypeText})
	text, err := ExportIndent(c, 0)
	if err != nil {
		t.Fatalf("ExportIndent failed: %v", err)
	}
	if want := `[{"id":"a","type":"text"}]`; text != want {
		t.Errorf("Expected %s, got %s", want, text)
	}
}

func TestExport_OmitsAbsentProperties(t *testing.T) {
	text, err := Export(NewCollection(Field{ID: "a", Type: TypeText}))
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	for _, key := range []string{"label", "default", "options", "info", "content"} {
		if strings.Contains(text, `"`+key+`"`) {
			t.Errorf("export should omit %s:\n%s", key, text)
		}
	}
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"not json", "not json", errors.CodeInvalidJSON},
		{"truncated", `[{"id":"a"`, errors.CodeInvalidJSON},
		{"empty input", "", errors.CodeInvalidJSON},
		{"object", "{}", errors.CodeInvalidSchema},
		{"string", `"fields"`, errors.CodeInvalidSchema},
		{"number", "42", errors.CodeInvalidSchema},
		{"null", "null", errors.CodeInvalidSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Import(tt.text)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Expected %v, got %v", tt.code, err)
			}
			if c.Len() != 0 {
				t.Errorf("Expected no fields, got %d", c.Len())
			}
		})
	}
}

func TestImport_NonObjectElementsBecomeEmptyFields(t *testing.T) {
	c, report := mustImport(t, `[{"id":"a"}, 42, null, "x", [1]]`)

	if c.Len() != 5 {
		t.Fatalf("Expected 5 fields, got %d", c.Len())
	}
	for i := 1; i < 5; i++ {
		f, _ := c.At(i)
		if !reflect.DeepEqual(f, Field{}) {
			t.Errorf("element %d: expected an empty field, got %+v", i, f)
		}
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(report.NotObjects, want) {
		t.Errorf("Expected NotObjects %v, got %v", want, report.NotObjects)
	}
	if report.Clean() {
		t.Error("report should not be clean")
	}
}

func TestImport_DropsValuesFieldsCannotHold(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Field
		dropped []string
	}{
		{
			name:    "object label",
			text:    `[{"id":"a","label":{"x":1}}]`,
			want:    Field{ID: "a"},
			dropped: []string{"label"},
		},
		{
			name:    "object id",
			text:    `[{"id":{"x":1},"type":"text"}]`,
			want:    Field{Type: TypeText},
			dropped: []string{"id"},
		},
		{
			name:    "options not an array",
			text:    `[{"id":"a","type":"select","options":"oops"}]`,
			want:    Field{ID: "a", Type: TypeSelect},
			dropped: []string{"options"},
		},
		{
			name:    "options of scalars",
			text:    `[{"id":"a","type":"select","options":[1,2]}]`,
			want:    Field{ID: "a", Type: TypeSelect},
			dropped: []string{"options"},
		},
		{
			name:    "good options kept next to a bad one",
			text:    `[{"id":"a","type":"select","options":[{"value":"x","label":"X"},"y"]}]`,
			want:    Field{ID: "a", Type: TypeSelect, Options: []Option{{Value: "x", Label: "X"}}},
			dropped: []string{"options"},
		},
		{
			name:    "array default and type",
			text:    `[{"id":"a","type":["text"],"default":[true]}]`,
			want:    Field{ID: "a"},
			dropped: []string{"default", "type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, report := mustImport(t, tt.text)
			if c.Len() != 1 {
				t.Fatalf("Expected 1 field, got %d", c.Len())
			}
			f, _ := c.At(0)
			if !reflect.DeepEqual(f, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, f)
			}
			if got := report.DroppedKeys[0]; !reflect.DeepEqual(got, tt.dropped) {
				t.Errorf("Expected dropped keys %v, got %v", tt.dropped, got)
			}
			if len(report.NotObjects) != 0 {
				t.Errorf("Expected no non-object elements, got %v", report.NotObjects)
			}
		})
	}
}

func TestImport_UserMessages(t *testing.T) {
	_, err := Import("{}")
	ee, ok := errors.AsEditorError(err)
	if !ok {
		t.Fatalf("Expected an EditorError, got %v", err)
	}
	if !strings.Contains(ee.GetUserMessage(), errors.InvalidSchemaUserMessage) {
		t.Errorf("unexpected message %q", ee.GetUserMessage())
	}

	_, err = Import("{")
	ee, ok = errors.AsEditorError(err)
	if !ok {
		t.Fatalf("Expected an EditorError, got %v", err)
	}
	if !strings.Contains(ee.GetUserMessage(), errors.InvalidJSONUserMessage) {
		t.Errorf("unexpected message %q", ee.GetUserMessage())
	}
}

func TestImport_Lenient(t *testing.T) {
	text := "\xEF\xBB\xBF" + `[
		{"id": 7, "type": "boolean", "default": true, "label": null, "extra": 1, "another": "x"},
		{"id": "s", "type": "select", "options": [{"value": 1, "label": 2.5}], "default": 1},
		{"id": "n", "type": "text", "options": null}
	]`

	c, report := mustImport(t, text)
	if c.Len() != 3 {
		t.Fatalf("Expected 3 fields, got %d", c.Len())
	}

	first, _ := c.At(0)
	if first.ID != "7" || first.Label != "" {
		t.Errorf("Expected id 7 and no label, got %+v", first)
	}
	if first.Default == nil || !reflect.DeepEqual(*first.Default, FlagDefault(true)) {
		t.Errorf("Expected flag default true, got %v", first.Default)
	}

	second, _ := c.At(1)
	if want := []Option{{Value: "1", Label: "2.5"}}; !reflect.DeepEqual(second.Options, want) {
		t.Errorf("Expected %v, got %v", want, second.Options)
	}
	if !reflect.DeepEqual(*second.Default, ChoiceDefault("1")) {
		t.Errorf("Expected choice default 1, got %+v", *second.Default)
	}

	third, _ := c.At(2)
	if third.Options != nil {
		t.Errorf("Expected nil options, got %v", third.Options)
	}

	if report.Fields != 3 {
		t.Errorf("Expected 3 fields in the report, got %d", report.Fields)
	}
	if want := map[int][]string{0: {"another", "extra"}}; !reflect.DeepEqual(report.IgnoredKeys, want) {
		t.Errorf("Expected %v, got %v", want, report.IgnoredKeys)
	}
	if report.DroppedKeys != nil || report.NotObjects != nil {
		t.Errorf("nothing should be dropped, got %v and %v", report.DroppedKeys, report.NotObjects)
	}
	if want := "upload.json: 3 fields, ignored keys in #0 (another, extra)"; report.String() != want {
		t.Errorf("Expected %q, got %q", want, report.String())
	}
}

func TestImportReport_String(t *testing.T) {
	_, report := mustImport(t, `[{"id":"a","label":[1],"x":1}, 3]`)

	want := "upload.json: 2 fields, ignored keys in #0 (x); dropped values in #0 (label); empty fields for non-object elements #1"
	if report.String() != want {
		t.Errorf("Expected %q, got %q", want, report.String())
	}
}

func TestImport_DefaultResolvedAfterType(t *testing.T) {
	// key order in the document does not matter
	c, err := Import(`[{"default":"false","type":"boolean","id":"b"}]`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	f, _ := c.At(0)
	if flag, ok := f.Default.Flag(); !ok || flag {
		t.Errorf("Expected flag false, got %v (ok=%v)", flag, ok)
	}
}

func TestImport_DuplicateIDsKept(t *testing.T) {
	c, err := Import(`[{"id":"a","type":"text"},{"id":"a","type":"color"}]`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	assertIDs(t, c, "a", "a")
}

func TestImportReport_NoIgnoredKeys(t *testing.T) {
	_, report, err := ImportWithReport("clipboard", `[{"id":"a","type":"text"}]`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !report.Clean() {
		t.Errorf("Expected a clean report, got %+v", report)
	}
	if want := "clipboard: 1 fields"; report.String() != want {
		t.Errorf("Expected %q, got %q", want, report.String())
	}
}
