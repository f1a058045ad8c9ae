package schema

import (
	"reflect"
	"testing"
)

func TestProperty_CatalogOrder(t *testing.T) {
	want := []string{
		"id", "type", "label", "default", "options", "info", "placeholder", "highlightingElem",
		"content", "thumbnail", "banner", "subheadline", "popup_html", "tooltip_html",
	}
	if got := PropertyNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	for i, p := range Properties() {
		if p != Property(i) {
			t.Errorf("property %d is %s", i, p)
		}
		parsed, ok := ParseProperty(p.String())
		if !ok || parsed != p {
			t.Errorf("ParseProperty(%q) = %s, %v", p.String(), parsed, ok)
		}
	}

	if _, ok := ParseProperty("colour"); ok {
		t.Error("colour should not parse")
	}
	if s := Property(99).String(); s != "unknown" {
		t.Errorf("Expected unknown, got %s", s)
	}
}

func TestFieldType_Known(t *testing.T) {
	for _, ft := range FieldTypes() {
		if !ft.Known() {
			t.Errorf("%s should be known", ft)
		}
	}
	if FieldType("slider").Known() || FieldType("").Known() {
		t.Error("slider and the empty type should not be known")
	}
}

func TestResolveDefault(t *testing.T) {
	tests := []struct {
		typ  FieldType
		raw  string
		want Default
	}{
		{TypeBoolean, "true", FlagDefault(true)},
		{TypeBoolean, "false", FlagDefault(false)},
		{TypeBoolean, "yes", TextDefault("yes")},
		{TypeSelect, "a", ChoiceDefault("a")},
		{TypeColor, "#FF0000", TextDefault("#FF0000")},
		{TypeText, "true", TextDefault("true")},
		{FieldType("slider"), "5", TextDefault("5")},
	}

	for _, tt := range tests {
		got := ResolveDefault(tt.typ, tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s/%s: expected %+v, got %+v", tt.typ, tt.raw, tt.want, got)
		}
		if got.String() != tt.raw {
			t.Errorf("%s/%s: wire form changed to %q", tt.typ, tt.raw, got.String())
		}
	}

	if flag, ok := FlagDefault(true).Flag(); !ok || !flag {
		t.Errorf("Expected flag true, got %v (ok=%v)", flag, ok)
	}
	if _, ok := TextDefault("true").Flag(); ok {
		t.Error("a text default is not a flag")
	}
}

func TestField_Heading(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"header prefers content", Field{ID: "h", Type: TypeHeader, Content: "Section", Label: "L"}, "Section"},
		{"header falls back to label", Field{ID: "h", Type: TypeHeader, Label: "L"}, "L"},
		{"header falls back to id", Field{ID: "h", Type: TypeHeader}, "h"},
		{"text ignores content", Field{ID: "t", Type: TypeText, Content: "C", Label: "L"}, "L"},
		{"text falls back to id", Field{ID: "t", Type: TypeText, Content: "C"}, "t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Heading(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestField_SetReplacesExactlyOneProperty(t *testing.T) {
	base := Field{ID: "f", Type: TypeText, Label: "Name", Info: "i"}

	for _, p := range Properties() {
		if p == PropOptions || p == PropType || p == PropDefault {
			continue
		}
		next, err := base.Set(p, "new")
		if err != nil {
			t.Fatalf("Set(%s) failed: %v", p, err)
		}
		if next.Text(p) != "new" {
			t.Errorf("%s: expected new, got %q", p, next.Text(p))
		}

		for _, other := range Properties() {
			if other != p && base.Text(other) != next.Text(other) {
				t.Errorf("%s changed while setting %s", other, p)
			}
		}
	}
}

func TestField_SetOptions(t *testing.T) {
	base := Field{ID: "s", Type: TypeSelect, Options: []Option{{Value: "a", Label: "Alpha"}}}

	next, err := base.Set(PropOptions, `[{"value":"b","label":"Beta"},{"value":1,"label":true}]`)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	want := []Option{{Value: "b", Label: "Beta"}, {Value: "1", Label: "true"}}
	if !reflect.DeepEqual(next.Options, want) {
		t.Errorf("Expected %v, got %v", want, next.Options)
	}

	for _, bad := range []string{"[invalid", `{"value":"a"}`} {
		unchanged, err := base.Set(PropOptions, bad)
		if err == nil {
			t.Errorf("%s: expected an error", bad)
		}
		if !reflect.DeepEqual(unchanged, base) {
			t.Errorf("%s: field changed to %+v", bad, unchanged)
		}
	}

	cleared, err := base.Set(PropOptions, "[]")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cleared.Options != nil {
		t.Errorf("Expected nil options, got %v", cleared.Options)
	}
	if cleared.Text(PropOptions) != "[]" {
		t.Errorf("Expected [], got %s", cleared.Text(PropOptions))
	}
}

func TestField_WithTypeRetagsDefault(t *testing.T) {
	f := Field{ID: "b", Type: TypeText}.WithDefault("true")
	if f.Default.Kind() != DefaultText {
		t.Fatalf("Expected a text default, got %v", f.Default.Kind())
	}

	asBool := f.WithType(TypeBoolean)
	if !reflect.DeepEqual(*asBool.Default, FlagDefault(true)) {
		t.Errorf("Expected flag true, got %+v", *asBool.Default)
	}

	asSelect := asBool.WithType(TypeSelect)
	if !reflect.DeepEqual(*asSelect.Default, ChoiceDefault("true")) {
		t.Errorf("Expected choice true, got %+v", *asSelect.Default)
	}

	if !reflect.DeepEqual(*f.Default, TextDefault("true")) {
		t.Errorf("receiver default changed to %+v", *f.Default)
	}

	untyped := Field{ID: "x", Type: TypeText}.WithType("slider")
	if untyped.Default != nil {
		t.Errorf("Expected no default, got %+v", *untyped.Default)
	}
	if untyped.Type != FieldType("slider") {
		t.Errorf("type is set verbatim, got %q", untyped.Type)
	}
}

func TestField_WithTypeKeepsOptions(t *testing.T) {
	f := Field{ID: "s", Type: TypeSelect, Options: []Option{{Value: "a", Label: "A"}}}
	back := f.WithType(TypeText).WithType(TypeSelect)
	if !reflect.DeepEqual(back.Options, f.Options) {
		t.Errorf("Expected %v, got %v", f.Options, back.Options)
	}
}

func TestField_WithDefaultEmptyUnsets(t *testing.T) {
	f := Field{ID: "c", Type: TypeColor}.WithDefault("#00FF00")
	if f.Default == nil {
		t.Fatal("Expected a default")
	}
	if f.WithDefault("").Default != nil {
		t.Error("an empty default should unset it")
	}
}

func TestOptionsJSON(t *testing.T) {
	if got := OptionsJSON(nil); got != "[]" {
		t.Errorf("Expected [], got %s", got)
	}
	want := `[{"value":"<b>","label":"A & B"}]`
	if got := OptionsJSON([]Option{{Value: "<b>", Label: "A & B"}}); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
