package registry

import (
	"regexp"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/schema"
)

// ColorPattern is the presentation constraint of colour defaults. It is not
// enforced when values are read or imported.
const ColorPattern = `^#[0-9A-Fa-f]{6}$`

var colorRe = regexp.MustCompile(ColorPattern)

// Choice is one entry of a choice widget: Label is shown, Value is stored.
type Choice struct {
	Value string
	Label string
}

// Widget describes how to draw and edit one property of one field.
type Widget struct {
	Property schema.Property
	Kind     WidgetKind
	// Value is the current text of the property.
	Value string
	// Choices and Selected are set for choice widgets. Selected is -1 when
	// the current value matches no choice.
	Choices  []Choice
	Selected int
	// Pattern and Swatch are set for colour widgets. Swatch is empty when
	// Value is not a valid colour, which draws as transparent.
	Pattern string
	Swatch  string
}

// ChoiceValue returns the stored value of choice i.
func (w Widget) ChoiceValue(i int) (string, bool) {
	if i < 0 || i >= len(w.Choices) {
		return "", false
	}
	return w.Choices[i].Value, true
}

// Describe resolves the widget for property p of field f. The kind comes
// from the catalog entry of p; the field only supplies choices and swatch.
func Describe(f schema.Field, p schema.Property) Widget {
	w := Widget{Property: p, Value: f.Text(p), Selected: -1}
	if e, ok := Lookup(p); ok {
		w.Kind = e.KindFor(f.Type)
	}

	switch w.Kind {
	case WidgetChoice:
		w.Choices = choicesFor(f, p)
	case WidgetColor:
		w.Pattern = ColorPattern
		if ValidColor(w.Value) {
			w.Swatch = w.Value
		}
	}

	if w.Kind == WidgetChoice && (p != schema.PropDefault || f.Default != nil) {
		for i, c := range w.Choices {
			if c.Value == w.Value {
				w.Selected = i
				break
			}
		}
	}
	return w
}

func choicesFor(f schema.Field, p schema.Property) []Choice {
	var choices []Choice
	switch {
	case p == schema.PropType:
		for _, t := range schema.FieldTypes() {
			choices = append(choices, Choice{Value: string(t), Label: string(t)})
		}
	case f.Type == schema.TypeBoolean:
		choices = []Choice{{Value: "true", Label: "True"}, {Value: "false", Label: "False"}}
	case f.Type == schema.TypeSelect:
		for _, opt := range f.Options {
			choices = append(choices, Choice{Value: opt.Value, Label: opt.Label})
		}
	}
	return choices
}

// ValidColor reports whether s matches ColorPattern.
func ValidColor(s string) bool {
	return colorRe.MatchString(s)
}

// Apply returns f with property p replaced by input. A malformed options
// edit returns f unchanged with a MalformedOptionsError. Choice and colour
// values are stored as given.
func Apply(f schema.Field, p schema.Property, input string) (schema.Field, error) {
	if !p.Valid() {
		return f, errors.NewUnknownPropertyError(p.String(), schema.PropertyNames())
	}
	next, err := f.Set(p, input)
	if err != nil {
		if p == schema.PropOptions {
			return f, errors.NewMalformedOptionsError(input, err)
		}
		return f, err
	}
	return next, nil
}
