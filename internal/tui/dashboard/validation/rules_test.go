package validation

import "testing"

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		input   string
		wantErr bool
	}{
		{"non-empty ok", ValidateNonEmpty("id"), "title", false},
		{"non-empty blank", ValidateNonEmpty("id"), "  ", true},
		{"color empty", ValidateColor(), "", false},
		{"color valid", ValidateColor(), "#3366ff", false},
		{"color short", ValidateColor(), "#36f", true},
		{"color name", ValidateColor(), "red", true},
		{"options array", ValidateOptionsJSON(), `[{"value":"s","label":"Small"}]`, false},
		{"options empty array", ValidateOptionsJSON(), `[]`, false},
		{"options broken", ValidateOptionsJSON(), `[{"value":`, true},
		{"options object", ValidateOptionsJSON(), `{"value":"s"}`, true},
		{"enum ok", ValidateEnum("text", "json"), "json", false},
		{"enum other", ValidateEnum("text", "json"), "yaml", true},
		{"int in range", ValidateIntRange(0, 8), "4", false},
		{"int above", ValidateIntRange(0, 8), "9", true},
		{"int text", ValidateIntRange(0, 8), "two", true},
		{"duration ok", ValidatePositiveDuration(), "1500ms", false},
		{"duration zero", ValidatePositiveDuration(), "0s", true},
		{"duration bare number", ValidatePositiveDuration(), "2", true},
		{"path json", ValidateSchemaPath(), "fields.json", false},
		{"path upper", ValidateSchemaPath(), "FIELDS.JSON", false},
		{"path blank", ValidateSchemaPath(), " ", true},
		{"path yaml", ValidateSchemaPath(), "fields.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("check(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
