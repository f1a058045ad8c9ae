package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OptionsJSON renders options as a compact JSON array, "[]" when empty.
func OptionsJSON(opts []Option) string {
	if opts == nil {
		opts = []Option{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(opts); err != nil {
		return "[]"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// ParseOptions parses the text of an options edit. It must be a JSON array
// of objects; value and label scalars are coerced to strings.
func ParseOptions(text string) ([]Option, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}
	opts, clean := decodeOptions(raw)
	if !clean {
		return nil, fmt.Errorf("options: not an array of objects")
	}
	return opts, nil
}
