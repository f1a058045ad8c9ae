package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// jsonKind names the kind of a raw JSON value for messages.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}

// scalarString converts a JSON scalar to its string form. present is false
// for null. ok is false for objects and arrays, which no field slot holds.
func scalarString(raw json.RawMessage) (value string, present, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false, true
	}
	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return "", false, false
		}
		return value, true, true
	case 'n':
		return "", false, true
	case '{', '[':
		return "", false, false
	default:
		// booleans and numbers keep their literal spelling
		return string(trimmed), true, true
	}
}

// decodeOptions keeps every option it can read. clean is false when raw is
// not an array or some element had to be skipped or trimmed.
func decodeOptions(raw json.RawMessage) (opts []Option, clean bool) {
	switch jsonKind(raw) {
	case "null":
		return nil, true
	case "an array":
	default:
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}

	clean = true
	for _, elem := range elems {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(elem, &obj); err != nil || obj == nil {
			clean = false
			continue
		}
		var opt Option
		var valueOK, labelOK bool
		opt.Value, _, valueOK = scalarString(obj["value"])
		opt.Label, _, labelOK = scalarString(obj["label"])
		if !valueOK || !labelOK {
			clean = false
		}
		opts = append(opts, opt)
	}
	if len(opts) == 0 {
		opts = nil
	}
	return opts, clean
}

// decodedField is one array element of an imported schema. Elements that are
// not objects still become a Field, left empty.
type decodedField struct {
	Field     Field
	NotObject bool
	Unknown   []string // keys outside the catalog
	Dropped   []string // catalog keys whose value the field cannot hold
}

func decodeField(raw json.RawMessage) decodedField {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return decodedField{NotObject: true}
	}

	var d decodedField
	var rawDefault string
	var hasDefault bool

	for key, value := range obj {
		p, known := ParseProperty(key)
		if !known {
			d.Unknown = append(d.Unknown, key)
			continue
		}

		ok := true
		switch p {
		case PropOptions:
			d.Field.Options, ok = decodeOptions(value)
		case PropDefault:
			rawDefault, hasDefault, ok = scalarString(value)
		case PropType:
			var s string
			s, _, ok = scalarString(value)
			d.Field.Type = FieldType(s)
		default:
			var s string
			s, _, ok = scalarString(value)
			if slot := d.Field.textSlot(p); slot != nil {
				*slot = s
			}
		}
		if !ok {
			d.Dropped = append(d.Dropped, key)
		}
	}

	// default is tagged only once the type is known
	if hasDefault {
		def := ResolveDefault(d.Field.Type, rawDefault)
		d.Field.Default = &def
	}

	sort.Strings(d.Unknown)
	sort.Strings(d.Dropped)
	return d
}

func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}
