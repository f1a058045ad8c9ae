package schema

import "strconv"

// DefaultKind tags the variant held by a Default.
type DefaultKind int

const (
	DefaultText DefaultKind = iota
	DefaultFlag
	DefaultChoice
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultFlag:
		return "flag"
	case DefaultChoice:
		return "choice"
	default:
		return "text"
	}
}

// Default is a field's default value: free text, a boolean flag, or the value
// of one of a select field's options. The variant is chosen by the field type
// via ResolveDefault.
type Default struct {
	kind DefaultKind
	text string
	flag bool
}

// TextDefault returns a free-text default.
func TextDefault(s string) Default {
	return Default{kind: DefaultText, text: s}
}

// FlagDefault returns a boolean default.
func FlagDefault(b bool) Default {
	return Default{kind: DefaultFlag, flag: b}
}

// ChoiceDefault returns a default naming an option value.
func ChoiceDefault(value string) Default {
	return Default{kind: DefaultChoice, text: value}
}

// ResolveDefault tags raw according to the field type. Boolean fields only
// get a flag for the exact strings "true" and "false"; anything else is kept
// as text so no data is lost.
func ResolveDefault(t FieldType, raw string) Default {
	switch t {
	case TypeBoolean:
		switch raw {
		case "true":
			return FlagDefault(true)
		case "false":
			return FlagDefault(false)
		}
		return TextDefault(raw)
	case TypeSelect:
		return ChoiceDefault(raw)
	default:
		return TextDefault(raw)
	}
}

// Kind returns the variant tag.
func (d Default) Kind() DefaultKind {
	return d.kind
}

// Flag returns the boolean value and whether d is a flag.
func (d Default) Flag() (bool, bool) {
	return d.flag, d.kind == DefaultFlag
}

// String returns the wire form of the default.
func (d Default) String() string {
	if d.kind == DefaultFlag {
		return strconv.FormatBool(d.flag)
	}
	return d.text
}
