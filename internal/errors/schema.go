package errors

import (
	"fmt"
)

// Messages shown to the user when an import is rejected.
const (
	InvalidJSONUserMessage   = "Error parsing JSON file. Please check the file and try again."
	InvalidSchemaUserMessage = "Invalid JSON format. Please upload an array of fields."
)

// InvalidJSONError is raised when imported text is not well-formed JSON
type InvalidJSONError struct {
	*EditorError
}

// NewInvalidJSONError creates a new invalid JSON error
func NewInvalidJSONError(source string, cause error) *InvalidJSONError {
	return &InvalidJSONError{
		EditorError: &EditorError{
			Message: InvalidJSONUserMessage,
			Code:    CodeInvalidJSON,
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Schema Import",
				Component: "SchemaSerializer",
				Details: map[string]interface{}{
					"source": source,
				},
				Suggestions: []string{
					"Check the file for trailing commas or unquoted keys",
					"Run 'fieldeditor check <file>' to see the parser error",
				},
				Recoverable: true,
			},
			ExitCode: ExitValidationError,
		},
	}
}

// InvalidSchemaError is raised when imported JSON is well-formed but is not
// an array of field objects
type InvalidSchemaError struct {
	*EditorError
}

// NewInvalidSchemaError creates a new invalid schema error
func NewInvalidSchemaError(source string, reason string) *InvalidSchemaError {
	return &InvalidSchemaError{
		EditorError: &EditorError{
			Message: InvalidSchemaUserMessage,
			Code:    CodeInvalidSchema,
			Cause:   fmt.Errorf("%s", reason),
			Context: &ErrorContext{
				Operation: "Schema Import",
				Component: "SchemaSerializer",
				Details: map[string]interface{}{
					"source": source,
					"reason": reason,
				},
				Suggestions: []string{
					"Wrap a single field object in [ ] to make it an array",
					"Export a schema with 'fieldeditor fmt' to see the expected shape",
				},
				Recoverable: true,
			},
			ExitCode: ExitValidationError,
		},
	}
}

// MalformedOptionsError is raised when an in-place edit of the options
// property is not a JSON array of {value, label} objects. The edit is
// discarded and the previous options are kept.
type MalformedOptionsError struct {
	*EditorError
	Input string
}

// NewMalformedOptionsError creates a new malformed options error
func NewMalformedOptionsError(input string, cause error) *MalformedOptionsError {
	return &MalformedOptionsError{
		EditorError: &EditorError{
			Message: "Invalid JSON for options",
			Code:    CodeMalformedOptions,
			Cause:   cause,
			Context: &ErrorContext{
				Operation:   "Options Edit",
				Component:   "PropertyRegistry",
				Suggestions: []string{`Use the form [{"value": "a", "label": "Alpha"}]`},
				Recoverable: true,
			},
			ExitCode: ExitValidationError,
		},
		Input: input,
	}
}

// OutOfRangeError is raised when a collection index is outside [0, length).
// Reaching it through the UI is a programming error.
type OutOfRangeError struct {
	*EditorError
	Index  int
	Length int
}

// NewOutOfRangeError creates a new out of range error
func NewOutOfRangeError(index, length int) *OutOfRangeError {
	return &OutOfRangeError{
		EditorError: &EditorError{
			Message: fmt.Sprintf("Field index %d out of range [0, %d)", index, length),
			Code:    CodeOutOfRange,
			Context: &ErrorContext{
				Operation: "Field Update",
				Component: "FieldCollection",
				Details: map[string]interface{}{
					"index":  index,
					"length": length,
				},
				Recoverable: true,
			},
			ExitCode: ExitGeneralError,
		},
		Index:  index,
		Length: length,
	}
}

// IncompleteDraftError is raised when a new field is submitted without an
// id or a type
type IncompleteDraftError struct {
	*EditorError
}

// NewIncompleteDraftError creates a new incomplete draft error
func NewIncompleteDraftError(missing string) *IncompleteDraftError {
	return &IncompleteDraftError{
		EditorError: &EditorError{
			Message:  fmt.Sprintf("New field is missing its %s", missing),
			Code:     CodeIncompleteDraft,
			ExitCode: ExitValidationError,
		},
	}
}
