package errors

type ExitCode int

const (
	ExitSuccess         ExitCode = 0
	ExitGeneralError    ExitCode = 1
	ExitConfigError     ExitCode = 2
	ExitValidationError ExitCode = 3
	ExitIOError         ExitCode = 4
)

func (e ExitCode) Int() int {
	return int(e)
}

// Code identifies the kind of an EditorError.
type Code int

const (
	CodeGeneral Code = iota
	CodeInvalidJSON
	CodeInvalidSchema
	CodeMalformedOptions
	CodeOutOfRange
	CodeIncompleteDraft
	CodeUnknownProperty
	CodeConfig
	CodeIO
	CodeClipboard
)

func (c Code) String() string {
	switch c {
	case CodeInvalidJSON:
		return "InvalidJSON"
	case CodeInvalidSchema:
		return "InvalidSchema"
	case CodeMalformedOptions:
		return "MalformedOptionsEdit"
	case CodeOutOfRange:
		return "OutOfRange"
	case CodeIncompleteDraft:
		return "IncompleteDraft"
	case CodeUnknownProperty:
		return "UnknownProperty"
	case CodeConfig:
		return "Config"
	case CodeIO:
		return "IO"
	case CodeClipboard:
		return "Clipboard"
	default:
		return "General"
	}
}
