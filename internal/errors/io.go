package errors

import (
	"fmt"
)

// FileError is raised when a schema file cannot be read or written
type FileError struct {
	*EditorError
	Path string
}

// NewFileReadError creates a new file read error
func NewFileReadError(path string, cause error) *FileError {
	return newFileError("read", path, cause)
}

// NewFileWriteError creates a new file write error
func NewFileWriteError(path string, cause error) *FileError {
	return newFileError("write", path, cause)
}

func newFileError(op, path string, cause error) *FileError {
	return &FileError{
		EditorError: &EditorError{
			Message: fmt.Sprintf("Failed to %s file: %s", op, path),
			Code:    CodeIO,
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Schema File " + op,
				Component: "Filesystem",
				Details: map[string]interface{}{
					"path": path,
				},
				Suggestions: []string{
					"Check that the path exists",
					"Check file permissions",
				},
				Recoverable: true,
			},
			ExitCode: ExitIOError,
		},
		Path: path,
	}
}

// ClipboardError is raised when the system clipboard rejects a write
type ClipboardError struct {
	*EditorError
}

// NewClipboardError creates a new clipboard error
func NewClipboardError(cause error) *ClipboardError {
	return &ClipboardError{
		EditorError: &EditorError{
			Message: "Failed to copy JSON to the clipboard",
			Code:    CodeClipboard,
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Clipboard Copy",
				Component: "Clipboard",
				Suggestions: []string{
					"Install xclip, xsel or wl-clipboard on Linux",
					"Export to a file with ctrl+e instead",
				},
				Recoverable: true,
			},
			ExitCode: ExitIOError,
		},
	}
}
