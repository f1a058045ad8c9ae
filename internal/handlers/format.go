package handlers

import (
	"context"
	"os"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/schema"
)

// FormatResult is the canonical text of a schema file
type FormatResult struct {
	Path      string
	Formatted string
	Changed   bool
	Written   bool
}

// FormatHandler re-exports a schema file in canonical form
type FormatHandler struct {
	*BaseHandler
	path   string
	indent int
	write  bool
}

// NewFormatHandler creates a new format handler. With write set, a changed
// file is rewritten in place.
func NewFormatHandler(path string, indent int, write bool, logger *logging.Logger) *FormatHandler {
	return &FormatHandler{
		BaseHandler: NewBaseHandler(logger),
		path:        path,
		indent:      indent,
		write:       write,
	}
}

// Handle formats the file
func (h *FormatHandler) Handle(ctx context.Context) (*FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	original, err := h.readFile(h.path)
	if err != nil {
		return nil, err
	}
	fields, _, err := schema.ImportWithReport(h.path, original)
	if err != nil {
		return nil, err
	}

	formatted, err := schema.ExportIndent(fields, h.indent)
	if err != nil {
		return nil, err
	}
	formatted += "\n"

	result := &FormatResult{
		Path:      h.path,
		Formatted: formatted,
		Changed:   formatted != original,
	}

	if h.write && result.Changed {
		info, err := os.Stat(h.path)
		if err != nil {
			return nil, errors.NewFileReadError(h.path, err)
		}
		if err := os.WriteFile(h.path, []byte(formatted), info.Mode().Perm()); err != nil {
			return nil, errors.NewFileWriteError(h.path, err)
		}
		result.Written = true
		h.Logger.Info("Schema formatted", logging.String("path", h.path))
	}

	return result, nil
}
