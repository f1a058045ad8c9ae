package handlers

import (
	"context"
	"os"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/schema"
)

// Handler is the interface that all handlers must implement
type Handler interface {
	// Handle executes the handler logic
	Handle(ctx context.Context) error
}

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	Logger *logging.Logger
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(logger *logging.Logger) *BaseHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewFileReadError(path, err)
	}
	return string(data), nil
}

// loadSchema reads and imports the schema file at path
func (h *BaseHandler) loadSchema(path string) (schema.Collection, schema.ImportReport, error) {
	text, err := h.readFile(path)
	if err != nil {
		return schema.Collection{}, schema.ImportReport{Source: path}, err
	}

	fields, report, err := schema.ImportWithReport(path, text)
	if err != nil {
		h.Logger.Debug("Schema rejected", logging.String("path", path), logging.Error(err))
		return schema.Collection{}, report, err
	}

	h.Logger.Debug("Schema loaded",
		logging.String("path", path),
		logging.Int("fields", report.Fields))
	return fields, report, nil
}
