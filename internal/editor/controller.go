package editor

import (
	"fmt"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/schema"
)

// Controller applies events to editor state. It holds no state of its own;
// every Dispatch returns the next State and leaves the given one untouched.
type Controller struct {
	logger *logging.Logger
	indent int
}

// NewController creates a controller exporting with indent spaces.
func NewController(logger *logging.Logger, indent int) *Controller {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if indent < 0 {
		indent = schema.DefaultIndent
	}
	return &Controller{
		logger: logger.Named("editor"),
		indent: indent,
	}
}

// Dispatch applies ev to s. On error the returned state equals s.
func (c *Controller) Dispatch(s State, ev Event) (State, error) {
	c.logger.Debug("Dispatching event", logging.String("event", ev.eventName()))

	switch ev := ev.(type) {
	case AddField:
		s.Fields = s.Fields.Append(ev.Field)
		s.Modified = true
		return s, nil

	case EditProperty:
		return c.editProperty(s, ev)

	case MoveField:
		if n := s.Fields.Len(); ev.From != ev.To && inRange(ev.From, n) && inRange(ev.To, n) {
			s.Fields = s.Fields.Move(ev.From, ev.To)
			s.Modified = true
		}
		return s, nil

	case ToggleVisibility:
		s.Visible = s.Visible.Toggle(ev.Property)
		return s, nil

	case ImportSchema:
		return c.importSchema(s, ev)

	case CopySucceeded:
		s.Copied = true
		s.CopyGeneration++
		return s, nil

	case CopyExpired:
		if ev.Generation == s.CopyGeneration {
			s.Copied = false
		}
		return s, nil

	case SchemaExported:
		s.Modified = false
		s.Source = ev.Path
		c.logger.Info("Schema exported",
			logging.String("path", ev.Path),
			logging.Int("fields", s.Fields.Len()))
		return s, nil

	case OpenDraft:
		s.Draft.Open = true
		return s, nil

	case EditDraft:
		switch ev.Property {
		case schema.PropID:
			s.Draft.ID = ev.Value
		case schema.PropType:
			s.Draft.Type = schema.FieldType(ev.Value)
		case schema.PropLabel:
			s.Draft.Label = ev.Value
		default:
			return s, errors.NewUnknownPropertyError(ev.Property.String(), []string{"id", "type", "label"})
		}
		return s, nil

	case SubmitDraft:
		return c.submitDraft(s)

	case CancelDraft:
		s.Draft = NewDraft()
		return s, nil
	}

	return s, errors.NewError(fmt.Sprintf("unhandled event %T", ev), errors.ExitGeneralError)
}

func (c *Controller) editProperty(s State, ev EditProperty) (State, error) {
	field, ok := s.Fields.At(ev.Index)
	if !ok {
		err := errors.NewOutOfRangeError(ev.Index, s.Fields.Len())
		c.logger.Error("Edit addressed a missing field",
			logging.Int("index", ev.Index),
			logging.Int("length", s.Fields.Len()),
			logging.String("property", ev.Property.String()))
		return s, err
	}

	next, err := registry.Apply(field, ev.Property, ev.Input)
	if err != nil {
		c.logger.Warn("Edit rejected, keeping previous value",
			logging.Int("index", ev.Index),
			logging.String("property", ev.Property.String()),
			logging.Error(err))
		return s, err
	}

	fields, err := s.Fields.ReplaceAt(ev.Index, next)
	if err != nil {
		return s, err
	}
	s.Fields = fields
	s.Modified = true
	return s, nil
}

func (c *Controller) importSchema(s State, ev ImportSchema) (State, error) {
	fields, report, err := schema.ImportWithReport(ev.Source, ev.Text)
	if err != nil {
		c.logger.Warn("Import rejected",
			logging.String("source", ev.Source),
			logging.Error(err))
		return s, err
	}

	if !report.Clean() {
		c.logger.Info("Import left data out", logging.String("report", report.String()))
	}
	c.logger.Info("Schema imported",
		logging.String("source", ev.Source),
		logging.Int("fields", report.Fields))

	s.Fields = s.Fields.ReplaceAll(fields.Fields())
	s.Source = ev.Source
	s.LastImport = report
	s.Modified = false
	return s, nil
}

func (c *Controller) submitDraft(s State) (State, error) {
	switch {
	case s.Draft.ID == "":
		return s, errors.NewIncompleteDraftError("id")
	case s.Draft.Type == "":
		return s, errors.NewIncompleteDraftError("type")
	}

	s.Fields = s.Fields.Append(s.Draft.Field())
	s.Draft = NewDraft()
	s.Modified = true
	return s, nil
}

// Export renders the collection of s as JSON.
func (c *Controller) Export(s State) (string, error) {
	return schema.ExportIndent(s.Fields, c.indent)
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
