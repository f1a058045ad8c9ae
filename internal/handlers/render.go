package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/logging"
	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/visibility"
)

// Render output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// RenderHandler prints the widget projection of a schema file without
// starting the interactive editor
type RenderHandler struct {
	*BaseHandler
	path    string
	visible visibility.Set
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(path string, visible visibility.Set, logger *logging.Logger) *RenderHandler {
	return &RenderHandler{
		BaseHandler: NewBaseHandler(logger),
		path:        path,
		visible:     visible,
	}
}

// Handle loads the file and returns its projection
func (h *RenderHandler) Handle(ctx context.Context) (editor.View, error) {
	if err := ctx.Err(); err != nil {
		return editor.View{}, err
	}

	text, err := h.readFile(h.path)
	if err != nil {
		return editor.View{}, err
	}

	ctrl := editor.NewController(h.Logger, 0)
	state, err := ctrl.Dispatch(editor.NewState(h.visible), editor.ImportSchema{Source: h.path, Text: text})
	if err != nil {
		return editor.View{}, err
	}
	return ctrl.Render(state), nil
}

// renderedWidget is the JSON shape of one widget
type renderedWidget struct {
	Property string   `json:"property"`
	Widget   string   `json:"widget"`
	Value    string   `json:"value"`
	Choices  []string `json:"choices,omitempty"`
	Selected *int     `json:"selected,omitempty"`
	Pattern  string   `json:"pattern,omitempty"`
	Swatch   string   `json:"swatch,omitempty"`
}

type renderedRow struct {
	Index   int              `json:"index"`
	Heading string           `json:"heading"`
	Header  bool             `json:"header"`
	Widgets []renderedWidget `json:"widgets"`
}

// FormatJSONView renders the projection as indented JSON
func FormatJSONView(v editor.View) (string, error) {
	rows := make([]renderedRow, 0, len(v.Rows))
	for _, row := range v.Rows {
		out := renderedRow{Index: row.Index, Heading: row.Heading, Header: row.IsHeader}
		for _, w := range row.Widgets {
			rw := renderedWidget{
				Property: w.Property.String(),
				Widget:   w.Kind.String(),
				Value:    w.Value,
				Pattern:  w.Pattern,
				Swatch:   w.Swatch,
			}
			if w.Kind == registry.WidgetChoice {
				for _, c := range w.Choices {
					rw.Choices = append(rw.Choices, c.Value)
				}
				selected := w.Selected
				rw.Selected = &selected
			}
			out.Widgets = append(out.Widgets, rw)
		}
		rows = append(rows, out)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal view: %w", err)
	}
	return string(data), nil
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// FormatTextView renders the projection as one table per field
func FormatTextView(v editor.View) string {
	if len(v.Rows) == 0 {
		return "No fields.\n"
	}

	var sb strings.Builder
	for _, row := range v.Rows {
		title := fmt.Sprintf("#%d %s", row.Index, row.Heading)
		if row.IsHeader {
			title = strings.ToUpper(title)
		}
		sb.WriteString(headingStyle.Render(title))
		sb.WriteString("\n")

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("PROPERTY", "WIDGET", "VALUE")
		for _, w := range row.Widgets {
			t.Row(w.Property.String(), w.Kind.String(), describeValue(w))
		}
		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func describeValue(w registry.Widget) string {
	switch w.Kind {
	case registry.WidgetChoice:
		labels := make([]string, len(w.Choices))
		for i, c := range w.Choices {
			if i == w.Selected {
				labels[i] = "[" + c.Label + "]"
			} else {
				labels[i] = c.Label
			}
		}
		choices := strings.Join(labels, " | ")
		if w.Selected < 0 && w.Value != "" {
			return fmt.Sprintf("%s (current: %s)", choices, w.Value)
		}
		return choices
	case registry.WidgetColor:
		if w.Swatch == "" {
			return w.Value + " (no swatch)"
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(w.Swatch)).Render("■") + " " + w.Value
	default:
		return w.Value
	}
}
