package editor

import (
	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/schema"
)

// Labels of the copy button.
const (
	CopyLabel   = "Copy JSON"
	CopiedLabel = "Copied!"
)

// Row is one field as the presentation layer draws it.
type Row struct {
	Index    int
	Field    schema.Field
	Heading  string
	IsHeader bool
	Widgets  []registry.Widget
}

// VisibilityItem is one entry of the visibility checklist.
type VisibilityItem struct {
	Property schema.Property
	Visible  bool
}

// View is a read-only projection of State for drawing.
type View struct {
	Rows       []Row
	Visibility []VisibilityItem
	Draft      Draft
	Copied     bool
	CopyLabel  string
	Modified   bool
	Source     string
}

// Render walks the fields in order and, for each, the visible properties in
// catalog order, resolving a widget for every pair.
func (c *Controller) Render(s State) View {
	visible := s.Visible.OrderedVisible()

	v := View{
		Rows:      make([]Row, 0, s.Fields.Len()),
		Draft:     s.Draft,
		Copied:    s.Copied,
		CopyLabel: CopyLabel,
		Modified:  s.Modified,
		Source:    s.Source,
	}
	if s.Copied {
		v.CopyLabel = CopiedLabel
	}

	for i, f := range s.Fields.Fields() {
		row := Row{
			Index:    i,
			Field:    f,
			Heading:  f.Heading(),
			IsHeader: f.Type == schema.TypeHeader,
			Widgets:  make([]registry.Widget, 0, len(visible)),
		}
		for _, p := range visible {
			row.Widgets = append(row.Widgets, registry.Describe(f, p))
		}
		v.Rows = append(v.Rows, row)
	}

	for _, p := range schema.Properties() {
		v.Visibility = append(v.Visibility, VisibilityItem{Property: p, Visible: s.Visible.IsVisible(p)})
	}
	return v
}
