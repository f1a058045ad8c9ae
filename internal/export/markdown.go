package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/registry"
)

// Markdown describes the projection as a Markdown document: one section
// per field with a table of its visible properties. Options are repeated as
// a fenced JSON block so that they keep their formatting.
func Markdown(title string, v editor.View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(v.Rows) == 0 {
		sb.WriteString("_No fields._\n")
		return sb.String()
	}

	for _, row := range v.Rows {
		heading := row.Heading
		if row.IsHeader {
			heading += " (header)"
		}
		fmt.Fprintf(&sb, "## %d. %s\n\n", row.Index+1, cell(heading))

		if len(row.Widgets) == 0 {
			sb.WriteString("_No visible properties._\n\n")
			continue
		}

		sb.WriteString("| Property | Widget | Value |\n")
		sb.WriteString("|----------|--------|-------|\n")
		var blocks []registry.Widget
		for _, w := range row.Widgets {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", w.Property, w.Kind, cellValue(w))
			if w.Kind == registry.WidgetJSON && strings.TrimSpace(w.Value) != "" {
				blocks = append(blocks, w)
			}
		}
		sb.WriteString("\n")

		for _, w := range blocks {
			fmt.Fprintf(&sb, "```json\n%s\n```\n\n", strings.TrimRight(w.Value, "\n"))
		}
	}
	return sb.String()
}

func cellValue(w registry.Widget) string {
	switch w.Kind {
	case registry.WidgetChoice:
		labels := make([]string, len(w.Choices))
		for i, c := range w.Choices {
			labels[i] = cell(c.Label)
			if i == w.Selected {
				labels[i] = "**" + labels[i] + "**"
			}
		}
		out := strings.Join(labels, ", ")
		if w.Selected < 0 && w.Value != "" {
			out += fmt.Sprintf(" (current: `%s`)", strings.ReplaceAll(w.Value, "`", "'"))
		}
		return out
	case registry.WidgetColor:
		if w.Value == "" {
			return ""
		}
		if w.Swatch == "" {
			return cell(w.Value)
		}
		return fmt.Sprintf(`<span class="swatch" style="background:%s"></span> %s`, w.Swatch, cell(w.Value))
	case registry.WidgetJSON:
		if strings.TrimSpace(w.Value) == "" {
			return ""
		}
		return "see below"
	default:
		return cell(w.Value)
	}
}

// cell escapes s for a single table cell.
func cell(s string) string {
	s = html.EscapeString(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
