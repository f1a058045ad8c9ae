// Package export turns a rendered schema into shareable documents.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/user/fieldeditor/internal/editor"
	"github.com/user/fieldeditor/internal/errors"
)

// HTMLExporter renders the Markdown description of a schema as a
// standalone HTML page
type HTMLExporter struct {
	markdown     goldmark.Markdown
	htmlTemplate *template.Template
	now          func() time.Time
}

// HTMLDocument represents the data for HTML template rendering
type HTMLDocument struct {
	Title     string
	Source    string
	Fields    int
	Generated string
	Content   template.HTML
	CSS       template.CSS
}

// NewHTMLExporter creates a new HTML exporter with Goldmark configured
func NewHTMLExporter() (*HTMLExporter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// cells carry escaped text plus <br> and swatch spans
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("schema").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load HTML template: %w", err)
	}

	return &HTMLExporter{
		markdown:     md,
		htmlTemplate: tmpl,
		now:          time.Now,
	}, nil
}

// Render returns the HTML page for v
func (e *HTMLExporter) Render(v editor.View) ([]byte, error) {
	title := pageTitle(v.Source)

	var body bytes.Buffer
	if err := e.markdown.Convert([]byte(Markdown(title, v)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	doc := HTMLDocument{
		Title:     title,
		Source:    v.Source,
		Fields:    len(v.Rows),
		Generated: e.now().Format("2006-01-02 15:04:05"),
		Content:   template.HTML(body.String()),
		CSS:       template.CSS(defaultCSS),
	}

	var out bytes.Buffer
	if err := e.htmlTemplate.Execute(&out, doc); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return out.Bytes(), nil
}

// ExportToHTML writes the HTML page for v to outputPath
func (e *HTMLExporter) ExportToHTML(v editor.View, outputPath string) error {
	page, err := e.Render(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, page, 0644); err != nil {
		return errors.NewFileWriteError(outputPath, err)
	}
	return nil
}

func pageTitle(source string) string {
	if source == "" {
		return "Untitled schema"
	}
	return strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="fieldeditor">
    <title>{{.Title}}</title>
    <style>{{.CSS}}</style>
</head>
<body>
    <div class="container">
        <header>
            <div class="meta">{{if .Source}}{{.Source}} · {{end}}{{.Fields}} field(s)</div>
        </header>
        <main>
            {{.Content}}
        </main>
        <footer>
            <p>Generated on {{.Generated}} by fieldeditor</p>
        </footer>
    </div>
</body>
</html>`

const defaultCSS = `
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
    line-height: 1.5;
    color: #24292f;
    margin: 0;
}
.container { max-width: 980px; margin: 0 auto; padding: 32px; }
header { border-bottom: 1px solid #d0d7de; margin-bottom: 24px; }
.meta { font-size: 12px; color: #57606a; text-align: right; padding-bottom: 8px; }
h1 { font-size: 2em; }
h2 { font-size: 1.3em; margin-top: 32px; border-bottom: 1px solid #d0d7de; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
th, td { border: 1px solid #d0d7de; padding: 6px 12px; text-align: left; vertical-align: top; }
th { background: #f6f8fa; }
pre { padding: 12px; overflow: auto; border-radius: 6px; background: #f6f8fa; }
.swatch {
    display: inline-block;
    width: 12px;
    height: 12px;
    border: 1px solid #8c959f;
    vertical-align: middle;
}
footer { border-top: 1px solid #d0d7de; color: #57606a; font-size: 12px; }
`
