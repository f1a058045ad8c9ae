package testing

// SampleSchema returns a schema holding one field of every known type
func SampleSchema() string {
	return `[
  {
    "id": "appearance",
    "content": "Appearance",
    "type": "header"
  },
  {
    "id": "title",
    "type": "text",
    "label": "Title",
    "placeholder": "Enter a title"
  },
  {
    "id": "accent",
    "type": "color",
    "label": "Accent colour",
    "default": "#3366FF"
  },
  {
    "id": "enabled",
    "type": "boolean",
    "label": "Enabled",
    "default": "true"
  },
  {
    "id": "size",
    "type": "select",
    "label": "Size",
    "default": "m",
    "options": [
      {
        "value": "s",
        "label": "Small"
      },
      {
        "value": "m",
        "label": "Medium"
      }
    ]
  },
  {
    "id": "help",
    "type": "button",
    "label": "Help",
    "popup_html": "<p>Opens the <b>guide</b></p>"
  }
]`
}

// SampleSchemaFiles returns a valid schema next to the two kinds of invalid
// input an import rejects
func SampleSchemaFiles() map[string]string {
	return map[string]string{
		"fields.json":      SampleSchema(),
		"object.json":      `{"id": "title", "type": "text"}`,
		"broken.json":      `[{"id": "title",]`,
		"nested/more.json": `[{"id": "extra", "type": "text", "unknown": 1}]`,
	}
}
