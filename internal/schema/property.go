package schema

// Property identifies one recognised field property. The constant order is
// the canonical catalog order used for rendering.
type Property int

const (
	PropID Property = iota
	PropType
	PropLabel
	PropDefault
	PropOptions
	PropInfo
	PropPlaceholder
	PropHighlightingElem
	PropContent
	PropThumbnail
	PropBanner
	PropSubheadline
	PropPopupHTML
	PropTooltipHTML

	propertyCount
)

var propertyNames = [propertyCount]string{
	PropID:               "id",
	PropType:             "type",
	PropLabel:            "label",
	PropDefault:          "default",
	PropOptions:          "options",
	PropInfo:             "info",
	PropPlaceholder:      "placeholder",
	PropHighlightingElem: "highlightingElem",
	PropContent:          "content",
	PropThumbnail:        "thumbnail",
	PropBanner:           "banner",
	PropSubheadline:      "subheadline",
	PropPopupHTML:        "popup_html",
	PropTooltipHTML:      "tooltip_html",
}

// Properties returns every property in catalog order.
func Properties() []Property {
	props := make([]Property, propertyCount)
	for i := range props {
		props[i] = Property(i)
	}
	return props
}

// PropertyNames returns every property name in catalog order.
func PropertyNames() []string {
	return append([]string(nil), propertyNames[:]...)
}

// Valid reports whether p is part of the catalog.
func (p Property) Valid() bool {
	return p >= 0 && p < propertyCount
}

// String returns the JSON key of the property.
func (p Property) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return propertyNames[p]
}

// ParseProperty resolves a JSON key to its Property.
func ParseProperty(name string) (Property, bool) {
	for i, n := range propertyNames {
		if n == name {
			return Property(i), true
		}
	}
	return 0, false
}
