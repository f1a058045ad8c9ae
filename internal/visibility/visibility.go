// Package visibility tracks which field properties are shown for every field.
package visibility

import (
	"math/bits"
	"strings"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/schema"
)

// Set is a subset of the property catalog. The zero value is empty. Set is
// a value type; Toggle returns a new set.
type Set struct {
	mask uint32
}

// DefaultProperties are visible when the editor starts.
var DefaultProperties = []schema.Property{schema.PropID, schema.PropType, schema.PropLabel, schema.PropDefault}

// Default returns the start-up set {id, type, label, default}.
func Default() Set {
	return Of(DefaultProperties...)
}

// Of returns a set holding props. Properties outside the catalog are
// ignored.
func Of(props ...schema.Property) Set {
	var s Set
	for _, p := range props {
		if p.Valid() {
			s.mask |= 1 << uint(p)
		}
	}
	return s
}

// Toggle removes p when present and adds it otherwise.
func (s Set) Toggle(p schema.Property) Set {
	if !p.Valid() {
		return s
	}
	s.mask ^= 1 << uint(p)
	return s
}

// IsVisible reports whether p is in the set.
func (s Set) IsVisible(p schema.Property) bool {
	return p.Valid() && s.mask&(1<<uint(p)) != 0
}

// OrderedVisible returns the members in catalog order, independent of the
// order in which they were toggled.
func (s Set) OrderedVisible() []schema.Property {
	out := make([]schema.Property, 0, s.Len())
	for _, p := range schema.Properties() {
		if s.IsVisible(p) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of visible properties.
func (s Set) Len() int {
	return bits.OnesCount32(s.mask)
}

// Names returns the member names in catalog order.
func (s Set) Names() []string {
	visible := s.OrderedVisible()
	names := make([]string, len(visible))
	for i, p := range visible {
		names[i] = p.String()
	}
	return names
}

func (s Set) String() string {
	return strings.Join(s.Names(), ",")
}

// ParseNames builds a set from property names. Blank names are skipped; an
// unknown name fails with an UnknownPropertyError.
func ParseNames(names []string) (Set, error) {
	var s Set
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, ok := schema.ParseProperty(name)
		if !ok {
			return Set{}, errors.NewUnknownPropertyError(name, schema.PropertyNames())
		}
		s.mask |= 1 << uint(p)
	}
	return s, nil
}
