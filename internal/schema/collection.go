package schema

import (
	"github.com/user/fieldeditor/internal/errors"
)

// Collection is an ordered sequence of fields. It is a value type: every
// mutation returns a new Collection and never touches the receiver's backing
// array, so a collection being rendered cannot change underneath a reader.
type Collection struct {
	fields []Field
}

// NewCollection returns a collection holding deep copies of fields.
func NewCollection(fields ...Field) Collection {
	return Collection{fields: cloneFields(fields)}
}

func cloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}

// Len returns the number of fields.
func (c Collection) Len() int {
	return len(c.fields)
}

// At returns a copy of the field at index.
func (c Collection) At(index int) (Field, bool) {
	if index < 0 || index >= len(c.fields) {
		return Field{}, false
	}
	return c.fields[index].Clone(), true
}

// Fields returns a copy of the fields in order.
func (c Collection) Fields() []Field {
	return cloneFields(c.fields)
}

// Append adds field at the end. Ids are not checked for uniqueness.
func (c Collection) Append(field Field) Collection {
	out := make([]Field, len(c.fields), len(c.fields)+1)
	copy(out, c.fields)
	return Collection{fields: append(out, field.Clone())}
}

// ReplaceAt replaces the field at index wholesale.
func (c Collection) ReplaceAt(index int, field Field) (Collection, error) {
	if index < 0 || index >= len(c.fields) {
		return c, errors.NewOutOfRangeError(index, len(c.fields))
	}
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	out[index] = field.Clone()
	return Collection{fields: out}, nil
}

// Move removes the field at from and reinserts it at to, where to indexes
// the sequence after removal. An out-of-range index on either side, or
// from == to, leaves the collection unchanged, matching a cancelled drag.
func (c Collection) Move(from, to int) Collection {
	n := len(c.fields)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return c
	}

	out := make([]Field, 0, n)
	out = append(out, c.fields[:from]...)
	out = append(out, c.fields[from+1:]...)

	moved := c.fields[from]
	out = append(out, Field{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return Collection{fields: out}
}

// ReplaceAll substitutes the whole sequence.
func (c Collection) ReplaceAll(fields []Field) Collection {
	return NewCollection(fields...)
}
