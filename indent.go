package jsondent

import (
	"bytes"
	"math"
)

// NumberMode selects how the pretty-printer re-renders numbers.
type NumberMode int

const (
	// Exact re-emits numbers from their mantissa/exponent form, losing
	// no precision however long the literal.
	Exact NumberMode = iota
	// Floating converts numbers through float64 first, like most JSON
	// tools do.
	Floating
)

// Indenter re-emits parsed input as indented text. It is a consumer of
// the push parser: it never materializes the document, so its state is
// bounded by nesting depth like the parser itself.
type Indenter struct {
	Width   int // spaces per nesting level
	Numbers NumberMode
}

// PrettyPrint parses one value from c and renders it indented by width
// spaces per level.
func PrettyPrint(c *Cursor, width int, mode NumberMode) (string, error) {
	in := Indenter{Width: width, Numbers: mode}
	b, err := in.Append(nil, c)
	return string(b), err
}

// Append parses one value from c and appends its indented form to dst.
func (in *Indenter) Append(dst []byte, c *Cursor) ([]byte, error) {
	return in.value(dst, c, 0)
}

func (in *Indenter) value(dst []byte, c *Cursor, depth int) ([]byte, error) {
	t, err := c.Classify()
	if err != nil {
		return dst, err
	}
	switch t {
	case Array:
		return in.array(dst, c, depth)
	case Object:
		return in.object(dst, c, depth)
	case String:
		s, err := ParseString(c)
		if err != nil {
			return dst, err
		}
		return AppendQuote(dst, s)
	case Number:
		d, err := ParseNumber(c)
		if err != nil {
			return dst, err
		}
		if in.Numbers == Floating {
			// A literal beyond float64 range converts to an infinity,
			// which has no JSON spelling. Keep the exact form instead.
			if f := d.Float64(); !math.IsInf(f, 0) {
				return AppendFloat(dst, f), nil
			}
		}
		return d.Append(dst), nil
	case Boolean:
		v, err := ParseBool(c)
		if err != nil {
			return dst, err
		}
		return AppendBool(dst, v), nil
	case Null:
		if err := ParseNull(c); err != nil {
			return dst, err
		}
		return AppendNull(dst), nil
	}
	return dst, c.endErr("expected value")
}

func (in *Indenter) array(dst []byte, c *Cursor, depth int) ([]byte, error) {
	dst = append(dst, '[')
	n := 0
	err := ParseArray(c, func(c *Cursor) error {
		if n > 0 {
			dst = append(dst, ',')
		}
		n++
		dst = append(dst, '\n')
		dst = in.pad(dst, depth+1)
		var err error
		dst, err = in.value(dst, c, depth+1)
		return err
	})
	if err != nil {
		return dst, err
	}
	if n > 0 { // an empty array stays on one line
		dst = append(dst, '\n')
		dst = in.pad(dst, depth)
	}
	return append(dst, ']'), nil
}

func (in *Indenter) object(dst []byte, c *Cursor, depth int) ([]byte, error) {
	dst = append(dst, '{')
	n := 0
	err := ParseObject(c, func(c *Cursor, name string) error {
		if n > 0 {
			dst = append(dst, ',')
		}
		n++
		dst = append(dst, '\n')
		dst = in.pad(dst, depth+1)
		var err error
		if dst, err = AppendQuote(dst, name); err != nil {
			return err
		}
		dst = append(dst, ':', ' ')
		dst, err = in.value(dst, c, depth+1)
		return err
	})
	if err != nil {
		return dst, err
	}
	if n > 0 {
		dst = append(dst, '\n')
		dst = in.pad(dst, depth)
	}
	return append(dst, '}'), nil
}

var padding = bytes.Repeat([]byte{' '}, 256)

// pad appends exactly depth × Width spaces.
func (in *Indenter) pad(dst []byte, depth int) []byte {
	n := depth * in.Width
	for n > len(padding) {
		dst = append(dst, padding...)
		n -= len(padding)
	}
	return append(dst, padding[:n]...)
}
