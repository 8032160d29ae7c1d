// Package jsondent parses and re-emits JSON as a stream, without ever
// building an intermediate document tree.
//
// The standard library's Decoder either fills Go values through
// reflection or hands back a generic tree of maps and slices; both cost
// allocations proportional to the document. This package instead pushes
// structure to caller-supplied consumers as it is found: the parser's
// only state is the recursion of the descent itself, so memory follows
// nesting depth, never document size. Numbers are carried exactly as a
// mantissa and a decimal exponent rather than rounded through float64,
// and the append-style serializer resolves entirely at compile time.
// Nothing in this package touches reflect.
package jsondent

// ParseObject parses one JSON object, invoking field once per member in
// input order with the cursor positioned at the start of the member's
// value. The consumer must advance the cursor past exactly one value.
// Duplicate keys are delivered as-is, once per occurrence.
//
// A consumer error aborts the parse and propagates unchanged.
func ParseObject(c *Cursor, field func(c *Cursor, name string) error) error {
	if err := c.Expect('{'); err != nil {
		return err
	}
	for {
		b, ok := c.SkipSpace()
		if !ok {
			return c.endErr("expected object member or '}'")
		}
		switch b {
		case '"': // name of the next field
			name, err := ParseString(c)
			if err != nil {
				return err
			}
			if err := c.Expect(':'); err != nil {
				return err
			}
			if err := field(c, name); err != nil {
				return err
			}
		case '}': // end of this object
			c.Advance()
			return nil
		case ',': // separator to the next field
			c.Advance()
		default:
			return c.syntaxf("unexpected character %q parsing object", b)
		}
	}
}

// ParseArray parses one JSON array, invoking elem once per element in
// input order with the cursor positioned at the start of the element.
// The consumer must advance the cursor past exactly one value. An empty
// array invokes elem zero times.
func ParseArray(c *Cursor, elem func(c *Cursor) error) error {
	if err := c.Expect('['); err != nil {
		return err
	}
	if b, ok := c.SkipSpace(); ok && b == ']' {
		c.Advance()
		return nil // empty array
	}
	for {
		if _, ok := c.SkipSpace(); !ok {
			return c.endErr("expected array element")
		}
		if err := elem(c); err != nil {
			return err
		}
		b, ok := c.SkipSpace()
		if !ok {
			return c.endErr("expected ']' or ','")
		}
		switch b {
		case ']':
			c.Advance()
			return nil
		case ',':
			c.Advance()
		default:
			return c.syntaxf("expected ']' or ',', got %q", b)
		}
	}
}

// ParseString parses one JSON string. The six short escapes map to their
// control characters; a \uXXXX escape is re-encoded into the result as
// UTF-8. Each \u escape is taken as an independent Unicode scalar value:
// UTF-16 surrogate halves are not combined, so astral characters written
// as a surrogate pair come out as two three-byte sequences. Literal
// control bytes inside the string are accepted as-is.
func ParseString(c *Cursor) (string, error) {
	if err := c.Expect('"'); err != nil {
		return "", err
	}
	var buf []byte
	for {
		b, ok := c.Next()
		if !ok {
			return "", c.endErr("unterminated string")
		}
		switch b {
		case '"':
			return string(buf), nil
		case '\\':
			esc, ok := c.Next()
			if !ok {
				return "", c.endErr("unterminated string escape")
			}
			switch esc {
			case '"', '\\', '/':
				buf = append(buf, esc)
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				var r rune
				for i := 0; i < 4; i++ {
					h, ok := c.Next()
					if !ok {
						return "", c.endErr("unterminated \\u escape")
					}
					v, ok := hexVal(h)
					if !ok {
						return "", c.syntaxf("not a hex digit: %q", h)
					}
					r = r<<4 | v
				}
				buf = appendRune(buf, r)
			default:
				return "", c.syntaxf("invalid escape character %q", esc)
			}
		default:
			buf = append(buf, b)
		}
	}
}

func hexVal(c byte) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0'), true
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}

// ParseBool parses the true or false keyword.
func ParseBool(c *Cursor) (bool, error) {
	b, ok := c.SkipSpace()
	if !ok {
		return false, c.endErr("expected 'true' or 'false'")
	}
	switch b {
	case 't':
		return true, c.Literal("true")
	case 'f':
		return false, c.Literal("false")
	}
	return false, c.syntaxf("expected 'true' or 'false', got %q", b)
}

// ParseNull parses the null keyword.
func ParseNull(c *Cursor) error {
	if _, ok := c.SkipSpace(); !ok {
		return c.endErr("expected 'null'")
	}
	return c.Literal("null")
}

// SkipValue parses any value and discards the result. Callers use it to
// advance past a subtree they do not care about.
func SkipValue(c *Cursor) error {
	t, err := c.Classify()
	if err != nil {
		return err
	}
	switch t {
	case Array:
		return ParseArray(c, SkipValue)
	case Object:
		return ParseObject(c, func(c *Cursor, _ string) error {
			return SkipValue(c)
		})
	case String:
		_, err := ParseString(c)
		return err
	case Number:
		_, err := ParseNumber(c)
		return err
	case Boolean:
		_, err := ParseBool(c)
		return err
	case Null:
		return ParseNull(c)
	}
	return c.endErr("expected value")
}
