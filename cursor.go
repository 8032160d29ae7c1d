package jsondent

import (
	"bufio"
	"fmt"
	"io"
)

// Type identifies the kind of JSON value that starts at the cursor's
// current position. It is computed from a single byte of lookahead.
type Type int

const (
	Array Type = iota
	Boolean
	Null
	Number
	Object
	String
	EOF
)

func (t Type) String() string {
	switch t {
	case Array:
		return "Array"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case Number:
		return "Number"
	case Object:
		return "Object"
	case String:
		return "String"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Cursor is a single-byte-lookahead reader over a JSON input stream. It
// is exclusively owned by whichever parse call currently holds it; after
// a parse failure its position is indeterminate and it must not be
// reused.
type Cursor struct {
	r io.ByteReader

	cur  byte
	have bool
	eof  bool
	err  error // sticky non-EOF read error
	off  int   // bytes consumed, for diagnostics
}

// NewCursor returns a Cursor over r, buffering it if necessary.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br}
}

func (c *Cursor) fill() {
	if c.have || c.eof {
		return
	}
	b, err := c.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		c.eof = true
		return
	}
	c.cur, c.have = b, true
}

// Peek returns the next byte without consuming it. The second return is
// false once the stream is exhausted.
func (c *Cursor) Peek() (byte, bool) {
	c.fill()
	return c.cur, c.have
}

// Advance consumes exactly one byte.
func (c *Cursor) Advance() {
	c.fill()
	if c.have {
		c.have = false
		c.off++
	}
}

// Next consumes and returns one byte.
func (c *Cursor) Next() (byte, bool) {
	c.fill()
	if !c.have {
		return 0, false
	}
	c.have = false
	c.off++
	return c.cur, true
}

// Offset reports how many bytes have been consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Err returns the sticky read error, if the underlying reader failed
// with anything other than EOF.
func (c *Cursor) Err() error { return c.err }

// SkipSpace consumes leading JSON whitespace and returns the next
// significant byte without consuming it.
func (c *Cursor) SkipSpace() (byte, bool) {
	for {
		b, ok := c.Peek()
		if !ok {
			return 0, false
		}
		if !isSpace(b) {
			return b, true
		}
		c.Advance()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNum(c byte) bool { return '0' <= c && c <= '9' }

// Expect skips whitespace and consumes one byte, which must be want.
func (c *Cursor) Expect(want byte) error {
	got, ok := c.SkipSpace()
	if !ok {
		return c.endErr(fmt.Sprintf("expected %q", want))
	}
	if got != want {
		return c.syntaxf("expected %q, got %q", want, got)
	}
	c.Advance()
	return nil
}

// Literal consumes exactly len(s) bytes and fails if any byte differs
// from s. Used for the true, false and null keywords.
func (c *Cursor) Literal(s string) error {
	for i := 0; i < len(s); i++ {
		got, ok := c.Next()
		if !ok {
			return c.endErr(fmt.Sprintf("expected %q", s))
		}
		if got != s[i] {
			return c.syntaxf("expected %q", s)
		}
	}
	return nil
}

// Classify skips whitespace and maps the next byte to the Type of the
// value it begins, without consuming it. Exhaustion of the stream is
// reported as EOF, not an error.
func (c *Cursor) Classify() (Type, error) {
	b, ok := c.SkipSpace()
	if !ok {
		if c.err != nil {
			return EOF, fmt.Errorf("read: %w", c.err)
		}
		return EOF, nil
	}
	switch b {
	case '{':
		return Object, nil
	case '[':
		return Array, nil
	case '"':
		return String, nil
	case '-':
		return Number, nil
	case 't', 'f':
		return Boolean, nil
	case 'n':
		return Null, nil
	}
	if isNum(b) {
		return Number, nil
	}
	return EOF, c.syntaxf("unexpected character %q at start of value", b)
}

// SkipBOM consumes a leading UTF-8 byte order mark if one is present.
// The core grammar itself never sees a BOM; callers handing over a fresh
// stream call this first.
func (c *Cursor) SkipBOM() error {
	b, ok := c.Peek()
	if !ok || b != 0xef {
		return nil
	}
	c.Advance()
	for _, want := range [...]byte{0xbb, 0xbf} {
		got, ok := c.Next()
		if !ok || got != want {
			return &MalformedEncodingError{Msg: "truncated byte order mark"}
		}
	}
	return nil
}

func (c *Cursor) syntaxf(format string, args ...interface{}) error {
	return &SyntaxError{Offset: c.off, Msg: fmt.Sprintf(format, args...)}
}

// endErr reports running off the end of the stream mid-value. A sticky
// read error takes precedence over the syntax diagnostic.
func (c *Cursor) endErr(what string) error {
	if c.err != nil {
		return fmt.Errorf("read: %w", c.err)
	}
	return &SyntaxError{Offset: c.off, Msg: what + ", got end of input"}
}
