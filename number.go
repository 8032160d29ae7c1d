package jsondent

import (
	"math"
	"strconv"
)

// Decimal is the exact parsed form of a JSON number: the value is
// Mant × 10^Exp. Keeping the decimal exponent separate means "3.140"
// round-trips as written instead of being rounded through float64.
// Conversion to a native float is a separate, deliberately lossy step.
type Decimal struct {
	Mant int64
	Exp  int
}

// ParseNumber parses one JSON number into its exact decimal form.
// Mantissas that do not fit int64 are a SyntaxError: the representation
// is exact only up to the host integer width.
func ParseNumber(c *Cursor) (Decimal, error) {
	b, ok := c.SkipSpace()
	if !ok {
		return Decimal{}, c.endErr("expected number")
	}
	neg := false
	if b == '-' {
		neg = true
		c.Advance()
		if b, ok = c.Peek(); !ok {
			return Decimal{}, c.endErr("expected digit")
		}
	}

	var d Decimal
	if b == '0' {
		c.Advance() // leading zero stands alone
	} else if isNum(b) {
		for {
			b, ok = c.Peek()
			if !ok || !isNum(b) {
				break
			}
			if err := d.fold(c, b); err != nil {
				return Decimal{}, err
			}
			c.Advance()
		}
	} else {
		return Decimal{}, c.syntaxf("expected digit, got %q", b)
	}

	if b, ok = c.Peek(); ok && b == '.' {
		c.Advance()
		for {
			b, ok = c.Peek()
			if !ok || !isNum(b) {
				break
			}
			if err := d.fold(c, b); err != nil {
				return Decimal{}, err
			}
			d.Exp--
			c.Advance()
		}
	}

	if b, ok = c.Peek(); ok && (b == 'e' || b == 'E') {
		c.Advance()
		sign := 1
		b, ok = c.Peek()
		switch {
		case ok && (b == '+' || b == '-'):
			if b == '-' {
				sign = -1
			}
			c.Advance()
			b, ok = c.Peek()
			if !ok || !isNum(b) {
				return Decimal{}, c.syntaxf("expected digit after exponent sign")
			}
		case ok && isNum(b):
		default:
			return Decimal{}, c.syntaxf("expected sign or digit after exponent")
		}
		e := 0
		for {
			b, ok = c.Peek()
			if !ok || !isNum(b) {
				break
			}
			e = e*10 + int(b-'0')
			c.Advance()
		}
		d.Exp += sign * e
	}

	if neg {
		d.Mant = -d.Mant
	}
	return d, nil
}

func (d *Decimal) fold(c *Cursor, b byte) error {
	n := int64(b - '0')
	if d.Mant > (math.MaxInt64-n)/10 {
		return c.syntaxf("number mantissa overflows int64")
	}
	d.Mant = d.Mant*10 + n
	return nil
}

// Append appends the exact textual form of d to dst. A zero exponent
// prints plain digits, a negative exponent re-inserts the decimal point,
// and a positive exponent prints e-notation. The rendered value is
// numerically identical to the parsed literal in every case.
func (d Decimal) Append(dst []byte) []byte {
	switch {
	case d.Exp == 0:
		return strconv.AppendInt(dst, d.Mant, 10)
	case d.Exp > 0:
		dst = strconv.AppendInt(dst, d.Mant, 10)
		dst = append(dst, 'e')
		return strconv.AppendInt(dst, int64(d.Exp), 10)
	}

	mant := d.Mant
	if mant < 0 {
		dst = append(dst, '-')
		mant = -mant
	}
	digits := strconv.FormatInt(mant, 10)
	frac := -d.Exp
	if len(digits) <= frac {
		dst = append(dst, '0', '.')
		for i := len(digits); i < frac; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}
	dst = append(dst, digits[:len(digits)-frac]...)
	dst = append(dst, '.')
	return append(dst, digits[len(digits)-frac:]...)
}

func (d Decimal) String() string { return string(d.Append(nil)) }

// Float64 converts d to the nearest float64. This is the explicit lossy
// conversion; callers that need exact round-tripping stay in Decimal.
// Values beyond the float64 range saturate to an infinity.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// ParseInt parses a number known to be integral: an optional sign and
// integer digits. Any fraction or exponent is left on the stream.
func ParseInt(c *Cursor) (int64, error) {
	b, ok := c.SkipSpace()
	if !ok {
		return 0, c.endErr("expected number")
	}
	neg := false
	if b == '-' {
		neg = true
		c.Advance()
		if b, ok = c.Peek(); !ok {
			return 0, c.endErr("expected digit")
		}
	}
	var d Decimal
	if b == '0' {
		c.Advance()
	} else if isNum(b) {
		for {
			b, ok = c.Peek()
			if !ok || !isNum(b) {
				break
			}
			if err := d.fold(c, b); err != nil {
				return 0, err
			}
			c.Advance()
		}
	} else {
		return 0, c.syntaxf("expected digit, got %q", b)
	}
	if neg {
		return -d.Mant, nil
	}
	return d.Mant, nil
}

// ParseFloat parses any JSON number and converts it to float64.
func ParseFloat(c *Cursor) (float64, error) {
	d, err := ParseNumber(c)
	if err != nil {
		return 0, err
	}
	return d.Float64(), nil
}
