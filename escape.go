package jsondent

import "unicode/utf8"

const hexDigits = "0123456789abcdef"

// AppendQuote appends s to dst as a quoted, escaped JSON string.
func AppendQuote(dst []byte, s string) ([]byte, error) {
	dst = append(dst, '"')
	dst, err := AppendEscape(dst, s)
	if err != nil {
		return dst, err
	}
	return append(dst, '"'), nil
}

// AppendEscape appends a JSON-escaped s to dst. Printable ASCII is
// emitted literally apart from the structural '"' and '\'; control
// characters and every multibyte sequence become a \u escape of the
// decoded codepoint, zero padded to four hex digits. A byte sequence
// that is not structurally valid UTF-8 is a MalformedEncodingError.
func AppendEscape(dst []byte, s string) ([]byte, error) {
	st := 0
	for i := 0; i < len(s); { // i incremented manually
		if c := s[i]; c < utf8.RuneSelf {
			if safeSet[c] {
				i++
				continue
			}
			dst = append(dst, s[st:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
			i++
			st = i
			continue
		}

		r, sz, err := decodeRune(s[i:])
		if err != nil {
			return dst, err
		}
		dst = append(dst, s[st:i]...)
		dst = appendEscapedRune(dst, r)
		i += sz
		st = i
	}
	return append(dst, s[st:]...), nil
}

// appendEscapedRune appends \u followed by r in hex, zero padded to four
// digits. Codepoints above 0xffff do not fit the four-digit form and are
// emitted wide, mirroring the decoder's treatment of each \u escape as
// an independent scalar value.
func appendEscapedRune(dst []byte, r rune) []byte {
	dst = append(dst, '\\', 'u')
	n := 4
	for v := r >> 16; v != 0; v >>= 4 {
		n++
	}
	for i := (n - 1) * 4; i >= 0; i -= 4 {
		dst = append(dst, hexDigits[r>>uint(i)&0xf])
	}
	return dst
}

// appendRune appends the minimal-length UTF-8 encoding of r: one byte up
// to 0x7f, two up to 0x7ff, three up to 0xffff, four beyond. Unlike
// utf8.AppendRune, lone surrogate halves pass through unchanged, which
// ParseString relies on for independent \u escapes.
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xc0|byte(r>>6), 0x80|byte(r)&0x3f)
	case r < 0x10000:
		return append(dst, 0xe0|byte(r>>12), 0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
	default:
		return append(dst, 0xf0|byte(r>>18), 0x80|byte(r>>12)&0x3f, 0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
	}
}

// decodeRune decodes one multibyte UTF-8 sequence from the front of s,
// returning the codepoint and the byte count. The number of leading one
// bits in the lead byte gives the sequence length; every continuation
// byte must carry the 10xxxxxx prefix.
func decodeRune(s string) (rune, int, error) {
	c := s[0]
	n := 0
	for mask := byte(0x80); c&mask != 0; mask >>= 1 {
		n++
		c &^= mask
	}
	if n < 2 || n > 4 {
		return 0, 0, &MalformedEncodingError{Msg: "invalid UTF-8 lead byte"}
	}
	if len(s) < n {
		return 0, 0, &MalformedEncodingError{Msg: "truncated multibyte sequence"}
	}
	r := rune(c)
	for i := 1; i < n; i++ {
		cc := s[i]
		if cc&0xc0 != 0x80 {
			return 0, 0, &MalformedEncodingError{Msg: "illegal continuation byte in multibyte sequence"}
		}
		r = r<<6 | rune(cc&0x3f)
	}
	return r, n, nil
}

// safeSet marks the ASCII bytes emitted literally: everything printable
// except the two characters with structural meaning inside a string.
var safeSet = [utf8.RuneSelf]bool{
	' ': true, '!': true, '#': true, '$': true, '%': true, '&': true,
	'\'': true, '(': true, ')': true, '*': true, '+': true, ',': true,
	'-': true, '.': true, '/': true, '0': true, '1': true, '2': true,
	'3': true, '4': true, '5': true, '6': true, '7': true, '8': true,
	'9': true, ':': true, ';': true, '<': true, '=': true, '>': true,
	'?': true, '@': true, 'A': true, 'B': true, 'C': true, 'D': true,
	'E': true, 'F': true, 'G': true, 'H': true, 'I': true, 'J': true,
	'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true,
	'Q': true, 'R': true, 'S': true, 'T': true, 'U': true, 'V': true,
	'W': true, 'X': true, 'Y': true, 'Z': true, '[': true, ']': true,
	'^': true, '_': true, '`': true, 'a': true, 'b': true, 'c': true,
	'd': true, 'e': true, 'f': true, 'g': true, 'h': true, 'i': true,
	'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true,
	'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true, '{': true,
	'|': true, '}': true, '~': true, '\u007f': true,
}
