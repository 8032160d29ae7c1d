package jsondent

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in  string
		exp string
	}{
		{"foo", "foo"}, // basic test
		{"z\n\r\t\"\\\x00\x1f<>&", `z\n\r\t\"\\\u0000\u001f<>&`},
		{"\b\f", `\b\f`},
		{"\x7f", "\x7f"}, // DEL is printable enough
		{"\u00e9", `\u00e9`},
		{"\u265e", `\u265e`},
		{"\u2028\u2029", `\u2028\u2029`},
		{"caf\u00e9 society", `caf\u00e9 society`},
		// Astral codepoints do not fit four hex digits; they escape
		// wide, one escape per independent scalar value.
		{"\U0001f600", `\u1f600`},
	}

	for i, test := range tests {
		got, err := AppendEscape(nil, test.in)
		require.NoError(t, err, "#%d", i)
		require.Equal(t, test.exp, string(got), "#%d", i)
	}
}

func TestEscapeMalformed(t *testing.T) {
	var malformed *MalformedEncodingError
	for _, bad := range []string{
		"\xff",     // 11111111: not a lead byte
		"\x80",     // lone continuation byte
		"\xc3\x28", // continuation byte without the 10xxxxxx prefix
		"\xe2\x80", // truncated three-byte sequence
	} {
		_, err := AppendEscape(nil, bad)
		require.ErrorAs(t, err, &malformed, "input %q", bad)
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	// Escaping and re-parsing any printable/multibyte BMP string must
	// reproduce it exactly.
	for _, in := range []string{
		"",
		"plain ascii",
		"tabs\tand\nnewlines",
		"quotes \" and \\ slashes",
		"mixed \u00e9 \u265e \u2028 text",
		"\x01\x02\x1f",
	} {
		quoted, err := AppendQuote(nil, in)
		require.NoError(t, err, "input %q", in)
		got, err := ParseString(NewCursor(strings.NewReader(string(quoted))))
		require.NoError(t, err, "quoted %s", quoted)
		require.Equal(t, in, got, "quoted %s", quoted)
	}
}

// Every Unicode scalar value must survive the UTF-8 codec, surrogates
// included: lone halves from independent \u escapes pass through, which
// utf8.AppendRune would mangle.
func TestRuneCodecRoundTrip(t *testing.T) {
	for _, r := range []rune{
		0, 'a', 0x7f, 0x80, 0x7ff, 0x800, 0xd800, 0xdfff, 0xffff,
		0x10000, 0x1f600, 0x10ffff,
	} {
		enc := appendRune(nil, r)
		if r < 0x80 {
			require.Len(t, enc, 1, "rune %x", r)
			require.Equal(t, byte(r), enc[0], "rune %x", r)
			continue
		}
		got, sz, err := decodeRune(string(enc))
		require.NoError(t, err, "rune %x", r)
		require.Equal(t, len(enc), sz, "rune %x", r)
		require.Equal(t, r, got, "rune %x", r)
	}

	// Minimal-length property: agree with the stdlib on encoded size.
	for _, r := range []rune{0x80, 0x7ff, 0x800, 0xffff, 0x10000, 0x10ffff} {
		require.Equal(t, utf8.RuneLen(r), len(appendRune(nil, r)), "rune %x", r)
	}
}

func BenchmarkEscapeEasy(b *testing.B) {
	benchmarkEscape(b, "aaaaaaaaaaaaaaa")
}

func BenchmarkEscapeHard(b *testing.B) {
	benchmarkEscape(b, "z\n\r\t\"\x00\x1f\u2028\u2029\u2030&")
}

func benchmarkEscape(b *testing.B, in string) {
	out := make([]byte, 0, 100)
	for i := 0; i < b.N; i++ {
		out, _ = AppendEscape(out[:0], in)
	}
}
