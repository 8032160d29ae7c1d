package jsondent

import "strconv"

// SyntaxError reports a structural violation of the JSON grammar:
// an unexpected character, an unterminated string, a bad literal, a
// mismatched bracket. It aborts the in-progress parse; no recovery is
// attempted.
type SyntaxError struct {
	Offset int // bytes consumed when the error was detected
	Msg    string
}

func (e *SyntaxError) Error() string {
	return "invalid JSON at offset " + strconv.Itoa(e.Offset) + ": " + e.Msg
}

// MalformedEncodingError reports a UTF-8 byte sequence that violates the
// codec's structural invariants, such as a continuation byte without the
// 10xxxxxx prefix.
type MalformedEncodingError struct {
	Msg string
}

func (e *MalformedEncodingError) Error() string {
	return "malformed encoding: " + e.Msg
}
