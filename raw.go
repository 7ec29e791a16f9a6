package streamjson

import "github.com/rawbytedev/streamjson/internal/jsonlit"

// Raw is a complete, already-encoded JSON value inserted verbatim.
// The caller is responsible for its validity; nothing is checked.
type Raw string

// RawString is a pre-escaped JSON string body. It is wrapped in quotes
// on output but escaping is not applied again. Supplying content that
// needs escaping produces malformed JSON; use Unescaped to check first.
type RawString string

// RawKey is a pre-escaped object key. Keys are escaped by default; this
// type is the explicit opt-in for keys known to be literal-safe.
type RawKey string

// Unescaped returns s as a RawString if it contains nothing that would
// require escaping. ok is false otherwise and the RawString is empty.
func Unescaped(s string) (raw RawString, ok bool) {
	if jsonlit.NeedsEscape(s) {
		return "", false
	}
	return RawString(s), true
}
