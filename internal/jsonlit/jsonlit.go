package jsonlit

// Escapes maps each byte of a JSON string body to its escape kind:
// 0 means the byte is copied through unchanged, 'u' means the byte
// needs a \u00xx escape, and any other value is the character that
// follows the backslash in a two-character escape.
var Escapes [256]byte

func init() {
	for c := 0; c < 0x20; c++ {
		Escapes[c] = 'u'
	}
	Escapes['\b'] = 'b'
	Escapes['\f'] = 'f'
	Escapes['\n'] = 'n'
	Escapes['\r'] = 'r'
	Escapes['\t'] = 't'
	Escapes['"'] = '"'
	Escapes['\\'] = '\\'
}

// Hex digits used for \u00xx escapes. Lowercase, always.
const Hex = "0123456789abcdef"

// NeedsEscape reports whether s contains any byte that cannot appear
// verbatim inside a JSON string literal.
func NeedsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if Escapes[s[i]] != 0 {
			return true
		}
	}
	return false
}
