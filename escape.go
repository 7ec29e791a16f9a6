package streamjson

import "github.com/rawbytedev/streamjson/internal/jsonlit"

// appendEscaped appends s as a quoted JSON string literal per RFC 8259
// section 7. Runs of bytes needing no escape are copied in bulk; UTF-8
// sequences pass through untouched since every byte >= 0x80 is clean.
func appendEscaped(buf Buffer, s string) {
	buf.Reserve(len(s) + 2)
	buf.AppendByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		kind := jsonlit.Escapes[s[i]]
		if kind == 0 {
			continue
		}
		if start < i {
			buf.AppendString(s[start:i])
		}
		buf.AppendByte('\\')
		if kind == 'u' {
			c := s[i]
			buf.AppendString("u00")
			buf.AppendByte(jsonlit.Hex[c>>4])
			buf.AppendByte(jsonlit.Hex[c&0xf])
		} else {
			buf.AppendByte(kind)
		}
		start = i + 1
	}
	if start < len(s) {
		buf.AppendString(s[start:])
	}
	buf.AppendByte('"')
}
