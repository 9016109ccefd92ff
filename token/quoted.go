package token

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// AppendQuoted appends v as a double-quoted string literal. Printable
// runes pass through raw; quotes, backslashes and control characters
// are escaped.
func AppendQuoted(d []byte, v string) []byte {
	d = append(d, '"')
	for _, r := range v {
		d = appendEscaped(d, r, '"')
	}
	return append(d, '"')
}

// AppendQuotedRune appends r as a single-quoted character literal.
func AppendQuotedRune(d []byte, r rune) []byte {
	d = append(d, '\'')
	d = appendEscaped(d, r, '\'')
	return append(d, '\'')
}

func appendEscaped(d []byte, r rune, quote rune) []byte {
	switch r {
	case quote:
		return append(d, '\\', byte(quote))
	case '\\':
		return append(d, '\\', '\\')
	case '\b':
		return append(d, '\\', 'b')
	case '\f':
		return append(d, '\\', 'f')
	case '\n':
		return append(d, '\\', 'n')
	case '\r':
		return append(d, '\\', 'r')
	case '\t':
		return append(d, '\\', 't')
	}
	if unicode.IsControl(r) {
		ucs := [2]byte{byte(r >> 8), byte(r)}
		var cps [4]byte
		hex.Encode(cps[:], ucs[:])
		return append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
	}
	return utf8.AppendRune(d, r)
}
