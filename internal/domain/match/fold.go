package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fold lower-cases s one code point at a time without changing the byte
// length of any code point, so every byte offset into Fold(s) is also a valid
// offset into s.
//
// A code point whose lower-case form encodes to a different number of bytes
// (U+0130 'İ', U+212A KELVIN SIGN, ...) is kept as-is, which means it only
// matches itself under case-insensitive search. Invalid UTF-8 bytes are
// copied through unchanged.
func Fold(s string) string {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c < utf8.RuneSelf {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if lr := unicode.ToLower(r); lr != r && utf8.RuneLen(lr) == size {
			b.WriteRune(lr)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
