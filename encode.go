package resxml

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// appendHexEscape appends the \uXXXX escape for r, four lowercase hex digits
// zero padded. Runes beyond the BMP are written as a surrogate pair of
// escapes so the aapt escape parser can reassemble them.
func appendHexEscape(dst []byte, r rune) []byte {
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		return appendHexEscape(appendHexEscape(dst, hi), lo)
	}
	dst = append(dst, '\\', 'u')
	for shift := 12; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[r>>uint(shift)&0xf])
	}
	return dst
}

// EncodeAttr encodes s for use inside a double quoted attribute value of a
// resource XML document. A leading resource sentinel (#, @ or ?) is escaped
// with a backslash so it reads as a literal character. Backslashes are
// doubled, double quotes become &quot;, a newline becomes the two character
// escape \n, and non printable characters become \uXXXX escapes.
func EncodeAttr(s string) string {
	if s == "" {
		return s
	}
	out := make([]byte, 0, len(s)+10)
	switch s[0] {
	case '#', '@', '?':
		out = append(out, '\\')
	}
	for _, c := range s {
		switch c {
		case '\\':
			out = append(out, '\\', '\\')
		case '"':
			out = append(out, "&quot;"...)
		case '\n':
			out = append(out, '\\', 'n')
		default:
			if isPrintable(c) {
				out = utf8.AppendRune(out, c)
			} else {
				out = appendHexEscape(out, c)
			}
		}
	}
	return string(out)
}

// EncodeValue encodes s for use as element content of a resource XML
// document. Inline style markup (<...>) passes through untouched. A segment
// containing consecutive, leading or trailing spaces, an apostrophe, or a
// newline is wrapped in double quotes so a downstream consumer does not
// collapse or trim it; the opening quote is inserted retroactively once the
// scanner knows quoting is needed.
func EncodeValue(s string) string {
	if s == "" {
		return s
	}
	out := make([]byte, 0, len(s)+10)
	switch s[0] {
	case '#', '@', '?':
		out = append(out, '\\')
	}
	var (
		inTag   bool
		enclose bool
		quoteAt int
	)
	// a leading space must force quoting, so the scanner starts as if a
	// space preceded the input
	wasSpace := true
	for i, c := range s {
		if inTag {
			out = utf8.AppendRune(out, c)
			if c == '>' {
				inTag = false
				quoteAt = len(out)
				enclose = false
			}
			continue
		}
		if c == ' ' {
			if wasSpace {
				enclose = true
			}
			wasSpace = true
			out = append(out, ' ')
			continue
		}
		wasSpace = false
		switch c {
		case '\\', '"':
			out = append(out, '\\', byte(c))
		case '\'', '\n':
			enclose = true
			out = utf8.AppendRune(out, c)
		case '<':
			inTag = true
			if enclose {
				out = slices.Insert(out, quoteAt, '"')
				out = append(out, '"')
			}
			out = append(out, '<')
		default:
			switch {
			case isPrintable(c):
				out = utf8.AppendRune(out, c)
			case c == 0 && i == len(s)-1:
				// a trailing NUL is a leftover upstream sentinel, drop it
			default:
				out = appendHexEscape(out, c)
			}
		}
	}
	if enclose || wasSpace {
		out = slices.Insert(out, quoteAt, '"')
		out = append(out, '"')
	}
	return string(out)
}
