// Package resxml encodes text for embedding in the XML representation of a
// binary resource table. Attribute values and element values carry different
// quoting rules, so each has its own encoder, and format strings with
// ambiguous %-placeholders can be rewritten with explicit positional indices
// before they are indexed.
package resxml

import "strings"

// EscapeXMLChars escapes the characters that cannot appear literally in XML
// text: "&" becomes "&amp;", "<" becomes "&lt;", and the CDATA terminator
// "]]>" becomes "]]&gt;". Replacements are decided left to right over the
// input, never over already emitted output, so an inserted "&amp;" is not
// escaped again.
func EscapeXMLChars(s string) string {
	if !strings.ContainsAny(s, "&<]") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case ']':
			if strings.HasPrefix(s[i:], "]]>") {
				b.WriteString("]]&gt;")
				i += 2
				continue
			}
			b.WriteByte(']')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
