package resxml

import "unicode"

// specialsTable covers the Unicode Specials block (U+FFF0..U+FFFF): the
// interlinear annotation controls, the replacement character, and the
// noncharacters U+FFFE and U+FFFF.
var specialsTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xfff0, Hi: 0xffff, Stride: 1}},
}

// isPrintable reports whether r may appear literally in encoder output.
// ISO control characters and the Specials block must be written as escapes.
// Everything else passes through raw, including format characters such as
// soft hyphens and directional marks, which localized resource strings use.
func isPrintable(r rune) bool {
	return !unicode.IsControl(r) && !unicode.Is(specialsTable, r)
}
