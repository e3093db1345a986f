package resxml

import "testing"

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{' ', true},
		{'é', true},
		{0x00a0, true}, // no-break space is graphic, not control
		{0x20ac, true}, // euro sign
		{0x00ad, true}, // soft hyphen, format character
		{0x200b, true}, // zero width space
		{0x200e, true}, // left-to-right mark
		{0x200f, true}, // right-to-left mark
		{0x0378, true}, // unassigned outside the Specials block stays raw
		{0x1f600, true},
		{0x00, false},
		{'\t', false},
		{'\n', false},
		{0x1f, false},
		{0x7f, false},
		{0x9f, false},
		{0xfff0, false},
		{0xfffd, false}, // replacement character sits in Specials
		{0xffff, false},
	}
	for _, tt := range tests {
		if got := isPrintable(tt.r); got != tt.want {
			t.Fatalf("isPrintable(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
