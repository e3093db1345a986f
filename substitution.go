package resxml

import (
	"math"
	"strconv"
	"strings"
)

// maxNonPositional caps how many non positional placeholders a single scan
// records before it stops looking.
const maxNonPositional = 4

// unlimitedSubstitutions disables the non positional scan cap.
const unlimitedSubstitutions = -1

// HasMultipleNonPositionalSubstitutions reports whether s is an ambiguous
// format string: at least one non positional placeholder alongside at least
// one other placeholder, so a runtime formatter could resolve the arguments
// in the wrong order.
func HasMultipleNonPositionalSubstitutions(s string) bool {
	nonPositional, positional := findSubstitutions(s, maxNonPositional)
	return len(nonPositional) > 0 && len(nonPositional)+len(positional) > 1
}

// EnumerateNonPositionalSubstitutionsIfRequired rewrites an ambiguous format
// string so every non positional placeholder carries an explicit 1-based
// index: "%s and %s" becomes "%1$s and %2$s". Indices are assigned in scan
// order counting only non positional occurrences; positional placeholders
// and plain text are copied through. Unambiguous strings are returned
// unchanged.
func EnumerateNonPositionalSubstitutionsIfRequired(s string) string {
	nonPositional, positional := findSubstitutions(s, maxNonPositional)
	if len(nonPositional) == 0 || len(nonPositional)+len(positional) < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 3*len(nonPositional))
	pos := 0
	for n, p := range nonPositional {
		b.WriteString(s[pos : p+1])
		b.WriteString(strconv.Itoa(n + 1))
		b.WriteByte('$')
		pos = p + 1
	}
	b.WriteString(s[pos:])
	return b.String()
}

// findSubstitutions returns the byte offsets of the % placeholders in s,
// split into non positional ("%s", or a dangling "%" ending the string) and
// positional ("%1$s") occurrences. "%%" is an escaped percent and counts as
// neither. A dangling "%" terminates the scan, as does recording nonPosMax
// non positional offsets; unlimitedSubstitutions disables the cap. The scan
// resumes after each examined run, so a "%" inside a rejected digit run is
// not revisited.
func findSubstitutions(s string, nonPosMax int) (nonPositional, positional []int) {
	if nonPosMax == unlimitedSubstitutions {
		nonPosMax = math.MaxInt
	}
	pos2 := 0
	for {
		i := strings.IndexByte(s[pos2:], '%')
		if i < 0 {
			break
		}
		pos := pos2 + i
		pos2 = pos + 1
		if pos2 == len(s) {
			nonPositional = append(nonPositional, pos)
			break
		}
		c := s[pos2]
		pos2++
		if c == '%' {
			continue
		}
		if c >= '0' && c <= '9' && pos2 < len(s) {
			for {
				c = s[pos2]
				pos2++
				if c < '0' || c > '9' || pos2 >= len(s) {
					break
				}
			}
			if c == '$' {
				positional = append(positional, pos)
				continue
			}
		}
		nonPositional = append(nonPositional, pos)
		if len(nonPositional) >= nonPosMax {
			break
		}
	}
	return nonPositional, positional
}
