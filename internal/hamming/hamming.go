// internal/hamming/hamming.go
package hamming

import (
	"fmt"
	"unicode/utf8"
)

// LengthMismatchError reports two sequences that cannot be compared
// position by position. Lengths are counted in symbols (runes).
type LengthMismatchError struct {
	A, B string
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %q (len %d) vs %q (len %d)",
		e.A, utf8.RuneCountInString(e.A), e.B, utf8.RuneCountInString(e.B))
}

// Distance counts the symbol positions at which a and b differ.
// Comparison is exact: no case folding and no IUPAC wildcards.
func Distance(a, b string) (int, error) {
	if isASCII(a) && isASCII(b) {
		if len(a) != len(b) {
			return 0, &LengthMismatchError{A: a, B: b}
		}
		mm := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				mm++
			}
		}
		return mm, nil
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, &LengthMismatchError{A: a, B: b}
	}
	mm := 0
	for i := range ra {
		if ra[i] != rb[i] {
			mm++
		}
	}
	return mm, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
