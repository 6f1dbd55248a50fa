package seqtable

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaError reports reference and test tables whose column sets differ.
type SchemaError struct {
	OnlyInReference []string
	OnlyInTest      []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.OnlyInReference) > 0 {
		parts = append(parts, fmt.Sprintf("only in reference: %s", strings.Join(e.OnlyInReference, ",")))
	}
	if len(e.OnlyInTest) > 0 {
		parts = append(parts, fmt.Sprintf("only in test: %s", strings.Join(e.OnlyInTest, ",")))
	}
	return "reference and test indices have different columns (" + strings.Join(parts, "; ") + ")"
}

// CheckSchema verifies that ref and test expose the same column set.
// Column order is irrelevant.
func CheckSchema(ref, test *Table) error {
	onlyRef := difference(ref.Columns(), test.Columns())
	onlyTest := difference(test.Columns(), ref.Columns())
	if len(onlyRef) == 0 && len(onlyTest) == 0 {
		return nil
	}
	return &SchemaError{OnlyInReference: onlyRef, OnlyInTest: onlyTest}
}

// difference returns the sorted members of a that are absent from b.
func difference(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, s := range b {
		in[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := in[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
