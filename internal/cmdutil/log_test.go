package cmdutil

import (
	"bytes"
	"testing"
)

func TestLevels(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "hidden %d", 1)
	Infof(&b, false, "hidden %d", 2)
	if b.Len() != 0 {
		t.Fatalf("suppressed messages leaked: %q", b.String())
	}
	Warnf(&b, false, "w %d", 1)
	Infof(&b, true, "i %d", 2)
	Errorf(&b, "e %d", 3)
	if got, want := b.String(), "WARN: w 1\nINFO: i 2\nerror: e 3\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
