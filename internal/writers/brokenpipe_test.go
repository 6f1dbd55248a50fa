package writers

import (
	"fmt"
	"io"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) {
		t.Fatal("wrapped EPIPE must be a broken pipe")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("ErrClosedPipe must be a broken pipe")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("nil/EOF are not broken pipes")
	}
}
