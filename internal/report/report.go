// internal/report/report.go
package report

import (
	"github.com/pkg/errors"

	"indexdist/internal/longform"
	"indexdist/internal/matrix"
	"indexdist/internal/seqtable"
)

// Options controls a report run.
type Options struct {
	// Channels fixes the channel enumeration order. Empty means the
	// reference table's column order.
	Channels []string
	// Workers > 1 builds channel matrices concurrently.
	Workers int
}

// Run validates the two index sets, builds one distance matrix per channel
// and assembles them into the long-form table. It never returns a partial
// table.
func Run(ref, test *seqtable.Table, opts Options) (*longform.Table, error) {
	if err := seqtable.CheckSchema(ref, test); err != nil {
		return nil, err
	}
	channels, err := Channels(ref, opts.Channels)
	if err != nil {
		return nil, err
	}
	ms, err := matrix.BuildAll(ref, test, channels, opts.Workers)
	if err != nil {
		return nil, err
	}
	return longform.Assemble(ms)
}

// Channels resolves the channel enumeration order for ref. Requested names
// must exist and may not repeat.
func Channels(ref *seqtable.Table, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return ref.Channels(), nil
	}
	seen := make(map[string]struct{}, len(requested))
	out := make([]string, 0, len(requested))
	for _, ch := range requested {
		if !ref.HasChannel(ch) {
			return nil, errors.Errorf("unknown channel %q (have %v)", ch, ref.Channels())
		}
		if _, dup := seen[ch]; dup {
			return nil, errors.Errorf("channel %q requested twice", ch)
		}
		seen[ch] = struct{}{}
		out = append(out, ch)
	}
	return out, nil
}
