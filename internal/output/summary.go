package output

import (
	"fmt"
	"io"
	"strings"

	"indexdist/internal/longform"
	"indexdist/internal/report"
)

// WriteSummaryTSV writes one line per test index: the number of reference
// indices within the threshold on every channel, then the minimum distance
// per channel.
func WriteSummaryTSV(w io.Writer, channels []string, list []report.TestSummary, header bool) error {
	if header {
		cols := []string{SummaryHeader}
		for _, ch := range channels {
			cols = append(cols, "min_"+longform.ColumnName(ch))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	for _, s := range list {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\t%d", s.TestName, s.Close)
		for _, d := range s.MinDistance {
			fmt.Fprintf(&sb, "\t%d", d)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
