// internal/output/json.go
package output

import (
	"io"

	"indexdist/internal/jsonutil"
	"indexdist/internal/longform"
	"indexdist/pkg/api"
)

// ToAPIRecord converts a long-form record to the stable wire schema (v1).
func ToAPIRecord(channels []string, r longform.Record) api.RecordV1 {
	v := api.RecordV1{
		RefIndexName:  r.RefName,
		TestIndexName: r.TestName,
		Distances:     make(map[string]int, len(channels)),
	}
	for k, ch := range channels {
		v.Distances[ch] = r.Distances[k]
	}
	return v
}

// ToAPIStacked converts one stacked row to the stable wire schema (v1).
func ToAPIStacked(s longform.StackedRecord) api.StackedRecordV1 {
	return api.StackedRecordV1{
		RefIndexName:    s.RefName,
		TestIndexName:   s.TestName,
		Index:           s.Channel,
		HammingDistance: s.Distance,
	}
}

func toAPIRecords(t *longform.Table) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(t.Records))
	for _, r := range t.Records {
		out = append(out, ToAPIRecord(t.Channels, r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, t *longform.Table) error {
	return jsonutil.EncodePretty(w, toAPIRecords(t))
}

// WriteStackedJSON writes stacked rows as a single JSON array (pretty-indented).
func WriteStackedJSON(w io.Writer, rows []longform.StackedRecord) error {
	out := make([]api.StackedRecordV1, 0, len(rows))
	for _, s := range rows {
		out = append(out, ToAPIStacked(s))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteStackedJSONL writes one stacked v1 row per line.
func WriteStackedJSONL(w io.Writer, rows []longform.StackedRecord) error {
	return jsonutil.EncodeLines(w, rows, ToAPIStacked)
}

// WriteJSONL writes one v1 record per line.
func WriteJSONL(w io.Writer, t *longform.Table) error {
	return jsonutil.EncodeLines(w, t.Records, func(r longform.Record) api.RecordV1 {
		return ToAPIRecord(t.Channels, r)
	})
}
