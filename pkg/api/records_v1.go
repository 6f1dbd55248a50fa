// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one (reference, test) pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	RefIndexName  string         `json:"ref_index_name"`
	TestIndexName string         `json:"test_index_name"`
	Distances     map[string]int `json:"hamming_distance"` // channel → distance
}

// StackedRecordV1 is the stable schema for one cell of the stacked table.
type StackedRecordV1 struct {
	RefIndexName    string `json:"ref_index_name"`
	TestIndexName   string `json:"test_index_name"`
	Index           string `json:"index"`
	HammingDistance int    `json:"hamming_distance"`
}
