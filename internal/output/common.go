package output

// Output formats for the long-form results table.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every supported results format.
var Formats = []string{FormatCSV, FormatTSV, FormatJSON, FormatJSONL}

// SummaryHeader prefixes the per-channel minimum columns of the summary TSV.
// Keep this as the single source of truth; all writers should use it.
const SummaryHeader = "test-index-name\tclose_ref_indices"
