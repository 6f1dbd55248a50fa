// Package writers turns the long-form table into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (CSV/TSV/JSON/JSONL).
//   • longform stays domain-only; report stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
