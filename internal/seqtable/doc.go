// Package seqtable holds the reference and test index sets: an immutable
// name → per-channel sequence table, its CSV loader and the schema check
// that both sets must pass before they are compared.
package seqtable
