// Package hamming implements the per-position mismatch count between two
// equal-length index sequences. It is a leaf package: it imports nothing
// from the rest of indexdist.
package hamming
