// Package matrix builds per-channel reference × test Hamming distance
// matrices. It never imports output, writers, report or app.
package matrix
