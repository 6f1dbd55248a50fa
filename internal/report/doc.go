// Package report drives a comparison run: schema check, per-channel matrix
// builds and long-form assembly. It performs no I/O; callers persist and
// plot the returned table.
package report
