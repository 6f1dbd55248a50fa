// Package longform merges per-channel distance matrices into the long-form
// report table and provides the stacked reshape used for plotting.
package longform
