// Package histogram renders the stacked distance table as a faceted
// histogram: one panel per test index, bars dodged per channel and a
// reference line at the minimum safe distance. It only consumes
// longform.StackedRecord rows.
package histogram
