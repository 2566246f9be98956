// Package report renders human-readable summaries of the collector's
// datasets.
//
// One run function per dataset (Snapshots, Trades, TickChanges) drives a
// record stream through a per-kind formatter and prints a terminal
// summary; the trade formatter additionally folds every record into a
// running aggregate (count, notional volume, per-side tallies).
// Statistics reports line counts and on-disk sizes without decoding.
//
// All output goes to the supplied io.Writer; nothing is retained between
// runs.
package report
