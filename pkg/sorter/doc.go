// Package sorter runs a sort: it snapshots the source directory, asks the
// rules engine where each file belongs and moves it there.
//
// A run is synchronous. Every file in the snapshot gets exactly one
// outcome: moved, unmatched, skipped (already at its target) or failed.
// By default the first failure ends the run; with Options.KeepGoing the
// failure is recorded and the remaining files are still attempted.
//
// Destination directories are never created. A destination that does not
// exist, or is not a directory, is an IO failure for the files routed to
// it.
package sorter
