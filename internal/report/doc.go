// Package report writes the human-readable diagnostics of a run: mismatch
// errors and rewrite confirmations. Output is plain lines, colored with ANSI
// escape codes unless coloring is disabled.
package report
