// Package checker runs the per-file pass: it reads a source file, compares
// its default-exported class name with the file's base name, reports a
// mismatch and, when enabled, rewrites the declaration.
//
// Each file moves through Scanned, then NoMatch or Matched, then Match or
// Mismatch, and finally Mismatch reported or Rewritten. Nothing carries over
// from one file to the next.
package checker
