// Package libdiff compares document renderings line by line.
//
// # Usage
//
//	// How many lines a reformat would touch.
//	n := libdiff.LineCount(original, formatted)
//
//	// A printable diff of the change.
//	fmt.Print(libdiff.Unified(original, formatted))
//
// LineCount is positional: line i of one text is compared with line i
// of the other, which matches how reformat summaries count changes.
// Unified computes a minimal line diff instead, for human review.
package libdiff
