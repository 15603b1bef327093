// Package canon orders mapping entries deterministically.
//
// # Usage
//
//	sorted := canon.Canonicalize(node)
//	text, err := encode.String(sorted)
//
// Canonicalize is pure: it builds a fresh tree and never reorders or
// otherwise mutates its input. Two structurally equal trees always
// canonicalize to identical trees, which is what makes formatted output
// stable across runs.
//
// # Related Packages
//
//   - github.com/easel/yars/ir - node representation
//   - github.com/easel/yars/encode - canonical text rendering
package canon
