// Package encode renders IR nodes as canonical YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	text, err := encode.String(node)
//
//	// Or stream to a writer with a wider indent unit.
//	err := encode.Encode(node, os.Stdout, encode.WithIndent(4))
//
// The layout is deterministic: two-space indentation by default, plain
// scalars where the text allows it, |- literal blocks for safe
// multi-line strings, JSON-style double quotes otherwise, and a single
// trailing newline. Mapping entries are emitted in node order; sort
// first with the canon package for canonical output.
//
// # Related Packages
//
//   - github.com/easel/yars/ir - node representation
//   - github.com/easel/yars/canon - canonical entry ordering
//   - github.com/easel/yars/parse - YAML text to nodes
package encode
