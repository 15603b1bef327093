// Package ir provides the value tree manipulated by the formatter.
//
// # Overview
//
// Every YAML document handled by this module is represented as a tree of
// ir.Node values. The tree is a recursive tagged union: the Type field
// selects the variant, and values are placed in fields depending on it.
// The IR carries no position information from input documents, making it
// purely semantic.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (Int64, Float64, or source text in Number)
//   - StringType: string value
//   - SequenceType: ordered list of nodes (Values)
//   - MappingType: ordered key-value pairs (Keys and Values, same length)
//   - TaggedType: a tag applied to an inner node (Tag and Inner)
//
// # Numbers
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the source text, kept verbatim through formatting
//
// NumberText resolves the textual form, preferring source text.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// For MappingType nodes, Keys[i] is the key for the value at Values[i].
// Keys may be arbitrary nodes, and must be pairwise distinct under Equal.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes for each goroutine if
// you need concurrent access.
//
// # Related Packages
//
//   - github.com/easel/yars/parse - Parses text into IR nodes
//   - github.com/easel/yars/canon - Sorts mapping entries
//   - github.com/easel/yars/encode - Encodes IR nodes to text
package ir
