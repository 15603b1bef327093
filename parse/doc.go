// Package parse reads YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("name: alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Reject duplicate keys instead of resolving them.
//	node, err := parse.Parse(data, parse.Strict())
//
// Anchors are resolved during parsing: each alias receives its own deep
// copy of the anchored value, so the resulting tree has no shared
// structure. Tags stay opaque, merge keys stay literal "<<" entries, and
// duplicate mapping keys resolve to the last occurrence at the first
// occurrence's position unless Strict is set.
//
// # Related Packages
//
//   - github.com/easel/yars/ir - node representation
//   - github.com/easel/yars/encode - nodes back to text
package parse
