package canon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/easel/yars/encode"
	"github.com/easel/yars/ir"
)

// Canonicalize returns a copy of y with every mapping's entries
// stable-sorted by SortKey, recursively. Sequence order is preserved,
// scalars pass through unchanged, and tagged values pass through whole,
// inner tree untouched. The input is never mutated.
func Canonicalize(y *ir.Node) *ir.Node {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.MappingType:
		return canonicalizeMapping(y)
	case ir.SequenceType:
		res := &ir.Node{
			Type:   ir.SequenceType,
			Values: make([]*ir.Node, len(y.Values)),
		}
		for i, v := range y.Values {
			res.Values[i] = Canonicalize(v)
		}
		return res
	default:
		return y.Clone()
	}
}

func canonicalizeMapping(y *ir.Node) *ir.Node {
	type entry struct {
		sortKey string
		key     *ir.Node
		val     *ir.Node
	}
	entries := make([]entry, len(y.Keys))
	for i := range y.Keys {
		entries[i] = entry{
			sortKey: SortKey(y.Keys[i]),
			key:     y.Keys[i].Clone(),
			val:     Canonicalize(y.Values[i]),
		}
	}
	// Stable: entries whose keys collide on sort key keep input order.
	slices.SortStableFunc(entries, func(a, b entry) int {
		return strings.Compare(a.sortKey, b.sortKey)
	})
	res := &ir.Node{
		Type:   ir.MappingType,
		Keys:   make([]*ir.Node, len(entries)),
		Values: make([]*ir.Node, len(entries)),
	}
	for i := range entries {
		res.Keys[i] = entries[i].key
		res.Values[i] = entries[i].val
	}
	return res
}

// SortKey derives the text a mapping entry sorts by from its key node.
// Scalar keys map to their literal text, tagged keys to the tag, a
// colon, and the inner key's text, and collection keys to their own
// rendered form flattened to one line. Distinct keys may collide, the
// number 5 and the string "5" for one; the stable sort keeps collided
// entries in input order.
func SortKey(y *ir.Node) string {
	switch y.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		if y.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return y.NumberText()
	case ir.StringType:
		return y.String
	case ir.TaggedType:
		return y.Tag + ":" + SortKey(y.Inner)
	default:
		text, err := encode.String(y)
		if err != nil {
			text = fmt.Sprintf("%v", y)
		}
		return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	}
}
