package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	SequenceType
	MappingType
	TaggedType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case SequenceType:
		return "list"
	case MappingType:
		return "dict"
	case TaggedType:
		return "tagged"
	default:
		return "<err: unknown type>"
	}
}

type Node struct {
	Type Type

	Bool    bool
	String  string
	Number  string
	Int64   *int64
	Float64 *float64

	Tag   string
	Inner *Node

	Keys   []*Node
	Values []*Node
}

// NumberText returns the textual form of a NumberType node. Parsed nodes
// keep their source text in Number; nodes built programmatically derive
// canonical decimal text from Int64 or Float64.
func (y *Node) NumberText() string {
	if y.Number != "" {
		return y.Number
	}
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		f := *y.Float64
		switch {
		case math.IsInf(f, 1):
			return ".inf"
		case math.IsInf(f, -1):
			return "-.inf"
		case math.IsNaN(f):
			return ".nan"
		}
		v := strconv.FormatFloat(f, 'f', -1, 64)
		// keep floats float-shaped so a re-parse yields a float again
		if !strings.Contains(v, ".") {
			v += ".0"
		}
		return v
	}
	return ""
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		Bool:   y.Bool,
		String: y.String,
		Number: y.Number,
		Tag:    y.Tag,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	res.Inner = y.Inner.Clone()
	if y.Keys != nil {
		res.Keys = make([]*Node, len(y.Keys))
		for i, k := range y.Keys {
			res.Keys[i] = k.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(ys []*Node) *Node {
	res := &Node{
		Type:   SequenceType,
		Values: make([]*Node, len(ys)),
	}
	copy(res.Values, ys)
	return res
}

func FromTagged(tag string, inner *Node) *Node {
	if inner == nil {
		inner = Null()
	}
	return &Node{
		Type:  TaggedType,
		Tag:   tag,
		Inner: inner,
	}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a mapping preserving the given entry order. Nil keys
// become null keys.
func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{
		Type:   MappingType,
		Keys:   make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		key, val := kvs[i].Key, kvs[i].Val
		if key == nil {
			key = Null()
		}
		if val == nil {
			val = Null()
		}
		res.Keys[i] = key
		res.Values[i] = val
	}
	return res
}

// FromMap builds a mapping with string keys in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   MappingType,
		Keys:   make([]*Node, len(yMap)),
		Values: make([]*Node, len(yMap)),
	}
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		val := yMap[key]
		if val == nil {
			val = Null()
		}
		res.Keys[i] = FromString(key)
		res.Values[i] = val
	}
	return res
}

// Get returns the value under a string key of a mapping, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != MappingType {
		return nil
	}
	for i := range y.Keys {
		k := y.Keys[i]
		if k.Type == StringType && k.String == field {
			return y.Values[i]
		}
	}
	return nil
}
