package parse

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/easel/yars/debug"
	"github.com/easel/yars/encode"
	"github.com/easel/yars/ir"
)

// ErrParse wraps every parse failure: malformed YAML, multi-document
// streams, unresolved aliases, and unsupported constructs.
var ErrParse = errors.New("parse error")

// Parse converts one YAML document into a node tree. Empty and
// comment-only input parses to a null node. Streams holding more than
// one document are rejected.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	switch len(file.Docs) {
	case 0:
		return ir.Null(), nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d documents in stream, expected one", ErrParse, len(file.Docs))
	}
	body := file.Docs[0].Body
	if body == nil {
		return ir.Null(), nil
	}
	p := &parseState{opts: pOpts, anchors: map[string]*ir.Node{}}
	res, err := p.node(body)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: document\n%v", res)
	}
	return res, nil
}

type parseState struct {
	opts    *parseOpts
	anchors map[string]*ir.Node
}

func (p *parseState) node(n ast.Node) (*ir.Node, error) {
	switch t := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(t.Value), nil
	case *ast.IntegerNode:
		return p.integer(t), nil
	case *ast.FloatNode:
		v := t.Value
		return &ir.Node{Type: ir.NumberType, Number: tokenText(t), Float64: &v}, nil
	case *ast.InfinityNode:
		v := t.Value
		return &ir.Node{Type: ir.NumberType, Number: tokenText(t), Float64: &v}, nil
	case *ast.NanNode:
		v := math.NaN()
		return &ir.Node{Type: ir.NumberType, Number: tokenText(t), Float64: &v}, nil
	case *ast.StringNode:
		return ir.FromString(t.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(t.Value.Value), nil
	case *ast.MappingNode:
		return p.mapping(t.Values)
	case *ast.MappingValueNode:
		// A single key/value pair parses as its own node, not as a
		// one-entry MappingNode.
		return p.mapping([]*ast.MappingValueNode{t})
	case *ast.SequenceNode:
		return p.sequence(t)
	case *ast.TagNode:
		inner, err := p.node(t.Value)
		if err != nil {
			return nil, err
		}
		return ir.FromTagged(tokenText(t), inner), nil
	case *ast.AnchorNode:
		return p.anchor(t)
	case *ast.AliasNode:
		return p.alias(t)
	case *ast.MergeKeyNode:
		// Merge keys are not expanded; "<<" stays an ordinary key.
		return ir.FromString("<<"), nil
	case *ast.MappingKeyNode:
		return p.node(t.Value)
	default:
		return nil, fmt.Errorf("%w: unsupported construct %s", ErrParse, n.Type())
	}
}

func (p *parseState) integer(t *ast.IntegerNode) *ir.Node {
	res := &ir.Node{Type: ir.NumberType, Number: tokenText(t)}
	switch v := t.Value.(type) {
	case int64:
		res.Int64 = &v
	case uint64:
		if v <= math.MaxInt64 {
			iv := int64(v)
			res.Int64 = &iv
		}
		// Beyond int64 the source text alone carries the value.
	}
	return res
}

func (p *parseState) mapping(kvs []*ast.MappingValueNode) (*ir.Node, error) {
	keys := make([]*ir.Node, 0, len(kvs))
	vals := make([]*ir.Node, 0, len(kvs))
	for _, kvNode := range kvs {
		key, err := p.node(kvNode.Key)
		if err != nil {
			return nil, err
		}
		var val *ir.Node
		if kvNode.Value == nil {
			val = ir.Null()
		} else if val, err = p.node(kvNode.Value); err != nil {
			return nil, err
		}
		at := -1
		for i := range keys {
			if ir.Equal(keys[i], key) {
				at = i
				break
			}
		}
		if at < 0 {
			keys = append(keys, key)
			vals = append(vals, val)
			continue
		}
		if p.opts.strict {
			return nil, fmt.Errorf("%w: duplicate mapping key %s at %s",
				ErrParse, encode.MustString(key), tokenPos(kvNode.Key))
		}
		// Last occurrence wins, first position kept.
		vals[at] = val
	}
	res := &ir.Node{Type: ir.MappingType, Keys: keys, Values: vals}
	return res, nil
}

func (p *parseState) sequence(t *ast.SequenceNode) (*ir.Node, error) {
	items := make([]*ir.Node, len(t.Values))
	for i, v := range t.Values {
		if v == nil {
			items[i] = ir.Null()
			continue
		}
		res, err := p.node(v)
		if err != nil {
			return nil, err
		}
		items[i] = res
	}
	return &ir.Node{Type: ir.SequenceType, Values: items}, nil
}

// anchor converts the anchored value and records it for later aliases.
// The name becomes visible only once the value has fully converted, so
// an alias inside its own anchor is an error rather than a cycle.
func (p *parseState) anchor(t *ast.AnchorNode) (*ir.Node, error) {
	res, err := p.node(t.Value)
	if err != nil {
		return nil, err
	}
	if name := nodeName(t.Name); name != "" {
		p.anchors[name] = res
	}
	return res, nil
}

func (p *parseState) alias(t *ast.AliasNode) (*ir.Node, error) {
	name := nodeName(t.Value)
	res, ok := p.anchors[name]
	if !ok {
		return nil, fmt.Errorf("%w: unresolved alias *%s", ErrParse, name)
	}
	return res.Clone(), nil
}

func nodeName(n ast.Node) string {
	if n == nil {
		return ""
	}
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	if tok := n.GetToken(); tok != nil {
		return tok.Value
	}
	return ""
}

// tokenText returns the source text of a node's token, for numbers and
// tags whose spelling must survive the round trip.
func tokenText(n ast.Node) string {
	if tok := n.GetToken(); tok != nil {
		return tok.Value
	}
	return ""
}

func tokenPos(n ast.Node) string {
	if tok := n.GetToken(); tok != nil && tok.Position != nil {
		return fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
	}
	return "?:?"
}
