package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/easel/yars/ir"
	"github.com/easel/yars/scalar"
)

// ErrEncoding indicates the emitter met a node it cannot render, such as
// a node with a malformed type. Writer failures are returned unwrapped.
var ErrEncoding = errors.New("encoding error")

// EncState carries emitter state through one document.
type EncState struct {
	indent int
	n      int
	last   byte
}

// position distinguishes the document root from nested renderings.
// Mappings sit flush at the root and one unit deeper everywhere else.
type position int

const (
	posRoot position = iota
	posInline
)

// Encode writes node to w in canonical layout and terminates the
// document with a single trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encodeRoot(node, w, es); err != nil {
		return err
	}
	if es.n > 0 && es.last != '\n' {
		return writeString(w, "\n", es)
	}
	return nil
}

// String renders node to a string via Encode.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders node with surrounding space trimmed, panicking on
// error. Intended for tests and debug output.
func MustString(node *ir.Node) string {
	res, err := String(node)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(res)
}

func encodeRoot(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.MappingType {
		return encodeMapping(node, w, es, 0)
	}
	return encodeValue(node, w, es, 0, posRoot)
}

func encodeMapping(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if len(node.Keys) == 0 {
		return writeString(w, "{}", es)
	}
	for i := range node.Keys {
		if i > 0 {
			if err := writeString(w, "\n", es); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es, indent); err != nil {
			return err
		}
		if err := encodeKey(node.Keys[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, ":", es); err != nil {
			return err
		}
		if err := encodeValueAfterColon(node.Values[i], w, es, indent); err != nil {
			return err
		}
	}
	return nil
}

func encodeSequence(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]", es)
	}
	for i, item := range node.Values {
		if i > 0 {
			if err := writeString(w, "\n", es); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es, indent); err != nil {
			return err
		}
		if err := writeString(w, "-", es); err != nil {
			return err
		}
		if err := encodeSequenceItem(item, w, es, indent); err != nil {
			return err
		}
	}
	return nil
}

// encodeSequenceItem writes whatever follows a sequence dash. The dash
// has been written at indent; nested collections shift one unit deeper.
func encodeSequenceItem(item *ir.Node, w io.Writer, es *EncState, indent int) error {
	switch item.Type {
	case ir.MappingType:
		if len(item.Keys) == 0 {
			return writeString(w, " {}", es)
		}
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeInlineMapping(item, w, es, indent+es.indent)
	case ir.SequenceType:
		if len(item.Values) == 0 {
			return writeString(w, " []", es)
		}
		if err := writeString(w, "\n", es); err != nil {
			return err
		}
		return encodeSequence(item, w, es, indent+es.indent)
	case ir.StringType:
		if scalar.BlockSafe(item.String) {
			if err := writeString(w, " |-\n", es); err != nil {
				return err
			}
			return encodeLiteralBlock(item.String, w, es, indent+es.indent)
		}
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeInlineString(item.String, w, es)
	case ir.TaggedType:
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeTagged(item, w, es, indent+es.indent)
	default:
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeScalar(item, w, es)
	}
}

// encodeInlineMapping opens a mapping on the current line, after a
// sequence dash. The first entry carries no indent of its own; the rest
// start fresh lines at indent.
func encodeInlineMapping(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if len(node.Keys) == 0 {
		return writeString(w, "{}", es)
	}
	for i := range node.Keys {
		if i > 0 {
			if err := writeString(w, "\n", es); err != nil {
				return err
			}
			if err := writeIndent(w, es, indent); err != nil {
				return err
			}
		}
		if err := encodeKey(node.Keys[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, ":", es); err != nil {
			return err
		}
		if err := encodeValueAfterColon(node.Values[i], w, es, indent); err != nil {
			return err
		}
	}
	return nil
}

// encodeValueAfterColon writes a mapping value. Scalars stay on the key
// line after one space; non-empty collections start on the next line one
// unit deeper. Empty collections render inline as {} or [].
func encodeValueAfterColon(val *ir.Node, w io.Writer, es *EncState, indent int) error {
	switch val.Type {
	case ir.MappingType:
		if len(val.Keys) == 0 {
			return writeString(w, " {}", es)
		}
		if err := writeString(w, "\n", es); err != nil {
			return err
		}
		return encodeMapping(val, w, es, indent+es.indent)
	case ir.SequenceType:
		if len(val.Values) == 0 {
			return writeString(w, " []", es)
		}
		if err := writeString(w, "\n", es); err != nil {
			return err
		}
		return encodeSequence(val, w, es, indent+es.indent)
	case ir.StringType:
		if scalar.BlockSafe(val.String) {
			if err := writeString(w, " |-\n", es); err != nil {
				return err
			}
			return encodeLiteralBlock(val.String, w, es, indent+es.indent)
		}
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeInlineString(val.String, w, es)
	case ir.TaggedType:
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeTagged(val, w, es, indent+es.indent)
	default:
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		return encodeScalar(val, w, es)
	}
}

// encodeValue renders val at indent. Sequences always land one unit
// deeper than the requesting context, at the document root included.
func encodeValue(val *ir.Node, w io.Writer, es *EncState, indent int, pos position) error {
	switch val.Type {
	case ir.MappingType:
		at := indent
		if pos != posRoot {
			at = indent + es.indent
		}
		return encodeMapping(val, w, es, at)
	case ir.SequenceType:
		return encodeSequence(val, w, es, indent+es.indent)
	case ir.StringType:
		if scalar.BlockSafe(val.String) {
			return encodeLiteralBlock(val.String, w, es, indent+es.indent)
		}
		return encodeInlineString(val.String, w, es)
	case ir.TaggedType:
		return encodeTagged(val, w, es, indent+es.indent)
	default:
		return encodeScalar(val, w, es)
	}
}

// encodeLiteralBlock writes the lines of a |- literal. Every line gets
// the indent prefix, empty lines included.
func encodeLiteralBlock(text string, w io.Writer, es *EncState, indent int) error {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			if err := writeString(w, "\n", es); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es, indent); err != nil {
			return err
		}
		if err := writeString(w, line, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeInlineString(v string, w io.Writer, es *EncState) error {
	if scalar.Plain(v) {
		return writeString(w, v, es)
	}
	return writeString(w, scalar.Quote(v), es)
}

func encodeScalar(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null", es)
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(node.Bool), es)
	case ir.NumberType:
		return writeString(w, node.NumberText(), es)
	default:
		return fmt.Errorf("%w: unexpected node kind %v", ErrEncoding, node.Type)
	}
}

func encodeTagged(node *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeString(w, node.Tag, es); err != nil {
		return err
	}
	if err := writeString(w, " ", es); err != nil {
		return err
	}
	return encodeValue(node.Inner, w, es, indent, posInline)
}

// encodeKey writes a mapping key before its colon. String keys follow
// the plain-or-quote rule, scalar keys use their literal text, tagged
// keys render the tag then the inner value as one-line text, and
// collection keys fall back to their own rendered text.
func encodeKey(key *ir.Node, w io.Writer, es *EncState) error {
	switch key.Type {
	case ir.StringType:
		return encodeInlineString(key.String, w, es)
	case ir.NumberType:
		return writeString(w, key.NumberText(), es)
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(key.Bool), es)
	case ir.NullType:
		return writeString(w, "null", es)
	case ir.TaggedType:
		if err := writeString(w, key.Tag, es); err != nil {
			return err
		}
		if err := writeString(w, " ", es); err != nil {
			return err
		}
		text, err := inlineText(key.Inner, es)
		if err != nil {
			return err
		}
		return encodeInlineString(text, w, es)
	default:
		text, err := detachedText(key, es)
		if err != nil {
			return err
		}
		return writeString(w, strings.TrimRight(text, "\n"), es)
	}
}

// InlineText flattens a node to one line: a string's text verbatim, any
// other node its rendered text with the trailing newline trimmed. Tagged
// keys render their inner node through it.
func InlineText(node *ir.Node) (string, error) {
	return inlineText(node, &EncState{indent: 2})
}

func inlineText(node *ir.Node, es *EncState) (string, error) {
	if node.Type == ir.StringType {
		return node.String, nil
	}
	text, err := detachedText(node, es)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\n"), nil
}

// detachedText renders node from scratch, as if it were a root document,
// without the trailing newline pass.
func detachedText(node *ir.Node, es *EncState) (string, error) {
	buf := bytes.NewBuffer(nil)
	sub := &EncState{indent: es.indent}
	if err := encodeRoot(node, buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeString(w io.Writer, s string, es *EncState) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	es.n += len(s)
	es.last = s[len(s)-1]
	return nil
}

func writeIndent(w io.Writer, es *EncState, indent int) error {
	if indent == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", indent), es)
}
