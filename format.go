// Package yars canonicalizes YAML documents: mapping entries are sorted
// into a stable order and the document is re-rendered in a fixed layout,
// so any two semantically equal documents produce byte-identical text.
//
// # Usage
//
//	out, err := yars.FormatString("b: 2\na: 1\n")
//	// out == "a: 1\nb: 2\n"
//
//	res, err := yars.FormatFile("config.yaml", false)
//
// FormatString and FormatFile run the whole pipeline: strip a leading
// document marker, parse, sort, render. FormatNode and FormatValue are
// the tree-level and Go-value entry points into the same pipeline.
package yars

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"

	"github.com/easel/yars/canon"
	"github.com/easel/yars/debug"
	"github.com/easel/yars/encode"
	"github.com/easel/yars/ir"
	"github.com/easel/yars/parse"
)

var (
	// ErrFormat wraps input that could not be parsed and formatted.
	ErrFormat = errors.New("Error formatting YAML")

	// ErrTopLevelList reports a sequence at the document root, which the
	// canonical layout has no stable rendering for.
	ErrTopLevelList = errors.New("Top-level lists are not supported by the YAML formatter. UMF files should always have a dictionary at the root level with 'column:' and 'validations:' keys. If you're seeing this error, your YAML file may be structured incorrectly.")
)

// FormatNode sorts node and renders it as canonical document text.
func FormatNode(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	sorted := canon.Canonicalize(node)
	if debug.Sort() {
		debug.Logf("canonical order:\n%v", sorted)
	}
	res, err := encode.String(sorted, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return res, nil
}

// FormatString canonicalizes one YAML document held in memory. Empty
// and comment-only documents come back unchanged, and a sequence at the
// root is rejected.
func FormatString(doc string) (string, error) {
	node, err := parse.Parse([]byte(stripLeadingMarker(doc)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormat, err)
	}
	switch node.Type {
	case ir.NullType:
		return doc, nil
	case ir.SequenceType:
		return "", ErrTopLevelList
	}
	return FormatNode(node)
}

// FormatValue canonicalizes any Go value that marshals to a YAML
// mapping. Nil values render as an empty document.
func FormatValue(v any) (string, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormat, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFormat, err)
	}
	switch node.Type {
	case ir.MappingType:
		return FormatNode(node)
	case ir.NullType:
		return "", nil
	case ir.SequenceType:
		return "", ErrTopLevelList
	default:
		return "", fmt.Errorf("Expected dict, got %s", node.Type)
	}
}

// stripLeadingMarker drops leading whitespace and one document start
// marker so the marker does not come back as document content.
func stripLeadingMarker(doc string) string {
	trimmed := strings.TrimLeftFunc(doc, unicode.IsSpace)
	if rest, ok := strings.CutPrefix(trimmed, "---\n"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(trimmed, "---"); ok {
		return rest
	}
	return trimmed
}
