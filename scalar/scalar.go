// Package scalar classifies scalar text for YAML emission. The predicates
// decide whether a string renders plain, as a literal block, or inside
// double quotes, and are independent of the emitter that applies them.
package scalar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Plain reports whether v can be emitted without quotes, as a mapping key
// or a scalar value.
func Plain(v string) bool {
	if v == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	if v[0] == '-' {
		return false
	}
	if strings.ContainsRune(v, '\n') {
		return false
	}
	if Reserved(v) {
		return false
	}
	if LooksLikeNumber(v) {
		return false
	}
	for _, r := range v {
		if !plainRune(r) {
			return false
		}
	}
	return true
}

func plainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '-', '.', '/':
		return true
	default:
		return false
	}
}

// Reserved reports whether v is a word a YAML parser may reinterpret as a
// non-string scalar. Reserved words are always quoted.
func Reserved(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "null", "~", "yes", "no", "on", "off":
		return true
	default:
		return false
	}
}

// BlockSafe reports whether v can be emitted as a |- literal block.
// Block literals cannot represent leading or trailing pad or control
// bytes without corrupting round-trip fidelity, so such strings fall
// back to quoting.
func BlockSafe(v string) bool {
	if !strings.ContainsRune(v, '\n') {
		return false
	}
	for _, r := range v {
		if disallowedControl(r) {
			return false
		}
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	return true
}

// disallowedControl matches C0 controls other than tab, newline and CR,
// plus DEL and the C1 range.
func disallowedControl(r rune) bool {
	if r < 0x20 {
		return r != '\t' && r != '\n' && r != '\r'
	}
	if r == 0x7f {
		return true
	}
	return r >= 0x80 && r <= 0x9f
}
