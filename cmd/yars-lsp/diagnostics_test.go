package main

import (
	"testing"

	"go.lsp.dev/protocol"
)

func TestExtractPosition(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want *position
	}{
		{
			name: "bracketed syntax error",
			msg:  "parse error: [3:5] mapping value is not allowed in this context",
			want: &position{line: 2, col: 4},
		},
		{
			name: "duplicate key position",
			msg:  `parse error: duplicate mapping key "a" at 4:1`,
			want: &position{line: 3, col: 0},
		},
		{
			name: "no position",
			msg:  "parse error: 2 documents in stream, expected one",
			want: nil,
		},
		{
			name: "unknown position placeholder",
			msg:  `parse error: duplicate mapping key "a" at ?:?`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPosition(tt.msg)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("extractPosition(%q) = %v, want %v", tt.msg, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("extractPosition(%q) = %+v, want %+v", tt.msg, *got, *tt.want)
			}
		})
	}
}

func TestValidateDocumentParseError(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///bad.yaml", "a: [1,\n", 1)

	diags := s.validateDocument(s.docs.get("file:///bad.yaml"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", d.Severity)
	}
	if d.Source != "yars" {
		t.Errorf("source = %q, want yars", d.Source)
	}
	if d.Message == "" {
		t.Error("diagnostic has no message")
	}
}

func TestValidateDocumentDuplicateKeys(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///dup.yaml", "a: 1\na: 2\n", 1)

	doc := s.docs.get("file:///dup.yaml")
	if doc.parseErr != nil {
		t.Fatalf("duplicate keys must not fail the default parse: %v", doc.parseErr)
	}

	diags := s.validateDocument(doc)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1 warning", len(diags))
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity = %v, want warning", d.Severity)
	}
	if d.Range.Start.Line != 1 {
		t.Errorf("warning points at line %d, want 1 (the second a:)", d.Range.Start.Line)
	}
}

func TestValidateDocumentClean(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///ok.yaml", "a: 1\nb: 2\n", 1)

	diags := s.validateDocument(s.docs.get("file:///ok.yaml"))
	if len(diags) != 0 {
		t.Errorf("clean document produced diagnostics: %v", diags)
	}
}
