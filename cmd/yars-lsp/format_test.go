package main

import (
	"context"
	"testing"

	"go.lsp.dev/protocol"
)

func formattingParams(uri string) *protocol.DocumentFormattingParams {
	return &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
	}
}

func TestFormattingRewritesDocument(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///t.yaml", "b: 2\na: 1\n", 1)

	edits, err := s.Formatting(context.Background(), formattingParams("file:///t.yaml"))
	if err != nil {
		t.Fatalf("Formatting: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want one whole-document edit", len(edits))
	}
	edit := edits[0]
	if want := "a: 1\nb: 2\n"; edit.NewText != want {
		t.Errorf("NewText = %q, want %q", edit.NewText, want)
	}
	if edit.Range.Start != (protocol.Position{}) {
		t.Errorf("edit starts at %+v, want document start", edit.Range.Start)
	}
	if edit.Range.End.Line != 2 || edit.Range.End.Character != 0 {
		t.Errorf("edit ends at %+v, want 2:0", edit.Range.End)
	}
}

func TestFormattingAlreadyCanonical(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///t.yaml", "a: 1\nb: 2\n", 1)

	edits, err := s.Formatting(context.Background(), formattingParams("file:///t.yaml"))
	if err != nil {
		t.Fatalf("Formatting: %v", err)
	}
	if edits == nil {
		t.Fatal("canonical document returned nil edits, want empty slice")
	}
	if len(edits) != 0 {
		t.Errorf("canonical document produced %d edits", len(edits))
	}
}

func TestFormattingUnknownDocument(t *testing.T) {
	s := newTestServer()

	edits, err := s.Formatting(context.Background(), formattingParams("file:///absent.yaml"))
	if err != nil {
		t.Fatalf("Formatting: %v", err)
	}
	if edits != nil {
		t.Errorf("unknown document produced edits: %v", edits)
	}
}

func TestFormattingBrokenDocument(t *testing.T) {
	s := newTestServer()
	s.docs.put("file:///bad.yaml", "a: [1,\n", 1)

	edits, err := s.Formatting(context.Background(), formattingParams("file:///bad.yaml"))
	if err != nil {
		t.Fatalf("Formatting: %v", err)
	}
	if edits != nil {
		t.Errorf("broken document produced edits: %v", edits)
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"one line", "a: 1\n", 1},
		{"no trailing newline", "a: 1", 1},
		{"two lines", "a: 1\nb: 2\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lineCount(tt.content); got != tt.want {
				t.Errorf("lineCount(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}
