package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/easel/yars/debug"
	"github.com/easel/yars/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	// Parse eagerly so diagnostics are ready without re-reading.
	_, err := parse.Parse([]byte(content))
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		parseErr: err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	if debug.LSP() {
		debug.Logf("lsp: open %s\n", params.TextDocument.URI)
	}
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange splices one content change into the document text. A zero
// Range means the client sent the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	runes := []rune(content)
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end || end > len(runes) {
		return content
	}
	return string(runes[:start]) + change.Text + string(runes[end:])
}

// lineColToOffset converts a zero-based line/column position to a rune
// offset into content. Positions past the end clamp to the end.
func lineColToOffset(content string, line, col int) int {
	off := 0
	curLine, curCol := 0, 0
	for _, r := range content {
		if curLine == line && curCol == col {
			return off
		}
		if r == '\n' {
			curLine++
			curCol = 0
		} else {
			curCol++
		}
		off++
	}
	return off
}
