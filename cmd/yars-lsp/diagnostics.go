package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/easel/yars/parse"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports a parse failure as an error, and duplicated
// mapping keys as a warning when the document otherwise parses.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostics = append(diagnostics, diagnosticFor(doc.parseErr, protocol.DiagnosticSeverityError))
		return diagnostics
	}

	if _, err := parse.Parse([]byte(doc.content), parse.Strict()); err != nil {
		diagnostics = append(diagnostics, diagnosticFor(err, protocol.DiagnosticSeverityWarning))
	}

	return diagnostics
}

func diagnosticFor(err error, severity protocol.DiagnosticSeverity) protocol.Diagnostic {
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: severity,
		Message:  err.Error(),
		Source:   "yars",
	}
	if pos := extractPosition(err.Error()); pos != nil {
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col),
			},
			End: protocol.Position{
				Line:      uint32(pos.line),
				Character: uint32(pos.col + 1),
			},
		}
	}
	return diagnostic
}

type position struct {
	line int
	col  int
}

// extractPosition pulls a position out of a parser message. Syntax
// errors carry "[line:col]", duplicate key errors end in "at line:col".
// Both are one-based; the result is zero-based for LSP.
func extractPosition(errMsg string) *position {
	if i := strings.Index(errMsg, "["); i >= 0 {
		var line, col int
		if _, err := fmt.Sscanf(errMsg[i:], "[%d:%d]", &line, &col); err == nil && line > 0 && col > 0 {
			return &position{line: line - 1, col: col - 1}
		}
	}
	if i := strings.LastIndex(errMsg, " at "); i >= 0 {
		var line, col int
		if _, err := fmt.Sscanf(errMsg[i+len(" at "):], "%d:%d", &line, &col); err == nil && line > 0 && col > 0 {
			return &position{line: line - 1, col: col - 1}
		}
	}
	return nil
}
