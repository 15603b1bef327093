package main

import (
	"context"
	"strings"

	"fortio.org/safecast"
	"go.lsp.dev/protocol"

	"github.com/easel/yars"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	formatted, err := yars.FormatString(doc.content)
	if err != nil {
		// Unformattable documents already carry a diagnostic.
		return nil, nil
	}

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	endLine, err := safecast.Conv[uint32](lineCount(doc.content))
	if err != nil {
		return nil, nil
	}

	// One edit covering the whole document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: endLine, Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}

func lineCount(content string) int {
	lines := strings.Count(content, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return lines
}
