package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.res == nil || len(doc.res.Diagnostics) != 0 {
		return nil, nil
	}
	indent := int(params.Options.TabSize)
	if indent <= 0 {
		indent = 2
	}
	var buf bytes.Buffer
	err := encode.Encode(doc.res.Value, &buf,
		encode.Indent(indent),
		encode.EncodeComments(doc.res.Comments))
	if err != nil {
		return nil, nil
	}
	return formatEdits(doc.content, buf.String()), nil
}

// formatEdits replaces the whole of content with formatted.
func formatEdits(content, formatted string) []protocol.TextEdit {
	if formatted == content {
		return []protocol.TextEdit{}
	}
	lines := bytes.Count([]byte(content), []byte("\n"))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
