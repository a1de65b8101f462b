package main

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/yamlptr"
	"github.com/signadot/yamlptr/diag"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	opts []yamlptr.ParseOption
}

type document struct {
	uri     string
	content string
	version int32
	res     *yamlptr.Result
	// err is set when the content could not be materialized.
	err error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	opts := append(ds.opts[:len(ds.opts):len(ds.opts)], yamlptr.AttachComments(true))
	res, err := yamlptr.ParseWithPointers([]byte(content), opts...)
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		res:     res,
		err:     err,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if cur := ds.docs[uri]; cur != nil && cur.version > version {
		return cur
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string, diagnostics []protocol.Diagnostic) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		return append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Code:     diag.CodeException,
			Source:   diag.Source,
			Message:  doc.err.Error(),
		})
	}
	for i := range doc.res.Diagnostics {
		diagnostics = append(diagnostics, doc.res.Diagnostics[i].Protocol())
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, validateDocument(doc))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, validateDocument(doc))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	s.publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// result returns the parsed document at uri, or nil.
func (s *Server) result(uri protocol.DocumentURI) *yamlptr.Result {
	doc := s.docs.get(string(uri))
	if doc == nil {
		return nil
	}
	return doc.res
}
