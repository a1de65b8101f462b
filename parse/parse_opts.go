package parse

import "github.com/signadot/yamlptr/token"

const DefaultMaxDepth = 1000

type parseOpts struct {
	comments bool
	maxDepth int
	lines    token.Lines
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are collected into the tree.
// It defaults to true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// MaxDepth bounds the nesting depth of collections.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseLines supplies an already built line index for the input.
func ParseLines(l token.Lines) ParseOption {
	return func(o *parseOpts) { o.lines = l }
}
