// Package parse builds a [cst.Tree] from YAML text.
//
// The parser is a recursive descent over the raw bytes which keeps the
// exact byte range of every node.  It never fails: structural problems are
// recorded as [cst.Error] values on the tree and parsing continues on a
// best effort basis.
package parse
