// Package token provides the line index and YAML lexical helpers.
//
// [Lines] maps byte offsets to zero based line/character positions and
// back.  [DoubleQuoted], [SingleQuoted], [FoldPlain] and [BlockScalar]
// decode the authored text of scalars into their values.
package token
