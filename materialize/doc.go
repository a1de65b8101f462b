// Package materialize builds the plain value denoted by a YAML tree.
//
// Aliases are expanded at every site where they occur, with
// self-referencing anchors unfolded once and then cut to null, so the
// result is always a finite tree.  Mapping keys become strings; keys
// which are not string scalars are reported as incompatible.  Duplicate
// keys either abort materialization with ErrDuplicateKey, in strict mode,
// or are reported and resolved by letting the last one win.
package materialize
