// Package locate maps between paths into a materialized value and the
// nodes and source ranges of the tree it was built from.
//
// Find resolves a path to a node, scanning mapping pairs from last to
// first so that the pair which wins in the value is chosen.  BuildPath is
// its inverse.  PathForPosition and LocationForPath translate through a
// line index to editor positions.
package locate
