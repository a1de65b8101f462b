// Package ir provides the materialized value of a YAML document.
//
// A value is a tree of *Node, a tagged union whose Type selects which
// fields are meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64, BigInt or Float64
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values, where Fields[i] is the string key of
//     Values[i]
//
// Object keys are unique strings.  Objects built with FromMap have sorted
// keys; objects built with FromKeyVals keep the given order.
//
// Each node records its Parent, and its ParentIndex and ParentField
// within the parent, so a node knows its own path:
//
//	p := node.Path() // e.g. $.template.containers[0]
//
// Trees are acyclic: an alias in the source document yields an
// independent copy at each site.
//
// Nodes are not safe for concurrent mutation.
package ir
