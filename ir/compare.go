package ir

import (
	"cmp"
	"math"
	"math/big"
	"slices"
	"strings"
)

// Compare orders nodes first by type, null < bool < number < string <
// array < object, then by value.  Objects are compared key by key in key
// order, so two objects with the same entries compare equal whatever the
// order of their fields.
func Compare(a, b *Node) int {
	return compare(a, b, true)
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// SameValue is like Equal but does not tell apart numbers of different
// representations, such as 1 and 1.0.
func SameValue(a, b *Node) bool {
	return compare(a, b, false) == 0
}

func compare(a, b *Node, kinds bool) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case NumberType:
		return compareNumbers(a, b, kinds)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case ArrayType:
		return compareSeq(a.Values, b.Values, func(x, y *Node) int {
			return compare(x, y, kinds)
		})
	case ObjectType:
		return compareObjects(a, b, kinds)
	}
	return 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareNumbers compares by value.  With kinds, among equal values Int64
// sorts before BigInt, which sorts before Float64.
func compareNumbers(a, b *Node, kinds bool) int {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Float64 != nil && b.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	if fa, fb := exact(a), exact(b); fa != nil && fb != nil {
		if c := fa.Cmp(fb); c != 0 {
			return c
		}
	}
	if !kinds {
		return 0
	}
	return cmp.Compare(numberKind(a), numberKind(b))
}

// exact gives the value of a number node, or nil for NaN.
func exact(n *Node) *big.Float {
	switch {
	case n.Int64 != nil:
		return new(big.Float).SetInt64(*n.Int64)
	case n.BigInt != nil:
		return new(big.Float).SetInt(n.BigInt)
	case n.Float64 != nil && !math.IsNaN(*n.Float64):
		return big.NewFloat(*n.Float64)
	}
	return nil
}

func numberKind(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.BigInt != nil:
		return 1
	case n.Float64 != nil:
		return 2
	}
	return 3
}

func compareSeq[T any](a, b []T, f func(x, y T) int) int {
	for i := range min(len(a), len(b)) {
		if c := f(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareObjects(a, b *Node, kinds bool) int {
	return compareSeq(byKey(a), byKey(b), func(i, j int) int {
		if c := strings.Compare(a.Fields[i].String, b.Fields[j].String); c != 0 {
			return c
		}
		return compare(a.Values[i], b.Values[j], kinds)
	})
}

// byKey lists the field indices of an object sorted by key.
func byKey(n *Node) []int {
	idx := make([]int, len(n.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		return strings.Compare(n.Fields[i].String, n.Fields[j].String)
	})
	return idx
}
