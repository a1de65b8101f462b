package ir

// Truth reports whether node is neither null nor a zero or empty value.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64 != 0
		case node.BigInt != nil:
			return node.BigInt.Sign() != 0
		case node.Float64 != nil:
			return *node.Float64 != 0.0
		}
		return false
	case BoolType:
		return node.Bool
	}
	return false
}
