package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	switch t {
	case ObjectType:
		return "Object"
	case ArrayType:
		return "Array"
	case StringType:
		return "String"
	case NumberType:
		return "Number"
	case BoolType:
		return "Bool"
	case NullType:
		return "Null"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}
