package ir

import (
	"math/big"
	"testing"
)

func TestCompare(t *testing.T) {
	huge, _ := new(big.Int).SetString("100000000000000000000", 10)
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int < Float by value", FromInt(1), FromFloat(1.5), -1},
		{"Float > Int by value", FromFloat(3), FromInt(2), 1},
		{"equal Int before Float", FromInt(1), FromFloat(1.0), -1},
		{"BigInt > Int", FromBigInt(huge), FromInt(1), 1},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array by element", FromSlice([]*Node{FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},

		{"Object by key", FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}), FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}), -1},
		{"Object by value", FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}), FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), 1},
		{"Object field order ignored", FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}, {Key: "a", Val: FromInt(2)}}), FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}, {Key: "b", Val: FromInt(1)}}), 0},
		{"Object smaller key first", FromKeyVals([]KeyVal{{Key: "z", Val: FromInt(1)}, {Key: "a", Val: FromInt(9)}}), FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(0)}}), -1},
		{"Object equal", FromMap(map[string]*Node{"a": Null(), "b": FromString("x")}), FromKeyVals([]KeyVal{{Key: "a"}, {Key: "b", Val: FromString("x")}}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSameValue(t *testing.T) {
	a := FromKeyVals([]KeyVal{{Key: "x", Val: FromFloat(1)}, {Key: "y", Val: FromSlice([]*Node{FromInt(2)})}})
	b := FromKeyVals([]KeyVal{{Key: "y", Val: FromSlice([]*Node{FromFloat(2)})}, {Key: "x", Val: FromInt(1)}})
	if Equal(a, b) {
		t.Errorf("Equal ignored number kinds")
	}
	if !SameValue(a, b) {
		t.Errorf("SameValue distinguished 1 and 1.0")
	}
	if SameValue(FromInt(1), FromString("1")) {
		t.Errorf("SameValue mixed types")
	}
}
