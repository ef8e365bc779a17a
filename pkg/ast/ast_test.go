package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCompareOpString(t *testing.T) {
	cases := map[CompareOp]string{
		CmpEq:          "==",
		CmpNotEq:       "!=",
		CmpLess:        "<",
		CmpLessOrEq:    "<=",
		CmpGreater:     ">",
		CmpGreaterOrEq: ">=",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("CompareOp(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestNodesAreStructurallyComparable(t *testing.T) {
	a := &Add{Lhs: &NumberLiteral{Value: 1}, Rhs: &NumberLiteral{Value: 2}}
	b := &Add{Lhs: &NumberLiteral{Value: 1}, Rhs: &NumberLiteral{Value: 2}}
	// The embedded marker structs are unexported and carry no data.
	opts := cmpopts.IgnoreUnexported(Add{}, NumberLiteral{})
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Errorf("structurally identical Add nodes differ: %s", diff)
	}
}

func TestVariableValueNamesChain(t *testing.T) {
	v := &VariableValue{Names: []string{"a", "b", "c"}}
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(v.Names, want); diff != "" {
		t.Errorf("Names mismatch: %s", diff)
	}
}
