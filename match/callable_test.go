package match

import (
	"testing"

	"github.com/typeward/typeward/typeexpr"
)

// fakeFn is a callable that exposes a declared signature.
type fakeFn struct {
	params []typeexpr.Expr
	ret    typeexpr.Expr
}

func (f fakeFn) DeclaredParams() []typeexpr.Expr { return f.params }
func (f fakeFn) DeclaredReturn() typeexpr.Expr   { return f.ret }

func TestCallableCapability(t *testing.T) {
	decl := typeexpr.Callable{AnyParams: true}

	m := mustFail(t, 5, decl, Invariant)
	if m.Expected != "Callable" || m.Actual != "Int" {
		t.Errorf("mismatch = %q / %q", m.Expected, m.Actual)
	}

	// A plain function carries no declared description; call capability is
	// all that can be asked of it.
	plain := func(x int) int { return x }
	mustOk(t, plain, decl, Invariant)
	mustOk(t, plain, typeexpr.Callable{Params: []typeexpr.Expr{strT}, Return: strT}, Invariant)
}

func TestCallableSignature(t *testing.T) {
	intToInt := fakeFn{params: []typeexpr.Expr{intT}, ret: intT}
	decl := typeexpr.Callable{Params: []typeexpr.Expr{intT}, Return: intT}

	mustOk(t, intToInt, decl, Invariant)

	m := mustFail(t, fakeFn{params: []typeexpr.Expr{strT}, ret: intT}, decl, Invariant)
	if m.Kind != TypeMismatch || m.Actual != "(Str) -> Int" {
		t.Errorf("bad param = %v / %q", m.Kind, m.Actual)
	}

	mustFail(t, fakeFn{params: []typeexpr.Expr{intT}, ret: strT}, decl, Invariant)

	m = mustFail(t, fakeFn{params: []typeexpr.Expr{intT, intT}, ret: intT}, decl, Invariant)
	if m.Kind != ArityMismatch {
		t.Errorf("extra param Kind = %v, want ArityMismatch", m.Kind)
	}
}

func TestCallableUndeclaredSlots(t *testing.T) {
	decl := typeexpr.Callable{Params: []typeexpr.Expr{intT}, Return: intT}

	// A callable that declares nothing about a slot satisfies that slot.
	mustOk(t, fakeFn{params: []typeexpr.Expr{nil}, ret: intT}, decl, Invariant)
	mustOk(t, fakeFn{params: []typeexpr.Expr{intT}}, decl, Invariant)
	mustOk(t, fakeFn{}, decl, Invariant)
}

func TestCallableAnyParams(t *testing.T) {
	decl := typeexpr.Callable{AnyParams: true, Return: intT}
	if decl.String() != "(...) -> Int" {
		t.Fatalf("render = %q", decl.String())
	}

	mustOk(t, fakeFn{params: []typeexpr.Expr{strT, strT, strT}, ret: intT}, decl, Invariant)
	mustOk(t, fakeFn{params: []typeexpr.Expr{strT}}, decl, Invariant)
	mustFail(t, fakeFn{params: []typeexpr.Expr{strT}, ret: strT}, decl, Invariant)
}

// Union parameter declarations compare by canonical render, so member order
// never matters.
func TestCallableUnionOrderInsensitive(t *testing.T) {
	anyList := typeexpr.Container{Kind: typeexpr.ListKind, Elem: typeexpr.Any{}}
	decl := typeexpr.Callable{
		Params: []typeexpr.Expr{typeexpr.NewUnion(intT, anyList)},
		Return: intT,
	}
	fn := fakeFn{
		params: []typeexpr.Expr{typeexpr.NewUnion(anyList, intT)},
		ret:    intT,
	}
	mustOk(t, fn, decl, Invariant)
}

// Parameters flip the mode: a covariant declaration accepts candidates whose
// parameters are wider, not narrower.
func TestCallableParamsContravariance(t *testing.T) {
	decl := typeexpr.Callable{
		Params: []typeexpr.Expr{typeexpr.Simple{Class: typeexpr.Integral}},
		Return: typeexpr.Simple{Class: typeexpr.Integral},
	}

	wideParam := fakeFn{params: []typeexpr.Expr{floatT}, ret: intT}
	mustOk(t, wideParam, decl, Covariant)
	mustFail(t, wideParam, decl, Contravariant)

	narrowParam := fakeFn{params: []typeexpr.Expr{typeexpr.Simple{Class: typeexpr.Bool}}, ret: floatT}
	mustFail(t, narrowParam, decl, Covariant)
	mustOk(t, narrowParam, decl, Contravariant)
}

func TestExprCompatible(t *testing.T) {
	anyList := typeexpr.Container{Kind: typeexpr.ListKind, Elem: typeexpr.Any{}}
	tests := []struct {
		name     string
		actual   typeexpr.Expr
		expected typeexpr.Expr
		mode     Mode
		want     bool
	}{
		{"equal renders", intT, intT, Invariant, true},
		{"any expected", intT, typeexpr.Any{}, Invariant, true},
		{"any actual", typeexpr.Any{}, intT, Invariant, true},
		{"numeric widening", intT, floatT, Covariant, true},
		{"numeric widening invariant", intT, floatT, Invariant, false},
		{"union member covariant", intT, typeexpr.NewUnion(floatT, strT), Covariant, true},
		{"union member invariant", intT, typeexpr.NewUnion(floatT, strT), Invariant, false},
		{"union into union", typeexpr.NewUnion(intT, strT), typeexpr.NewUnion(floatT, strT), Covariant, true},
		{"container elem", typeexpr.Container{Kind: typeexpr.ListKind, Elem: intT}, anyList, Invariant, true},
		{"container kind clash", typeexpr.Container{Kind: typeexpr.SetKind, Elem: intT}, anyList, Invariant, false},
		{"unrestricted expected", typeexpr.Container{Kind: typeexpr.ListKind, Elem: intT}, typeexpr.Container{Kind: typeexpr.ListKind}, Invariant, true},
		{"unrestricted actual", typeexpr.Container{Kind: typeexpr.ListKind}, typeexpr.Container{Kind: typeexpr.ListKind, Elem: intT}, Invariant, false},
		{"tuple elementwise", typeexpr.TupleFixed{Elements: []typeexpr.Expr{intT}}, typeexpr.TupleFixed{Elements: []typeexpr.Expr{floatT}}, Covariant, true},
		{"tuple arity", typeexpr.TupleFixed{Elements: []typeexpr.Expr{intT}}, typeexpr.TupleFixed{Elements: []typeexpr.Expr{intT, intT}}, Bivariant, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exprCompatible(tt.actual, tt.expected, tt.mode); got != tt.want {
				t.Errorf("exprCompatible(%s, %s, %s) = %v, want %v",
					tt.actual.String(), tt.expected.String(), tt.mode, got, tt.want)
			}
		})
	}
}
