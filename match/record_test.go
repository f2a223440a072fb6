package match

import (
	"testing"

	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

func pointType() *typeexpr.RecordType {
	return typeexpr.NewRecordType("Point",
		typeexpr.Field{Name: "x", Type: intT},
		typeexpr.Field{Name: "y", Type: intT},
	)
}

func mustRecord(t *testing.T, rt *typeexpr.RecordType, values ...any) *object.Record {
	t.Helper()
	rec, err := object.NewRecord(rt, values...)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	return rec
}

func TestRecordIdentityMatch(t *testing.T) {
	pt := pointType()

	mustOk(t, mustRecord(t, pt, 1, 2), pt.Expr(), Invariant)

	m := mustFail(t, mustRecord(t, pt, 1, "2"), pt.Expr(), Invariant)
	if m.Expected != "Point(x: Int, y: Int)" {
		t.Errorf("Expected = %q", m.Expected)
	}
	if m.Actual != "Point(x: Int, y: Int) with incorrect arguments: y -> Str" {
		t.Errorf("Actual = %q", m.Actual)
	}

	m = mustFail(t, mustRecord(t, pt, "a", "b"), pt.Expr(), Invariant)
	if m.Actual != "Point(x: Int, y: Int) with incorrect arguments: x -> Str, y -> Str" {
		t.Errorf("Actual = %q", m.Actual)
	}
}

// Record fields are checked invariantly whatever the ambient mode.
func TestRecordFieldsInvariant(t *testing.T) {
	rt := typeexpr.NewRecordType("Scale", typeexpr.Field{Name: "f", Type: floatT})
	rec := mustRecord(t, rt, 1)
	for _, mode := range []Mode{Invariant, Covariant, Bivariant} {
		if m := Matches(rec, rt.Expr(), mode, NewEnv()); m == nil {
			t.Errorf("%s: Int in a Float field passed", mode)
		}
	}
}

func TestRecordHomonym(t *testing.T) {
	declared := pointType()
	other := pointType() // same name and shape, fresh identity

	m := mustFail(t, mustRecord(t, other, 1, 2), declared.Expr(), Invariant)
	if m.Kind != IdentityMismatch {
		t.Errorf("Kind = %v, want IdentityMismatch", m.Kind)
	}
	if m.Actual != "untyped Point" {
		t.Errorf("Actual = %q, want %q", m.Actual, "untyped Point")
	}
}

func TestRecordAgainstStrangers(t *testing.T) {
	pt := pointType()
	size := typeexpr.NewRecordType("Size",
		typeexpr.Field{Name: "w", Type: intT},
		typeexpr.Field{Name: "h", Type: intT},
	)

	// A different record of matching arity reads as a generic tuple shape.
	m := mustFail(t, mustRecord(t, size, 3, 4), pt.Expr(), Invariant)
	if m.Actual != "Tuple" {
		t.Errorf("same-arity record Actual = %q, want %q", m.Actual, "Tuple")
	}

	one := typeexpr.NewRecordType("One", typeexpr.Field{Name: "v", Type: intT})
	m = mustFail(t, mustRecord(t, one, 3), pt.Expr(), Invariant)
	if m.Actual == "Tuple" {
		t.Errorf("arity-1 record still reads as Tuple")
	}

	m = mustFail(t, object.Tuple{1, 2}, pt.Expr(), Invariant)
	if m.Actual != "Tuple" {
		t.Errorf("same-arity tuple Actual = %q, want %q", m.Actual, "Tuple")
	}
	m = mustFail(t, object.Tuple{1}, pt.Expr(), Invariant)
	if m.Actual != "(Int)" {
		t.Errorf("short tuple Actual = %q, want %q", m.Actual, "(Int)")
	}

	m = mustFail(t, 12, pt.Expr(), Invariant)
	if m.Kind != TypeMismatch || m.Actual != "Int" {
		t.Errorf("scalar = %v / %q", m.Kind, m.Actual)
	}
}

func TestGenericConcrete(t *testing.T) {
	box := typeexpr.NewGenericClass("Box")
	intBox := box.Of(intT)

	mustOk(t, object.NewGenericInstance(box, intT), intBox, Invariant)

	m := mustFail(t, object.NewGenericInstance(box, strT), intBox, Invariant)
	if m.Expected != "Box<Int>" || m.Actual != "Box<Str>" {
		t.Errorf("mismatch = %q / %q", m.Expected, m.Actual)
	}

	// A bare instance carries no binding to compare against.
	m = mustFail(t, object.NewInstance(box.Runtime), intBox, Invariant)
	if m.Kind != IdentityMismatch {
		t.Errorf("bare instance Kind = %v, want IdentityMismatch", m.Kind)
	}

	m = mustFail(t, object.NewGenericInstance(box, intT, strT), intBox, Invariant)
	if m.Kind != ArityMismatch {
		t.Errorf("wrong arity Kind = %v, want ArityMismatch", m.Kind)
	}

	mustFail(t, 5, intBox, Invariant)
}

// Parameter equality is by identity token, not by name: a homonymous generic
// never matches.
func TestGenericWrongBase(t *testing.T) {
	box := typeexpr.NewGenericClass("Box")
	other := typeexpr.NewGenericClass("Box")

	m := mustFail(t, object.NewGenericInstance(other, intT), box.Of(intT), Invariant)
	if m.Kind != IdentityMismatch {
		t.Errorf("Kind = %v, want IdentityMismatch", m.Kind)
	}
}

func TestGenericBare(t *testing.T) {
	box := typeexpr.NewGenericClass("Box")

	mustOk(t, object.NewInstance(box.Runtime), box.Bare(), Invariant)

	// Parameterized instances do not satisfy the bare form.
	m := mustFail(t, object.NewGenericInstance(box, intT), box.Bare(), Invariant)
	if m.Kind != IdentityMismatch {
		t.Errorf("Kind = %v, want IdentityMismatch", m.Kind)
	}

	other := typeexpr.NewClass("Other")
	mustFail(t, object.NewInstance(other), box.Bare(), Invariant)
}

// An instance parameterized over a type variable expression matches only a
// declaration rendered the same way.
func TestGenericTypeVarParam(t *testing.T) {
	box := typeexpr.NewGenericClass("Box")
	tv := typeexpr.TypeVar{Name: "T"}

	mustOk(t, object.NewGenericInstance(box, tv), box.Of(tv), Invariant)
	mustFail(t, object.NewGenericInstance(box, tv), box.Of(intT), Invariant)
	mustFail(t, object.NewGenericInstance(box, intT), box.Of(tv), Invariant)
}
