package match

import (
	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

// matchCallable checks call capability, then — when the candidate exposes
// its own declared signature — compares declared parameters under the
// reversed mode and the declared return under the same mode. Undeclared
// candidate slots are unconstrained and always satisfy their position.
func matchCallable(value any, c typeexpr.Callable, mode Mode) *Mismatch {
	if !object.IsCallable(value) {
		return newMismatch(TypeMismatch, c.String(), object.Decay(value).String())
	}
	sc, signed := value.(object.Callable)
	if !signed {
		// Plain function with no declared description: only call
		// capability is required of it.
		return nil
	}

	fail := func(kind Kind) *Mismatch {
		return newMismatch(kind, c.String(), object.Decay(value).String())
	}

	if !c.AnyParams {
		declared := sc.DeclaredParams()
		if declared != nil {
			if len(declared) != len(c.Params) {
				return fail(ArityMismatch)
			}
			for i, dp := range declared {
				expected := c.Params[i]
				if dp == nil || expected == nil {
					continue
				}
				if !exprCompatible(dp, expected, mode.Reversed()) {
					return fail(TypeMismatch)
				}
			}
		}
	}

	if c.Return != nil {
		if ret := sc.DeclaredReturn(); ret != nil {
			if !exprCompatible(ret, c.Return, mode) {
				return fail(TypeMismatch)
			}
		}
	}
	return nil
}

// exprCompatible decides whether a candidate's declared type expression is
// compatible with an expected one under a mode. Unlike Matches this compares
// two declarations, not a value against a declaration; it never binds type
// variables. Canonical renderings are the equality basis: unions normalize
// sorted, so declaration order never matters.
func exprCompatible(actual, expected typeexpr.Expr, mode Mode) bool {
	if actual == nil || expected == nil {
		return true
	}
	if _, ok := expected.(typeexpr.Any); ok {
		return true
	}
	if _, ok := actual.(typeexpr.Any); ok {
		return true
	}
	if actual.String() == expected.String() {
		return true
	}

	switch e := expected.(type) {
	case typeexpr.Simple:
		a, ok := actual.(typeexpr.Simple)
		return ok && rankMatches(a.Class, e.Class, mode)

	case typeexpr.Union:
		if mode == Invariant {
			return false // unequal renders already ruled equality out
		}
		if au, ok := actual.(typeexpr.Union); ok {
			for _, m := range au.Members {
				if !exprCompatible(m, expected, mode) {
					return false
				}
			}
			return true
		}
		for _, m := range e.Members {
			if exprCompatible(actual, m, mode) {
				return true
			}
		}
		return false

	case typeexpr.Container:
		a, ok := actual.(typeexpr.Container)
		if !ok || a.Kind != e.Kind {
			return false
		}
		if e.Unrestricted() {
			return true
		}
		if a.Unrestricted() {
			return false
		}
		if e.Kind == typeexpr.DictKind {
			return exprCompatible(a.Key, e.Key, mode) && exprCompatible(a.Val, e.Val, mode)
		}
		return exprCompatible(a.Elem, e.Elem, mode)

	case typeexpr.TupleFixed:
		a, ok := actual.(typeexpr.TupleFixed)
		if !ok || len(a.Elements) != len(e.Elements) {
			return false
		}
		for i := range e.Elements {
			if !exprCompatible(a.Elements[i], e.Elements[i], mode) {
				return false
			}
		}
		return true

	case typeexpr.TupleVariadic:
		a, ok := actual.(typeexpr.TupleVariadic)
		return ok && exprCompatible(a.Element, e.Element, mode)

	case typeexpr.Callable:
		a, ok := actual.(typeexpr.Callable)
		if !ok {
			return false
		}
		if !e.AnyParams {
			if a.AnyParams || len(a.Params) != len(e.Params) {
				return false
			}
			for i := range e.Params {
				if a.Params[i] == nil || e.Params[i] == nil {
					continue
				}
				if !exprCompatible(a.Params[i], e.Params[i], mode.Reversed()) {
					return false
				}
			}
		}
		if e.Return != nil && a.Return != nil {
			return exprCompatible(a.Return, e.Return, mode)
		}
		return true

	default:
		return false
	}
}
