package match

import (
	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

// Matches decides whether a runtime value satisfies a type expression under
// the given variance mode. A nil result is Ok. Type variables bind into env;
// pass a fresh env per top-level validation (one function call).
func Matches(value any, e typeexpr.Expr, mode Mode, env *Env) *Mismatch {
	switch t := e.(type) {
	case typeexpr.Any:
		return nil

	case typeexpr.None:
		if value == nil {
			return nil
		}
		return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())

	case typeexpr.Simple:
		actual := object.ClassOf(value)
		if rankMatches(actual, t.Class, mode) {
			return nil
		}
		return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())

	case typeexpr.Union:
		for _, m := range t.Members {
			if Matches(value, m, mode, env) == nil {
				return nil
			}
		}
		// Report the union as a whole, not each member's failure.
		return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())

	case typeexpr.TupleFixed:
		elems, ok := object.TupleElems(value)
		if !ok {
			return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())
		}
		if len(elems) != len(t.Elements) {
			return newMismatch(ArityMismatch, t.String(), object.Decay(value).String())
		}
		for i, el := range elems {
			if Matches(el, t.Elements[i], mode, env) != nil {
				// Report against the shape the value actually has.
				return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())
			}
		}
		return nil

	case typeexpr.TupleVariadic:
		elems, ok := object.TupleElems(value)
		if !ok {
			return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())
		}
		for _, el := range elems {
			if Matches(el, t.Element, mode, env) != nil {
				return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())
			}
		}
		return nil

	case typeexpr.TupleAny:
		if _, ok := object.TupleElems(value); ok {
			return nil
		}
		return newMismatch(TypeMismatch, t.String(), object.Decay(value).String())

	case typeexpr.Container:
		return matchContainer(value, t, mode, env)

	case typeexpr.Callable:
		return matchCallable(value, t, mode)

	case typeexpr.TypeVar:
		if env == nil {
			env = NewEnv()
		}
		return env.bindOrCheck(t, value, mode)

	case typeexpr.Record:
		return matchRecord(value, t, env)

	case typeexpr.Generic:
		return matchGeneric(value, t)

	default:
		return newMismatch(TypeMismatch, e.String(), object.Decay(value).String())
	}
}

// matchContainer checks the runtime category first, then — for restricted
// containers — every element (or every key and value) under the same mode.
func matchContainer(value any, c typeexpr.Container, mode Mode, env *Env) *Mismatch {
	fail := func(kind Kind) *Mismatch {
		return newMismatch(kind, c.String(), object.Decay(value).String())
	}

	switch c.Kind {
	case typeexpr.ListKind:
		elems, ok := object.ListElems(value)
		if !ok {
			return fail(TypeMismatch)
		}
		if c.Unrestricted() {
			return nil
		}
		for _, el := range elems {
			if Matches(el, c.Elem, mode, env) != nil {
				return fail(TypeMismatch)
			}
		}
		return nil

	case typeexpr.SetKind:
		elems, ok := object.SetElems(value)
		if !ok {
			return fail(TypeMismatch)
		}
		if c.Unrestricted() {
			return nil
		}
		for _, el := range elems {
			if Matches(el, c.Elem, mode, env) != nil {
				return fail(TypeMismatch)
			}
		}
		return nil

	case typeexpr.DictKind:
		keys, vals, ok := object.DictItems(value)
		if !ok {
			return fail(TypeMismatch)
		}
		if c.Unrestricted() {
			return nil
		}
		for i := range keys {
			if Matches(keys[i], c.Key, mode, env) != nil {
				return fail(TypeMismatch)
			}
			if Matches(vals[i], c.Val, mode, env) != nil {
				return fail(TypeMismatch)
			}
		}
		return nil

	default:
		return fail(TypeMismatch)
	}
}
