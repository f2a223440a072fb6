package match

import (
	"fmt"
	"strings"

	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

// matchRecord gates on nominal identity, then checks every field
// invariantly, independent of the ambient mode. Non-identity values are
// classified for diagnostics instead of partially matched: a homonymous
// record reports as "untyped <name>", a tuple-shaped value of the same
// arity as a generic tuple shape, anything else as its own decayed type.
func matchRecord(value any, r typeexpr.Record, env *Env) *Mismatch {
	rec, isRecord := value.(*object.Record)

	if isRecord && rec.Type.Identity == r.Type.Identity {
		var bad []string
		for i, f := range r.Type.Fields {
			if Matches(rec.Values[i], f.Type, Invariant, env) != nil {
				bad = append(bad, fmt.Sprintf("%s -> %s", f.Name, object.Decay(rec.Values[i]).String()))
			}
		}
		if bad == nil {
			return nil
		}
		return newMismatch(TypeMismatch, r.String(),
			fmt.Sprintf("%s with incorrect arguments: %s", r.String(), strings.Join(bad, ", ")))
	}

	if isRecord {
		if rec.Type.Name == r.Type.Name {
			return newMismatch(IdentityMismatch, r.String(), "untyped "+rec.Type.Name)
		}
		if len(rec.Values) == len(r.Type.Fields) {
			return newMismatch(IdentityMismatch, r.String(), typeexpr.TupleAny{}.String())
		}
		return newMismatch(IdentityMismatch, r.String(), object.Decay(value).String())
	}

	if elems, ok := object.TupleElems(value); ok {
		if len(elems) == len(r.Type.Fields) {
			return newMismatch(IdentityMismatch, r.String(), typeexpr.TupleAny{}.String())
		}
		return newMismatch(IdentityMismatch, r.String(), object.Decay(value).String())
	}

	return newMismatch(TypeMismatch, r.String(), object.Decay(value).String())
}

// matchGeneric accepts a value only when it carries a recorded parameter
// binding of the same base identity whose parameters equal the expected
// ones element-wise. The bare form accepts only instances with no binding.
func matchGeneric(value any, g typeexpr.Generic) *Mismatch {
	inst, ok := value.(*object.Instance)
	if !ok {
		return newMismatch(TypeMismatch, g.String(), object.Decay(value).String())
	}

	fail := func(kind Kind) *Mismatch {
		return newMismatch(kind, g.String(), object.Decay(value).String())
	}

	if g.Params == nil {
		if inst.Class != g.Class.Runtime {
			return fail(TypeMismatch)
		}
		if inst.Binding != nil {
			return fail(IdentityMismatch)
		}
		return nil
	}

	if inst.Binding == nil {
		return fail(IdentityMismatch)
	}
	if inst.Binding.Base.Identity != g.Class.Identity {
		return fail(IdentityMismatch)
	}
	if len(inst.Binding.Params) != len(g.Params) {
		return fail(ArityMismatch)
	}
	// Invariant element-wise: an instance bound to a plain type variable
	// never matches a concrete expectation.
	for i, p := range inst.Binding.Params {
		if p.String() != g.Params[i].String() {
			return fail(TypeMismatch)
		}
	}
	return nil
}
