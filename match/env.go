package match

import (
	"fmt"

	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

// RebindPolicy pins how later occurrences of a bound type variable are
// checked within one call.
type RebindPolicy int

const (
	// RebindAgainstBound re-evaluates each occurrence against the
	// variable's declared bound (the default).
	RebindAgainstBound RebindPolicy = iota
	// RebindAgainstFirst evaluates later occurrences against the concrete
	// type the first occurrence bound.
	RebindAgainstFirst
)

// Env is the binding environment of a single validation pass: it records
// what each type variable resolved to on first use. Create one per call and
// discard it afterwards; an Env is never shared across calls or goroutines.
type Env struct {
	policy   RebindPolicy
	bindings map[string]binding
}

type binding struct {
	typ        typeexpr.Expr // concrete type recorded on first use
	constraint bool          // typ is a matched constraint member
}

// NewEnv creates an empty environment with the default rebind policy.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]binding)}
}

// NewEnvWithPolicy creates an empty environment with an explicit policy.
func NewEnvWithPolicy(p RebindPolicy) *Env {
	return &Env{policy: p, bindings: make(map[string]binding)}
}

// Resolved returns the concrete type a variable resolved to, if any.
func (e *Env) Resolved(name string) (typeexpr.Expr, bool) {
	b, ok := e.bindings[name]
	return b.typ, ok
}

func (e *Env) record(name string, typ typeexpr.Expr, constraint bool) {
	e.bindings[name] = binding{typ: typ, constraint: constraint}
}

// effectiveMode resolves a variable's own variance flags against the
// ambient mode.
func effectiveMode(v typeexpr.TypeVar, ambient Mode) Mode {
	switch {
	case v.Covariant && v.Contravariant:
		return Bivariant
	case v.Covariant:
		return Covariant
	case v.Contravariant:
		return Contravariant
	default:
		return ambient
	}
}

// bindOrCheck validates a value against a type variable, binding it on
// first use and enforcing consistency on reuse.
func (e *Env) bindOrCheck(v typeexpr.TypeVar, value any, ambient Mode) *Mismatch {
	switch {
	case len(v.Constraints) > 0:
		return e.checkConstrained(v, value)
	case v.Bound != nil:
		return e.checkBounded(v, value, effectiveMode(v, ambient))
	default:
		return e.checkUnbounded(v, value)
	}
}

// checkConstrained: the actual type must equal exactly one constraint
// member, invariantly, regardless of mode or per-variable flags. The first
// occurrence binds the variable to that member.
func (e *Env) checkConstrained(v typeexpr.TypeVar, value any) *Mismatch {
	if b, ok := e.bindings[v.Name]; ok {
		if Matches(value, b.typ, Invariant, NewEnv()) != nil {
			return newMismatch(VariableBindingConflict,
				fmt.Sprintf("%s (bound to %s)", v.Name, b.typ.String()),
				object.Decay(value).String())
		}
		return nil
	}
	for _, c := range v.Constraints {
		if Matches(value, c, Invariant, NewEnv()) == nil {
			e.record(v.Name, c, true)
			return nil
		}
	}
	return newMismatch(TypeMismatch, v.Describe(), object.Decay(value).String())
}

// checkBounded: the value must satisfy the bound under the variable's
// effective mode. The binding records the first concrete type seen for
// reporting; reuse is checked per the environment's rebind policy.
func (e *Env) checkBounded(v typeexpr.TypeVar, value any, eff Mode) *Mismatch {
	if b, ok := e.bindings[v.Name]; ok {
		var target typeexpr.Expr
		switch e.policy {
		case RebindAgainstFirst:
			target = b.typ
		default:
			target = v.Bound
		}
		if Matches(value, target, eff, NewEnv()) != nil {
			return newMismatch(VariableBindingConflict,
				fmt.Sprintf("%s (bound to %s)", v.Name, b.typ.String()),
				object.Decay(value).String())
		}
		return nil
	}
	if Matches(value, v.Bound, eff, NewEnv()) != nil {
		return newMismatch(TypeMismatch, v.Describe(), object.Decay(value).String())
	}
	e.record(v.Name, concreteType(value), false)
	return nil
}

// checkUnbounded: the first occurrence binds the value's exact runtime
// type; every later occurrence must match it by strict identity, in every
// mode. An unbounded variable guarantees "same type everywhere".
func (e *Env) checkUnbounded(v typeexpr.TypeVar, value any) *Mismatch {
	actual := concreteType(value)
	if b, ok := e.bindings[v.Name]; ok {
		if bs, isSimple := b.typ.(typeexpr.Simple); isSimple {
			if object.ClassOf(value) == bs.Class {
				return nil
			}
			return newMismatch(VariableBindingConflict,
				fmt.Sprintf("%s (bound to %s)", v.Name, b.typ.String()),
				actual.String())
		}
		if actual.String() != b.typ.String() {
			return newMismatch(VariableBindingConflict,
				fmt.Sprintf("%s (bound to %s)", v.Name, b.typ.String()),
				actual.String())
		}
		return nil
	}
	e.record(v.Name, actual, false)
	return nil
}

// concreteType is the exact runtime type recorded in a binding: the nominal
// class when the value has one, the decayed classification otherwise.
func concreteType(value any) typeexpr.Expr {
	if c := object.ClassOf(value); c != nil {
		return typeexpr.Simple{Class: c}
	}
	return object.Decay(value)
}
