package guard

import (
	"fmt"

	"github.com/typeward/typeward/match"
	"github.com/typeward/typeward/object"
	"github.com/typeward/typeward/typeexpr"
)

// Validation is the per-call validation pass. It reads the configuration
// once at creation and carries the call's binding environment, so a type
// variable used by several slots resolves consistently. Collect every slot,
// then ask Err for the aggregated result; mismatches never short-circuit.
type Validation struct {
	enabled bool
	mode    match.Mode
	env     *match.Env
	slots   []SlotError
}

// Begin starts a validation pass under the currently active settings.
func Begin() *Validation {
	cfg := Current()
	return &Validation{enabled: cfg.Enabled, mode: cfg.Mode, env: match.NewEnv()}
}

// Argument validates one named argument slot. A nil type expression leaves
// the slot unconstrained.
func (v *Validation) Argument(name string, t typeexpr.Expr, value any) {
	if !v.enabled || t == nil {
		return
	}
	if m := match.Matches(value, t, v.mode, v.env); m != nil {
		v.slots = append(v.slots, SlotError{
			Name:     name,
			Expected: m.Expected,
			Actual:   m.Actual,
			Kind:     m.Kind,
			Value:    value,
		})
	}
}

// Return validates the return slot.
func (v *Validation) Return(t typeexpr.Expr, value any) {
	if !v.enabled || t == nil {
		return
	}
	if m := match.Matches(value, t, v.mode, v.env); m != nil {
		v.slots = append(v.slots, SlotError{
			Return:   true,
			Expected: m.Expected,
			Actual:   m.Actual,
			Kind:     m.Kind,
			Value:    value,
		})
	}
}

// Err returns the aggregated error for all mismatches collected so far, or
// nil when every slot matched.
func (v *Validation) Err() error {
	if len(v.slots) == 0 {
		return nil
	}
	return &RuntimeTypeError{Slots: v.slots}
}

// Slot pairs a slot name and declared type with a value, for one-shot
// validation of an already-extracted call.
type Slot struct {
	Name  string
	Type  typeexpr.Expr
	Value any
}

// Validate checks the ordered argument slots and an optional return slot in
// one pass sharing one binding environment.
func Validate(args []Slot, ret *Slot) error {
	v := Begin()
	for _, a := range args {
		v.Argument(a.Name, a.Type, a.Value)
	}
	if ret != nil {
		v.Return(ret.Type, ret.Value)
	}
	return v.Err()
}

// Param is a declared parameter of a guarded function. A nil Type is an
// unconstrained parameter.
type Param struct {
	Name string
	Type typeexpr.Expr
}

// Signature is the declared shape of a guarded function. A nil Return
// leaves the return unconstrained.
type Signature struct {
	Params []Param
	Return typeexpr.Expr
}

// NewSignature normalizes a declared signature. It fails with
// UnsupportedDescriptionError when a declaration cannot be represented.
func NewSignature(ret typeexpr.Expr, params ...Param) (*Signature, error) {
	sig := &Signature{Params: make([]Param, len(params))}
	for i, p := range params {
		np := Param{Name: p.Name}
		if p.Type != nil {
			t, err := typeexpr.Normalize(p.Type)
			if err != nil {
				return nil, err
			}
			np.Type = t
		}
		sig.Params[i] = np
	}
	if ret != nil {
		r, err := typeexpr.Normalize(ret)
		if err != nil {
			return nil, err
		}
		sig.Return = r
	}
	return sig, nil
}

// MustSignature is NewSignature for declarations known valid at build time.
func MustSignature(ret typeexpr.Expr, params ...Param) *Signature {
	sig, err := NewSignature(ret, params...)
	if err != nil {
		panic(err)
	}
	return sig
}

// Func wraps a callable with its declared signature: the decorator
// analogue. Arguments are validated before the wrapped function runs, the
// return value after, both within one binding environment. A *Func exposes
// its own declaration, so guarded functions passed as arguments participate
// in callable signature matching.
type Func struct {
	sig  *Signature
	impl func(args ...any) any
}

// Wrap guards impl with the declared signature.
func Wrap(sig *Signature, impl func(args ...any) any) *Func {
	return &Func{sig: sig, impl: impl}
}

// Call validates the arguments, runs the wrapped function, and validates
// its return value.
func (f *Func) Call(args ...any) (any, error) {
	if len(args) != len(f.sig.Params) {
		return nil, fmt.Errorf("call takes %d arguments, got %d", len(f.sig.Params), len(args))
	}

	v := Begin()
	for i, p := range f.sig.Params {
		v.Argument(p.Name, p.Type, args[i])
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	out := f.impl(args...)

	v.Return(f.sig.Return, out)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeclaredParams implements object.Callable.
func (f *Func) DeclaredParams() []typeexpr.Expr {
	params := make([]typeexpr.Expr, len(f.sig.Params))
	for i, p := range f.sig.Params {
		params[i] = p.Type
	}
	return params
}

// DeclaredReturn implements object.Callable.
func (f *Func) DeclaredReturn() typeexpr.Expr { return f.sig.Return }

// NewRecord builds a record instance through its declared type. Field values
// are validated invariantly whatever the ambient mode, matching how record
// fields are checked when the instance later meets a declaration.
func NewRecord(rt *typeexpr.RecordType, values ...any) (*object.Record, error) {
	rec, err := object.NewRecord(rt, values...)
	if err != nil {
		return nil, err
	}
	cfg := Current()
	v := &Validation{enabled: cfg.Enabled, mode: match.Invariant, env: match.NewEnv()}
	for i, f := range rt.Fields {
		v.Argument(f.Name, f.Type, values[i])
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
