// Package object defines the runtime value model the engine classifies:
// tuple, set and record values, nominal instances with optional generic
// bindings, and the classification of plain Go values onto the builtin
// classes.
package object

import (
	"fmt"
	"strings"

	"github.com/typeward/typeward/typeexpr"
)

// Tuple is a fixed, ordered sequence of values.
type Tuple []any

// Set is an unordered collection of unique values.
type Set map[any]bool

// NewSet builds a set from the given members.
func NewSet(members ...any) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = true
	}
	return s
}

// Record is an instance of a nominal record type. Values are positional,
// in field declaration order. Record values are tuple-shaped.
type Record struct {
	Type   *typeexpr.RecordType
	Values []any
}

// NewRecord builds a record instance, checking arity only. Field types are
// validated when the value meets a declaration, or at construction when
// built through a validated constructor.
func NewRecord(rt *typeexpr.RecordType, values ...any) (*Record, error) {
	if len(values) != len(rt.Fields) {
		return nil, fmt.Errorf("record %s takes %d values, got %d", rt.Name, len(rt.Fields), len(values))
	}
	return &Record{Type: rt, Values: values}, nil
}

// Field returns the value of the named field.
func (r *Record) Field(name string) (any, bool) {
	for i, f := range r.Type.Fields {
		if f.Name == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

func (r *Record) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%s(%s)", r.Type.Name, strings.Join(parts, ", "))
}

// Instance is a value of a nominal class. Binding is non-nil only when the
// instance was constructed through a parameterized generic class.
type Instance struct {
	Class   *typeexpr.Class
	Binding *typeexpr.GenericBinding
}

// NewInstance creates a plain instance of class c.
func NewInstance(c *typeexpr.Class) *Instance {
	return &Instance{Class: c}
}

// NewGenericInstance creates an instance of gc carrying the recorded
// parameter binding. params may be nil for an unparameterized instance.
func NewGenericInstance(gc *typeexpr.GenericClass, params ...typeexpr.Expr) *Instance {
	inst := &Instance{Class: gc.Runtime}
	if params != nil {
		inst.Binding = &typeexpr.GenericBinding{Base: gc, Params: params}
	}
	return inst
}

func (i *Instance) String() string {
	if i.Binding != nil {
		parts := make([]string, len(i.Binding.Params))
		for j, p := range i.Binding.Params {
			parts[j] = p.String()
		}
		return fmt.Sprintf("%s<%s>", i.Class.Name, strings.Join(parts, ", "))
	}
	return i.Class.Name
}

// Callable is implemented by values that expose their own declared
// parameter and return type descriptions. A nil slice entry or a nil return
// marks that slot as undeclared.
type Callable interface {
	DeclaredParams() []typeexpr.Expr
	DeclaredReturn() typeexpr.Expr
}
