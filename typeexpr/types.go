// Package typeexpr defines the canonical tree representation of declared
// types: a closed tagged union over which all matching logic is exhaustive.
// Expressions are immutable once built and render to a deterministic
// canonical string.
package typeexpr

import (
	"fmt"
	"strings"
)

// Expr is the interface for all type expressions.
type Expr interface {
	String() string
	exprNode()
}

// Any matches everything and binds nothing.
type Any struct{}

func (Any) String() string { return "Any" }
func (Any) exprNode()      {}

// None matches only the null value.
type None struct{}

func (None) String() string { return "None" }
func (None) exprNode()      {}

// Simple is a concrete or abstract nominal type.
type Simple struct {
	Class *Class
}

func (s Simple) String() string {
	if s.Class == nil {
		return "<nil class>"
	}
	return s.Class.Name
}
func (Simple) exprNode() {}

// Union matches if any member matches. Members are kept normalized:
// flattened, deduplicated and sorted by rendering, so structurally equal
// unions render identically regardless of declaration order.
type Union struct {
	Members []Expr
}

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}
func (Union) exprNode() {}

// TupleFixed matches a tuple-shaped value of exactly this arity,
// position-wise.
type TupleFixed struct {
	Elements []Expr
}

func (t TupleFixed) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
func (TupleFixed) exprNode() {}

// TupleVariadic matches a tuple-shaped value of any arity, including zero,
// where every element matches Element.
type TupleVariadic struct {
	Element Expr
}

func (t TupleVariadic) String() string {
	return fmt.Sprintf("(%s, ...)", t.Element.String())
}
func (TupleVariadic) exprNode() {}

// TupleAny matches any tuple-shaped value regardless of contents.
type TupleAny struct{}

func (TupleAny) String() string { return "Tuple" }
func (TupleAny) exprNode()      {}

// ContainerKind distinguishes the runtime categories a Container accepts.
type ContainerKind int

const (
	ListKind ContainerKind = iota
	SetKind
	DictKind
)

func (k ContainerKind) String() string {
	switch k {
	case ListKind:
		return "List"
	case SetKind:
		return "Set"
	case DictKind:
		return "Dict"
	default:
		return fmt.Sprintf("ContainerKind(%d)", int(k))
	}
}

// Container is a list, set or mapping type. A container with no element
// expressions is unrestricted: it accepts any contents of the right runtime
// category. Dict containers use Key and Value; List and Set use Elem.
type Container struct {
	Kind ContainerKind
	Elem Expr // List/Set element; nil for unrestricted
	Key  Expr // Dict key; nil for unrestricted
	Val  Expr // Dict value; nil for unrestricted
}

// Unrestricted reports whether the container accepts any contents.
func (c Container) Unrestricted() bool {
	if c.Kind == DictKind {
		return c.Key == nil && c.Val == nil
	}
	return c.Elem == nil
}

func (c Container) String() string {
	if c.Unrestricted() {
		return c.Kind.String()
	}
	if c.Kind == DictKind {
		return fmt.Sprintf("Dict<%s, %s>", c.Key.String(), c.Val.String())
	}
	return fmt.Sprintf("%s<%s>", c.Kind.String(), c.Elem.String())
}
func (Container) exprNode() {}

// Record is a nominal record (named-tuple) type expression.
type Record struct {
	Type *RecordType
}

func (r Record) String() string {
	if r.Type == nil {
		return "<nil record>"
	}
	return r.Type.String()
}
func (Record) exprNode() {}

// Generic is a nominally identified generic class, optionally parameterized.
// Params == nil is the bare form: it matches only instances that carry no
// recorded parameter binding.
type Generic struct {
	Class  *GenericClass
	Params []Expr
}

func (g Generic) String() string {
	if g.Class == nil {
		return "<nil generic>"
	}
	if g.Params == nil {
		return g.Class.Name
	}
	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s<%s>", g.Class.Name, strings.Join(parts, ", "))
}
func (Generic) exprNode() {}

// TypeVar is a type variable. Constraints and Bound are mutually exclusive.
// Covariant/Contravariant override the ambient mode for this variable's own
// checks: both false defers to the ambient mode, both true is bivariant.
type TypeVar struct {
	Name          string
	Constraints   []Expr
	Bound         Expr
	Covariant     bool
	Contravariant bool
}

func (v TypeVar) String() string { return v.Name }
func (TypeVar) exprNode()        {}

// Describe renders the variable together with its bound or constraints,
// for diagnostics.
func (v TypeVar) Describe() string {
	if v.Bound != nil {
		return fmt.Sprintf("%s (bound: %s)", v.Name, v.Bound.String())
	}
	if len(v.Constraints) > 0 {
		parts := make([]string, len(v.Constraints))
		for i, c := range v.Constraints {
			parts[i] = c.String()
		}
		return fmt.Sprintf("%s (constraints: %s)", v.Name, strings.Join(parts, ", "))
	}
	return v.Name
}

// Callable is a callable type. AnyParams marks the unconstrained parameter
// list. A nil Return leaves the candidate's return unconstrained; a nil
// entry in Params leaves that parameter unconstrained.
type Callable struct {
	Params    []Expr
	Return    Expr
	AnyParams bool
}

func (c Callable) String() string {
	if c.AnyParams {
		if c.Return == nil {
			return "Callable"
		}
		return fmt.Sprintf("(...) -> %s", c.Return.String())
	}
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		if p == nil {
			parts[i] = "_"
			continue
		}
		parts[i] = p.String()
	}
	ret := "Any"
	if c.Return != nil {
		ret = c.Return.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), ret)
}
func (Callable) exprNode() {}
