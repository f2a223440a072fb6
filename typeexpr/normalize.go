package typeexpr

import (
	"fmt"
	"sort"
)

// UnsupportedDescriptionError indicates a type description the engine cannot
// represent. It is raised at normalization time and is not recoverable.
type UnsupportedDescriptionError struct {
	Reason string
}

func (e *UnsupportedDescriptionError) Error() string {
	return fmt.Sprintf("unsupported type description: %s", e.Reason)
}

func NewUnsupportedDescriptionError(format string, args ...any) *UnsupportedDescriptionError {
	return &UnsupportedDescriptionError{Reason: fmt.Sprintf(format, args...)}
}

// maxDepth bounds normalization recursion. Expression trees are finite by
// construction; exceeding the bound means a self-referential description.
const maxDepth = 1000

// NewUnion creates a normalized union from members: nested unions are
// flattened, duplicates removed and members sorted by rendering. A union of
// one member collapses to that member.
func NewUnion(members ...Expr) Expr {
	flat := make([]Expr, 0, len(members))
	for _, m := range members {
		if u, ok := m.(Union); ok {
			flat = append(flat, u.Members...)
		} else {
			flat = append(flat, m)
		}
	}

	seen := make(map[string]bool, len(flat))
	unique := make([]Expr, 0, len(flat))
	for _, m := range flat {
		s := m.String()
		if !seen[s] {
			seen[s] = true
			unique = append(unique, m)
		}
	}

	if len(unique) == 1 {
		return unique[0]
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	return Union{Members: unique}
}

// Optional is shorthand for NewUnion(e, None{}).
func Optional(e Expr) Expr { return NewUnion(e, None{}) }

// Normalize validates a declared expression and returns its canonical form.
// It is idempotent: normalizing an already-canonical expression returns an
// expression with the identical rendering. It fails with
// UnsupportedDescriptionError for descriptions the engine cannot represent.
func Normalize(e Expr) (Expr, error) {
	return normalize(e, 0)
}

func normalize(e Expr, depth int) (Expr, error) {
	if depth > maxDepth {
		return nil, NewUnsupportedDescriptionError("type description exceeds depth %d (self-referential?)", maxDepth)
	}
	if e == nil {
		return nil, NewUnsupportedDescriptionError("nil type description")
	}

	switch t := e.(type) {
	case Any, None, TupleAny:
		return e, nil

	case Simple:
		if t.Class == nil {
			return nil, NewUnsupportedDescriptionError("Simple with nil class")
		}
		return t, nil

	case Union:
		if len(t.Members) == 0 {
			return nil, NewUnsupportedDescriptionError("empty union")
		}
		members := make([]Expr, len(t.Members))
		for i, m := range t.Members {
			nm, err := normalize(m, depth+1)
			if err != nil {
				return nil, err
			}
			members[i] = nm
		}
		return NewUnion(members...), nil

	case TupleFixed:
		elems := make([]Expr, len(t.Elements))
		for i, el := range t.Elements {
			ne, err := normalize(el, depth+1)
			if err != nil {
				return nil, err
			}
			elems[i] = ne
		}
		return TupleFixed{Elements: elems}, nil

	case TupleVariadic:
		ne, err := normalize(t.Element, depth+1)
		if err != nil {
			return nil, err
		}
		return TupleVariadic{Element: ne}, nil

	case Container:
		if t.Unrestricted() {
			return Container{Kind: t.Kind}, nil
		}
		if t.Kind == DictKind {
			if t.Key == nil || t.Val == nil {
				return nil, NewUnsupportedDescriptionError("Dict with only one of key/value restricted")
			}
			nk, err := normalize(t.Key, depth+1)
			if err != nil {
				return nil, err
			}
			nv, err := normalize(t.Val, depth+1)
			if err != nil {
				return nil, err
			}
			return Container{Kind: DictKind, Key: nk, Val: nv}, nil
		}
		ne, err := normalize(t.Elem, depth+1)
		if err != nil {
			return nil, err
		}
		return Container{Kind: t.Kind, Elem: ne}, nil

	case Record:
		if t.Type == nil {
			return nil, NewUnsupportedDescriptionError("Record with nil type")
		}
		for _, f := range t.Type.Fields {
			if _, err := normalize(f.Type, depth+1); err != nil {
				return nil, err
			}
		}
		return t, nil

	case Generic:
		if t.Class == nil {
			return nil, NewUnsupportedDescriptionError("Generic with nil class")
		}
		if t.Params == nil {
			return t, nil
		}
		params := make([]Expr, len(t.Params))
		for i, p := range t.Params {
			np, err := normalize(p, depth+1)
			if err != nil {
				return nil, err
			}
			params[i] = np
		}
		return Generic{Class: t.Class, Params: params}, nil

	case TypeVar:
		if len(t.Constraints) > 0 && t.Bound != nil {
			return nil, NewUnsupportedDescriptionError("type variable %s has both constraints and a bound", t.Name)
		}
		if t.Bound != nil {
			nb, err := normalize(t.Bound, depth+1)
			if err != nil {
				return nil, err
			}
			t.Bound = nb
		}
		if len(t.Constraints) == 1 {
			return nil, NewUnsupportedDescriptionError("type variable %s has a single constraint", t.Name)
		}
		if len(t.Constraints) > 0 {
			cs := make([]Expr, len(t.Constraints))
			for i, c := range t.Constraints {
				nc, err := normalize(c, depth+1)
				if err != nil {
					return nil, err
				}
				cs[i] = nc
			}
			t.Constraints = cs
		}
		return t, nil

	case Callable:
		if t.AnyParams {
			nc := Callable{AnyParams: true}
			if t.Return != nil {
				nr, err := normalize(t.Return, depth+1)
				if err != nil {
					return nil, err
				}
				nc.Return = nr
			}
			return nc, nil
		}
		params := make([]Expr, len(t.Params))
		for i, p := range t.Params {
			if p == nil {
				continue // unconstrained slot
			}
			np, err := normalize(p, depth+1)
			if err != nil {
				return nil, err
			}
			params[i] = np
		}
		var ret Expr
		if t.Return != nil {
			nr, err := normalize(t.Return, depth+1)
			if err != nil {
				return nil, err
			}
			ret = nr
		}
		return Callable{Params: params, Return: ret}, nil

	default:
		return nil, NewUnsupportedDescriptionError("unknown expression kind %T", e)
	}
}
