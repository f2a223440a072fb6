package match

import "fmt"

// Kind classifies a mismatch.
type Kind int

const (
	// TypeMismatch: a value fails its declared node.
	TypeMismatch Kind = iota
	// ArityMismatch: a tuple or record length differs.
	ArityMismatch
	// IdentityMismatch: a record or generic nominal identity differs.
	IdentityMismatch
	// VariableBindingConflict: a type variable is reused with an
	// incompatible type within one call.
	VariableBindingConflict
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case ArityMismatch:
		return "arity mismatch"
	case IdentityMismatch:
		return "identity mismatch"
	case VariableBindingConflict:
		return "variable binding conflict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mismatch describes one failed check: the declared type's canonical
// rendering and the offending value's decayed classification. A nil
// *Mismatch means Ok.
type Mismatch struct {
	Kind     Kind
	Expected string
	Actual   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("value was not of type %s. Actual type was %s.", m.Expected, m.Actual)
}

func newMismatch(kind Kind, expected, actual string) *Mismatch {
	return &Mismatch{Kind: kind, Expected: expected, Actual: actual}
}
