package typeexpr

// Class is a nominal runtime type: a concrete or abstract named type with an
// ordered list of base classes. Class identity is pointer identity; two
// classes with the same name are distinct types.
type Class struct {
	Name     string
	Bases    []*Class
	Abstract bool

	// rank places the class on the numeric widening chain
	// Bool < Int < Float < Complex. Negative for non-numeric classes.
	rank int
}

// Builtin concrete classes.
var (
	Bool    = &Class{Name: "Bool", rank: 0}
	Int     = &Class{Name: "Int", rank: 1}
	Float   = &Class{Name: "Float", rank: 2}
	Complex = &Class{Name: "Complex", rank: 3}
	Str     = &Class{Name: "Str", rank: -1}
	Bytes   = &Class{Name: "Bytes", rank: -1}
)

// Abstract numeric-tower classes. Each ranks with its canonical concrete
// representative (Integral with Int, Real with Float, Number with Complex)
// for widening comparisons only; they never equal their representative
// nominally. Rational carries Real's rank: the chain names no concrete
// representative between Int and Float.
var (
	Integral = &Class{Name: "Integral", Abstract: true, rank: 1}
	Rational = &Class{Name: "Rational", Abstract: true, rank: 2}
	Real     = &Class{Name: "Real", Abstract: true, rank: 2}
	Number   = &Class{Name: "Number", Abstract: true, rank: 3}
)

// NewClass creates a user-defined concrete class with the given bases.
func NewClass(name string, bases ...*Class) *Class {
	return &Class{Name: name, Bases: bases, rank: -1}
}

// NewAbstractClass creates a user-defined abstract class with the given bases.
func NewAbstractClass(name string, bases ...*Class) *Class {
	return &Class{Name: name, Bases: bases, Abstract: true, rank: -1}
}

func (c *Class) String() string { return c.Name }

// NumericRank returns the class's position on the widening chain.
// ok is false for non-numeric classes.
func (c *Class) NumericRank() (rank int, ok bool) {
	if c == nil || c.rank < 0 {
		return 0, false
	}
	return c.rank, true
}

// SubclassOf reports whether c is a strict nominal subclass of d,
// walking base classes transitively. A class is not a subclass of itself.
func (c *Class) SubclassOf(d *Class) bool {
	if c == nil || d == nil || c == d {
		return false
	}
	for _, base := range c.Bases {
		if base == d || base.SubclassOf(d) {
			return true
		}
	}
	return false
}
