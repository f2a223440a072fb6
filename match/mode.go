// Package match implements the variance-aware comparator: it decides whether
// a runtime value satisfies a type expression under one of four variance
// modes, binding type variables consistently across a single validation pass.
package match

import "fmt"

// Mode is the variance policy governing subtype acceptance direction.
type Mode int

const (
	Invariant Mode = iota
	Covariant
	Contravariant
	Bivariant
)

func (m Mode) String() string {
	switch m {
	case Invariant:
		return "invariant"
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	case Bivariant:
		return "bivariant"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Reversed returns the mode used in contravariant positions, such as
// callable parameters.
func (m Mode) Reversed() Mode {
	switch m {
	case Covariant:
		return Contravariant
	case Contravariant:
		return Covariant
	default:
		return m
	}
}

// ParseMode parses a mode name as it appears in configuration files.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "invariant":
		return Invariant, nil
	case "covariant":
		return Covariant, nil
	case "contravariant":
		return Contravariant, nil
	case "bivariant":
		return Bivariant, nil
	default:
		return Invariant, fmt.Errorf("unknown variance mode %q", s)
	}
}
