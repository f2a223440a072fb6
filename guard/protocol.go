package guard

import (
	"fmt"
	"sync"

	"github.com/typeward/typeward/match"
	"github.com/typeward/typeward/typeexpr"
)

// Member declares one member of a structural protocol. A nil Type is
// inferred: an unconstrained Callable for methods, Any for data members.
type Member struct {
	Name   string
	Type   typeexpr.Expr
	Method bool
}

// ProtocolSpec names a structural contract and its members.
type ProtocolSpec struct {
	Name    string
	Members []Member
}

// Assertion is a reusable per-field guard built from the engine.
type Assertion struct {
	expr typeexpr.Expr
}

func (a *Assertion) String() string {
	return fmt.Sprintf("Field Guard for: %s", a.expr.String())
}

// Expr returns the type expression the assertion checks against.
func (a *Assertion) Expr() typeexpr.Expr { return a.expr }

// Check validates a field value under the active settings. Each check is
// its own validation pass.
func (a *Assertion) Check(name string, value any) error {
	cfg := Current()
	if !cfg.Enabled {
		return nil
	}
	if m := match.Matches(value, a.expr, cfg.Mode, match.NewEnv()); m != nil {
		return &RuntimeTypeError{Slots: []SlotError{{
			Name:     name,
			Expected: m.Expected,
			Actual:   m.Actual,
			Kind:     m.Kind,
			Value:    value,
		}}}
	}
	return nil
}

// Definition is a registered protocol: the mapping from member name to its
// field guard.
type Definition struct {
	ID     string
	Fields map[string]*Assertion
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Definition)
)

// Register builds a field guard for every member of the protocol and
// registers the definition under the protocol's name. Member types are
// normalized; an unrepresentable declaration fails the whole registration.
func Register(spec ProtocolSpec) (*Definition, error) {
	def := &Definition{ID: spec.Name, Fields: make(map[string]*Assertion, len(spec.Members))}
	for _, m := range spec.Members {
		expr := m.Type
		if expr == nil {
			if m.Method {
				expr = typeexpr.Callable{AnyParams: true}
			} else {
				expr = typeexpr.Any{}
			}
		}
		normalized, err := typeexpr.Normalize(expr)
		if err != nil {
			return nil, fmt.Errorf("protocol %s, member %s: %w", spec.Name, m.Name, err)
		}
		def.Fields[m.Name] = &Assertion{expr: normalized}
	}

	registryMu.Lock()
	registry[spec.Name] = def
	registryMu.Unlock()
	return def, nil
}

// IsRegistered reports whether a protocol name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Lookup returns a registered protocol definition.
func Lookup(name string) (*Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registry[name]
	return def, ok
}

// DeregisterAll clears the registry, but only when forced.
func DeregisterAll(force bool) {
	if !force {
		return
	}
	registryMu.Lock()
	registry = make(map[string]*Definition)
	registryMu.Unlock()
}
