package typeexpr

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Field is one named, typed slot of a record type.
type Field struct {
	Name string
	Type Expr
}

// RecordType describes a nominal record (named-tuple) type. Identity is the
// sole basis for nominal equality: two record types with the same name and
// shape are still distinct types.
type RecordType struct {
	Name     string
	Fields   []Field
	Identity uuid.UUID
}

// NewRecordType creates a record type with a fresh identity token.
func NewRecordType(name string, fields ...Field) *RecordType {
	return &RecordType{Name: name, Fields: fields, Identity: uuid.New()}
}

func (rt *RecordType) String() string {
	parts := make([]string, len(rt.Fields))
	for i, f := range rt.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type.String())
	}
	return fmt.Sprintf("%s(%s)", rt.Name, strings.Join(parts, ", "))
}

// Expr returns the type expression matching instances of this record type.
func (rt *RecordType) Expr() Record { return Record{Type: rt} }

// GenericClass is a nominally identified generic class. Instances built
// through a parameterization of it carry a recorded binding of the chosen
// parameters.
type GenericClass struct {
	Name     string
	Identity uuid.UUID

	// Runtime is the nominal class of the generic's instances.
	Runtime *Class
}

// NewGenericClass creates a generic class with a fresh identity token.
func NewGenericClass(name string, bases ...*Class) *GenericClass {
	return &GenericClass{Name: name, Identity: uuid.New(), Runtime: NewClass(name, bases...)}
}

// Of returns the expression expecting an instance parameterized over params.
func (gc *GenericClass) Of(params ...Expr) Generic {
	if params == nil {
		params = []Expr{}
	}
	return Generic{Class: gc, Params: params}
}

// Bare returns the expression expecting an unparameterized instance.
func (gc *GenericClass) Bare() Generic { return Generic{Class: gc} }

// GenericBinding records, on an instance, which generic class it was built
// through and with which parameters.
type GenericBinding struct {
	Base   *GenericClass
	Params []Expr
}
