package object

import (
	"reflect"

	"github.com/typeward/typeward/typeexpr"
)

// ClassOf returns the nominal class of a value, or nil for values that are
// not nominally typed (tuples, containers, records, callables, nil).
func ClassOf(v any) *typeexpr.Class {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return typeexpr.Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return typeexpr.Int
	case float32, float64:
		return typeexpr.Float
	case complex64, complex128:
		return typeexpr.Complex
	case string:
		return typeexpr.Str
	case []byte:
		return typeexpr.Bytes
	case *Instance:
		return t.Class
	default:
		return nil
	}
}

// TupleElems returns the elements of a tuple-shaped value. Record instances
// are tuple-shaped.
func TupleElems(v any) ([]any, bool) {
	switch t := v.(type) {
	case Tuple:
		return t, true
	case *Record:
		return t.Values, true
	default:
		return nil, false
	}
}

// ListElems returns the elements of a list-category value: any Go slice or
// array except byte slices, tuples and sets.
func ListElems(v any) ([]any, bool) {
	switch v.(type) {
	case nil, Tuple, Set, []byte, *Record:
		return nil, false
	}
	if elems, ok := v.([]any); ok {
		return elems, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// SetElems returns the members of a set-category value.
func SetElems(v any) ([]any, bool) {
	s, ok := v.(Set)
	if !ok {
		return nil, false
	}
	elems := make([]any, 0, len(s))
	for m := range s {
		elems = append(elems, m)
	}
	return elems, true
}

// DictItems returns the key/value pairs of a mapping-category value:
// any Go map except Set.
func DictItems(v any) (keys, vals []any, ok bool) {
	switch v.(type) {
	case nil, Set:
		return nil, nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, nil, false
	}
	keys = make([]any, 0, rv.Len())
	vals = make([]any, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().Interface())
		vals = append(vals, iter.Value().Interface())
	}
	return keys, vals, true
}

// IsCallable reports whether a value exposes call capability: either a
// signed Callable or a plain Go function.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Callable); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}
