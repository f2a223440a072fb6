package object

import (
	"reflect"

	"github.com/typeward/typeward/typeexpr"
)

// Decay classifies a runtime value for diagnostics: the canonical type
// expression a failed value is reported as. Containers decay element-wise,
// with element types collapsed into a normalized union, so the rendering is
// deterministic for a given value.
func Decay(v any) typeexpr.Expr {
	if v == nil {
		return typeexpr.None{}
	}

	if inst, ok := v.(*Instance); ok {
		if inst.Binding != nil {
			return typeexpr.Generic{Class: inst.Binding.Base, Params: inst.Binding.Params}
		}
		return typeexpr.Simple{Class: inst.Class}
	}

	if c := ClassOf(v); c != nil {
		return typeexpr.Simple{Class: c}
	}

	if rec, ok := v.(*Record); ok {
		return typeexpr.Record{Type: rec.Type}
	}

	if elems, ok := TupleElems(v); ok {
		decayed := make([]typeexpr.Expr, len(elems))
		for i, e := range elems {
			decayed[i] = Decay(e)
		}
		return typeexpr.TupleFixed{Elements: decayed}
	}

	if elems, ok := ListElems(v); ok {
		return decayContainer(typeexpr.ListKind, elems)
	}
	if elems, ok := SetElems(v); ok {
		return decayContainer(typeexpr.SetKind, elems)
	}
	if keys, vals, ok := DictItems(v); ok {
		if len(keys) == 0 {
			return typeexpr.Container{Kind: typeexpr.DictKind}
		}
		return typeexpr.Container{
			Kind: typeexpr.DictKind,
			Key:  decayUnion(keys),
			Val:  decayUnion(vals),
		}
	}

	if sc, ok := v.(Callable); ok {
		params := sc.DeclaredParams()
		if params == nil {
			return typeexpr.Callable{AnyParams: true, Return: sc.DeclaredReturn()}
		}
		return typeexpr.Callable{Params: params, Return: sc.DeclaredReturn()}
	}
	if IsCallable(v) {
		return typeexpr.Callable{AnyParams: true}
	}

	// Foreign Go value: synthesize a class for its reflected type name.
	// Such classes serve rendering only and never match nominally.
	return typeexpr.Simple{Class: typeexpr.NewClass(reflect.TypeOf(v).String())}
}

func decayContainer(kind typeexpr.ContainerKind, elems []any) typeexpr.Expr {
	if len(elems) == 0 {
		return typeexpr.Container{Kind: kind}
	}
	return typeexpr.Container{Kind: kind, Elem: decayUnion(elems)}
}

func decayUnion(values []any) typeexpr.Expr {
	decayed := make([]typeexpr.Expr, len(values))
	for i, v := range values {
		decayed[i] = Decay(v)
	}
	return typeexpr.NewUnion(decayed...)
}
