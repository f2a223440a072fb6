package match

import "github.com/typeward/typeward/typeexpr"

// The rank relation combines nominal subclassing with the numeric widening
// chain Bool < Int < Float < Complex. Abstract tower classes rank with
// their canonical concrete representative for widening only, so the
// narrowing direction treats equal rank as "narrow enough" while the
// widening direction demands a strictly greater rank. That keeps covariant
// and contravariant acceptance sets disjoint outside exact identity.

// narrowerEq reports whether t is narrower than d: a strict nominal
// subclass, or a numeric type of rank at most d's.
func narrowerEq(t, d *typeexpr.Class) bool {
	if t == d {
		return false
	}
	if t.SubclassOf(d) {
		return true
	}
	tr, tok := t.NumericRank()
	dr, dok := d.NumericRank()
	return tok && dok && tr <= dr
}

// strictlyNarrower reports whether d is strictly narrower than t: a strict
// nominal subclass, or a numeric type of strictly lower rank.
func strictlyNarrower(d, t *typeexpr.Class) bool {
	if t == d {
		return false
	}
	if d.SubclassOf(t) {
		return true
	}
	dr, dok := d.NumericRank()
	tr, tok := t.NumericRank()
	return dok && tok && dr < tr
}

// rankMatches applies the variance mode table to actual type t against
// declared type d.
func rankMatches(t, d *typeexpr.Class, mode Mode) bool {
	if t == nil || d == nil {
		return false
	}
	switch mode {
	case Invariant:
		return t == d
	case Covariant:
		return t == d || narrowerEq(t, d)
	case Contravariant:
		return t == d || strictlyNarrower(d, t)
	case Bivariant:
		return t == d || narrowerEq(t, d) || strictlyNarrower(d, t)
	default:
		return false
	}
}
