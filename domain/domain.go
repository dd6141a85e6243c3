// Package domain converts values between bounded numeric ranges.
//
// A domain is a range [min, max] over a fixed-width arithmetic type.
// Static domains have bounds fixed by their type identity (Uint8, Unit,
// UintBits{12}, ...); dynamic domains carry their bounds as runtime
// values (Make, Of). Convert clamps a value to its source domain and
// linearly rescales it onto a target domain; any combination of static
// and dynamic descriptors works on either side.
package domain

import "golang.org/x/exp/constraints"

// Number is the set of value types a domain can constrain.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range describes a bounded domain over value type V. Both static tags
// and dynamic Domain values implement it. Implementations must keep
// Min() <= Max(); a descriptor violating that yields undefined
// conversions.
type Range[V Number] interface {
	Min() V
	Max() V
}

// Domain is a range whose bounds are ordinary runtime values.
// Immutable after construction; pass by value.
type Domain[V Number] struct {
	min, max V
}

// Make returns the dynamic domain [min, max].
func Make[V Number](min, max V) Domain[V] {
	return Domain[V]{min: min, max: max}
}

// Of reifies any range, typically a static tag, into a dynamic domain
// with the same bounds.
func Of[V Number](r Range[V]) Domain[V] {
	return Domain[V]{min: r.Min(), max: r.Max()}
}

// Min returns the lower bound.
func (d Domain[V]) Min() V { return d.min }

// Max returns the upper bound.
func (d Domain[V]) Max() V { return d.max }

// Extent returns max-min of r, computed in E. E must be a type whose
// range strictly contains the difference, so that the subtraction
// cannot wrap even when V is unsigned; choosing a too-narrow E is a
// caller defect. The value type V is inferred, E is named at the call
// site: Extent[uint64](Uint8{}).
func Extent[E Number, V Number](r Range[V]) E {
	return E(r.Max()) - E(r.Min())
}
