package domain

// Convert clamps v to src and linearly rescales it onto dst. Both
// descriptors may be static tags or dynamic Domain values, in any
// combination.
//
// The rescale runs in float64 when either value type is floating and
// in 64-bit integer arithmetic otherwise, wide enough that neither the
// extent subtractions nor the offset-times-extent product can wrap for
// domains up to 32 bits. Integer division truncates toward zero. A
// degenerate source domain (min == max) divides by zero: integer
// conversions panic, floating ones produce NaN; callers must not pass
// one.
//
// When dst and src are the same descriptor the clamped value is
// returned as-is, with no rescale arithmetic.
//
// Full-width 64-bit integer domains exceed the converter's arithmetic
// and are only usable with Extent and as reified bounds.
func Convert[U, T Number](dst Range[U], v T, src Range[T]) U {
	bounded := clamp(v, src.Min(), src.Max())
	if any(dst) == any(src) {
		return U(bounded)
	}
	switch {
	case isFloat[T]() || isFloat[U]():
		se := float64(src.Max()) - float64(src.Min())
		de := float64(dst.Max()) - float64(dst.Min())
		scaled := (float64(bounded) - float64(src.Min())) * de
		return U(float64(dst.Min()) + scaled/se)
	case isSigned[T]() || isSigned[U]():
		// The extents and the clamped offset are all non-negative, so
		// the product is carried in uint64, which holds it even for
		// full-range 32-bit cross-sign pairs; the signed minimum is
		// added last.
		se := uint64(int64(src.Max()) - int64(src.Min()))
		de := uint64(int64(dst.Max()) - int64(dst.Min()))
		scaled := uint64(int64(bounded)-int64(src.Min())) * de
		return U(int64(dst.Min()) + int64(scaled/se))
	default:
		se := uint64(src.Max()) - uint64(src.Min())
		de := uint64(dst.Max()) - uint64(dst.Min())
		scaled := (uint64(bounded) - uint64(src.Min())) * de
		return U(uint64(dst.Min()) + scaled/se)
	}
}

func clamp[V Number](v, lo, hi V) V {
	return min(hi, max(lo, v))
}

// isFloat reports whether N is a floating-point type: 1/2 is nonzero
// only under floating division.
func isFloat[N Number]() bool {
	return N(1)/N(2) != 0
}

// isSigned reports whether N is a signed type: 0-1 wraps to the
// maximum for unsigned N.
func isSigned[N Number]() bool {
	var zero N
	return zero-1 < zero
}
