package domain

import "math"

// Full native ranges of the fixed-width integer types. The extent of
// the 64-bit domains only fits unsigned 64-bit arithmetic; Convert
// accounts for that, Extent callers must pick E accordingly.

// Uint8 is the full uint8 range [0, 255].
type Uint8 struct{}

func (Uint8) Min() uint8 { return 0 }
func (Uint8) Max() uint8 { return math.MaxUint8 }

// Int8 is the full int8 range [-128, 127].
type Int8 struct{}

func (Int8) Min() int8 { return math.MinInt8 }
func (Int8) Max() int8 { return math.MaxInt8 }

// Uint16 is the full uint16 range [0, 65535].
type Uint16 struct{}

func (Uint16) Min() uint16 { return 0 }
func (Uint16) Max() uint16 { return math.MaxUint16 }

// Int16 is the full int16 range [-32768, 32767].
type Int16 struct{}

func (Int16) Min() int16 { return math.MinInt16 }
func (Int16) Max() int16 { return math.MaxInt16 }

// Uint32 is the full uint32 range.
type Uint32 struct{}

func (Uint32) Min() uint32 { return 0 }
func (Uint32) Max() uint32 { return math.MaxUint32 }

// Int32 is the full int32 range.
type Int32 struct{}

func (Int32) Min() int32 { return math.MinInt32 }
func (Int32) Max() int32 { return math.MaxInt32 }

// Uint64 is the full uint64 range.
type Uint64 struct{}

func (Uint64) Min() uint64 { return 0 }
func (Uint64) Max() uint64 { return math.MaxUint64 }

// Int64 is the full int64 range.
type Int64 struct{}

func (Int64) Min() int64 { return math.MinInt64 }
func (Int64) Max() int64 { return math.MaxInt64 }

// Float32 is the full finite float32 range [-MaxFloat32, MaxFloat32].
type Float32 struct{}

func (Float32) Min() float32 { return -math.MaxFloat32 }
func (Float32) Max() float32 { return math.MaxFloat32 }

// Float64 is the full finite float64 range [-MaxFloat64, MaxFloat64].
type Float64 struct{}

func (Float64) Min() float64 { return -math.MaxFloat64 }
func (Float64) Max() float64 { return math.MaxFloat64 }

// UintBits is the unsigned Bits-wide domain [0, 2^Bits-1] over uint32.
// Bits must be in 1..32.
//
// A 12-bit ADC reading maps onto [0, 1] with
// Convert(Unit{}, v, UintBits{Bits: 12}).
type UintBits struct {
	Bits uint
}

func (UintBits) Min() uint32 { return 0 }

func (d UintBits) Max() uint32 {
	return uint32(uint64(1)<<d.Bits - 1)
}

// IntBits is the signed Bits-wide domain over int32, symmetric:
// [-(2^(Bits-1)-1), 2^(Bits-1)-1]. One unit narrower on the negative
// side than two's complement; the symmetric extent keeps rescaling
// between signed widths exact. Bits must be in 2..32.
type IntBits struct {
	Bits uint
}

func (d IntBits) Min() int32 { return -d.Max() }

func (d IntBits) Max() int32 {
	return int32(uint64(1)<<(d.Bits-1) - 1)
}

// Unit is the float32 domain [0, 1].
type Unit struct{}

func (Unit) Min() float32 { return 0 }
func (Unit) Max() float32 { return 1 }

// Bipolar is the float32 domain [-1, 1].
type Bipolar struct{}

func (Bipolar) Min() float32 { return -1 }
func (Bipolar) Max() float32 { return 1 }

// Scaled applies the rational multiplier Num/Den uniformly to both
// bounds of Base. The arithmetic runs in V (num * bound / den), so
// integer bases truncate the way the value type does.
type Scaled[V Number] struct {
	Base Range[V]
	Num  int64
	Den  int64
}

func (s Scaled[V]) Min() V { return V(s.Num) * s.Base.Min() / V(s.Den) }
func (s Scaled[V]) Max() V { return V(s.Num) * s.Base.Max() / V(s.Den) }

// HalfUnit is the float32 domain [0, 0.5]: Unit scaled by 1/2.
var HalfUnit = Scaled[float32]{Base: Unit{}, Num: 1, Den: 2}
