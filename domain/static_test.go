package domain

import (
	"math"
	"testing"
)

func TestFullRangeBounds(t *testing.T) {
	u8, i8 := Uint8{}, Int8{}
	if u8.Min() != 0 || u8.Max() != 255 {
		t.Errorf("uint8 bounds: got [%d,%d]", u8.Min(), u8.Max())
	}
	if i8.Min() != -128 || i8.Max() != 127 {
		t.Errorf("int8 bounds: got [%d,%d]", i8.Min(), i8.Max())
	}
	u16, i16 := Uint16{}, Int16{}
	if u16.Max() != math.MaxUint16 || i16.Min() != math.MinInt16 {
		t.Errorf("16-bit bounds wrong")
	}
	u32, i32 := Uint32{}, Int32{}
	if u32.Max() != math.MaxUint32 || i32.Min() != math.MinInt32 {
		t.Errorf("32-bit bounds wrong")
	}
	u64, i64 := Uint64{}, Int64{}
	if u64.Max() != math.MaxUint64 || i64.Min() != math.MinInt64 {
		t.Errorf("64-bit bounds wrong")
	}
	f32, f64 := Float32{}, Float64{}
	if f32.Min() != -math.MaxFloat32 || f32.Max() != math.MaxFloat32 {
		t.Errorf("float32 bounds wrong")
	}
	if f64.Min() != -math.MaxFloat64 || f64.Max() != math.MaxFloat64 {
		t.Errorf("float64 bounds wrong")
	}
}

func TestUintBitsBounds(t *testing.T) {
	cases := []struct {
		bits uint
		max  uint32
	}{
		{1, 1},
		{7, 127},
		{8, 255},
		{12, 4095},
		{16, 65535},
		{24, 16777215},
		{32, math.MaxUint32},
	}
	for _, c := range cases {
		d := UintBits{Bits: c.bits}
		if d.Min() != 0 {
			t.Errorf("uint%d min: got %d, want 0", c.bits, d.Min())
		}
		if d.Max() != c.max {
			t.Errorf("uint%d max: got %d, want %d", c.bits, d.Max(), c.max)
		}
	}
}

func TestIntBitsBoundsAreSymmetric(t *testing.T) {
	cases := []struct {
		bits uint
		max  int32
	}{
		{2, 1},
		{8, 127},
		{12, 2047},
		{16, 32767},
		{24, 8388607},
		{32, math.MaxInt32},
	}
	for _, c := range cases {
		d := IntBits{Bits: c.bits}
		if d.Max() != c.max {
			t.Errorf("int%d max: got %d, want %d", c.bits, d.Max(), c.max)
		}
		// Symmetric: one unit narrower than two's complement on the
		// negative side.
		if d.Min() != -c.max {
			t.Errorf("int%d min: got %d, want %d", c.bits, d.Min(), -c.max)
		}
	}
}

func TestUnitAndBipolarBounds(t *testing.T) {
	unit, bipolar := Unit{}, Bipolar{}
	if unit.Min() != 0 || unit.Max() != 1 {
		t.Errorf("unit bounds: got [%f,%f]", unit.Min(), unit.Max())
	}
	if bipolar.Min() != -1 || bipolar.Max() != 1 {
		t.Errorf("bipolar bounds: got [%f,%f]", bipolar.Min(), bipolar.Max())
	}
}

func TestScaledBounds(t *testing.T) {
	if HalfUnit.Min() != 0 || HalfUnit.Max() != 0.5 {
		t.Errorf("half unit bounds: got [%f,%f]", HalfUnit.Min(), HalfUnit.Max())
	}

	third := Scaled[float32]{Base: Bipolar{}, Num: 1, Den: 3}
	if math.Abs(float64(third.Max()-1.0/3.0)) > 1e-7 {
		t.Errorf("bipolar/3 max: got %f", third.Max())
	}

	// Integer bases truncate in the value type.
	halved := Scaled[uint32]{Base: UintBits{Bits: 8}, Num: 1, Den: 2}
	if halved.Max() != 127 {
		t.Errorf("uint8/2 max: got %d, want 127", halved.Max())
	}
}

func TestExtent(t *testing.T) {
	if got := Extent[uint64](Uint8{}); got != 255 {
		t.Errorf("uint8 extent: got %d, want 255", got)
	}
	if got := Extent[uint64](Uint64{}); got != math.MaxUint64 {
		t.Errorf("uint64 extent: got %d", got)
	}
	if got := Extent[int64](IntBits{Bits: 8}); got != 254 {
		t.Errorf("int8 symmetric extent: got %d, want 254", got)
	}
	if got := Extent[float64](Bipolar{}); got != 2 {
		t.Errorf("bipolar extent: got %f, want 2", got)
	}
	if got := Extent[int64](Make[int8](-10, 50)); got != 60 {
		t.Errorf("dynamic extent: got %d, want 60", got)
	}
	// The wide type is what keeps an unsigned subtraction from
	// wrapping: uint16 bounds in a uint64 extent.
	if got := Extent[uint64](Make[uint16](0, math.MaxUint16)); got != 65535 {
		t.Errorf("uint16 extent: got %d, want 65535", got)
	}
}
