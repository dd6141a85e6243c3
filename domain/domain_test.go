package domain

import "testing"

func TestMake(t *testing.T) {
	d := Make[float32](100, 200)
	if d.Min() != 100 || d.Max() != 200 {
		t.Fatalf("make: got [%f,%f], want [100,200]", d.Min(), d.Max())
	}
}

func TestOfReifiesStaticBounds(t *testing.T) {
	d := Of[uint32](UintBits{Bits: 12})
	if d.Min() != 0 || d.Max() != 4095 {
		t.Fatalf("reified uint12: got [%d,%d], want [0,4095]", d.Min(), d.Max())
	}

	u := Of[float32](Unit{})
	if u.Min() != 0 || u.Max() != 1 {
		t.Fatalf("reified unit: got [%f,%f], want [0,1]", u.Min(), u.Max())
	}
}

func TestReifiedDomainConvertsLikeItsTag(t *testing.T) {
	tag := IntBits{Bits: 8}
	reified := Of[int32](tag)
	for v := int32(-1500); v <= 1500; v += 37 {
		src := Make[int32](-1500, 1500)
		a := Convert(tag, v, src)
		b := Convert(reified, v, src)
		if a != b {
			t.Fatalf("tag/reified mismatch at %d: %d vs %d", v, a, b)
		}
	}
}

func TestDomainsAreValueObjects(t *testing.T) {
	a := Make[int16](-5, 5)
	b := a
	if a != b {
		t.Fatalf("copies of a domain must compare equal")
	}
	if Make[int16](-5, 5) != a {
		t.Fatalf("equal-bounds domains must compare equal")
	}
	if Make[int16](-5, 6) == a {
		t.Fatalf("different-bounds domains must not compare equal")
	}
}
