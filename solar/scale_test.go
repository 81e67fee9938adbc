package solar

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScaleDiameterMonotonic(t *testing.T) {
	cat := DefaultCatalog()

	ds := []float32{cat.Moon.Diameter}
	for _, p := range cat.Planets {
		ds = append(ds, p.Diameter)
	}
	ds = append(ds, cat.Sun.Diameter)

	for i, d := range ds {
		for _, dx := range ds[i+1:] {
			lo, hi := d, dx
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo == hi {
				continue
			}
			if scaleDiameter(lo) >= scaleDiameter(hi) {
				t.Errorf(`scaleDiameter(%v) = %v not below scaleDiameter(%v) = %v`, lo, scaleDiameter(lo), hi, scaleDiameter(hi))
			}
		}
	}
}

func TestScaleVelocityOrdering(t *testing.T) {
	cat := DefaultCatalog()

	// A shorter orbital period has to yield a faster visual orbit.
	prev := float32(math.Inf(1))
	for _, p := range cat.Planets {
		v := scaleVelocity(1 / p.OrbitalPeriod)
		if v >= prev {
			t.Errorf(`%s orbits at %v, not slower than the previous planet at %v`, p.Texture, v, prev)
		}
		prev = v
	}
}

func TestComputeAxisZero(t *testing.T) {
	if a := computeAxis(0); a != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf(`computeAxis(0) = %v, expected exact (0, 1, 0)`, a)
	}
}

func TestComputeAxisFlip(t *testing.T) {
	a := computeAxis(180)
	want := mgl32.Vec3{0, -1, 0}
	if a.Sub(want).Len() > 1e-5 {
		t.Errorf(`computeAxis(180) = %v, expected ~%v`, a, want)
	}
}

func TestComputeAxisUnitLength(t *testing.T) {
	for _, deg := range []float32{0, 5.1, 23.4, 90, 180, 270} {
		a := computeAxis(deg)
		if d := math.Abs(float64(a.Len()) - 1); d > 1e-5 {
			t.Errorf(`computeAxis(%v) = %v has length %v`, deg, a, a.Len())
		}
	}
}
