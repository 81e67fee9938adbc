package solar

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The scale functions squeeze astronomical magnitudes into ranges that fit
// on screen together. They are tuned for looks, not accuracy: diameters
// span three orders of magnitude, orbital radii four, and a linear mapping
// would leave everything but Jupiter and the sun invisible.

// scaleDiameter maps diameters of ~3,000 to ~1,400,000 km onto comparable
// render-space sizes. Only valid for positive d.
func scaleDiameter(d float32) float32 {
	return float32(math.Log10(float64(d))-3) * 0.5
}

// scaleOrbitRadius maps orbital radii of ~0.3 to ~4,500 (10^6 km) onto
// render-space distances.
func scaleOrbitRadius(r float32) float32 {
	return float32(math.Log10(float64(r))-1.2) * 7
}

// scaleVelocity compresses angular rates so the outer planets don't appear
// frozen. Callers pass 1/period, so a shorter period orbits faster.
func scaleVelocity(v float32) float32 {
	return float32(math.Sqrt(float64(v))) * 10
}

var defaultAxis = mgl32.Vec3{0, 1, 0}

// computeAxis tilts the default up axis by the orbital inclination,
// rotating about the reference x axis. The result is a direction, not a
// point, so only the rotation applies.
func computeAxis(inclinationDeg float32) mgl32.Vec3 {
	if inclinationDeg == 0 {
		return defaultAxis
	}
	return orientMat(inclinationDeg).Mul4x1(defaultAxis.Vec4(0)).Vec3()
}

// orientMat is the rotation aligning the default orbital plane with a
// body's inclined one. It doubles as the orbit ring orientation.
func orientMat(inclinationDeg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(inclinationDeg), mgl32.Vec3{1, 0, 0})
}
