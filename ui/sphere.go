package ui

import (
	"math"

	"github.com/go-gl/gl/v2.1/gl"
)

// drawUnitSphere draws a lat/lon sphere of radius 1 around the origin,
// with texture coordinates wrapping once around in both directions.
func drawUnitSphere(slices int, wireframe bool) {
	for i := 0; i <= slices; i++ {
		lat0 := math.Pi * (-0.5 + float64(i-1)/float64(slices))
		y0 := math.Sin(lat0)
		yr0 := math.Cos(lat0)

		lat1 := math.Pi * (-0.5 + float64(i)/float64(slices))
		y1 := math.Sin(lat1)
		yr1 := math.Cos(lat1)

		v0 := float32(i-1) / float32(slices)
		v1 := float32(i) / float32(slices)

		if wireframe {
			gl.Begin(gl.LINES)
		} else {
			gl.Begin(gl.QUAD_STRIP)
		}
		for j := 0; j <= slices; j++ {
			lng := 2 * math.Pi * (float64(j-1) / float64(slices))
			x := math.Cos(lng)
			z := math.Sin(lng)
			u := float32(j-1) / float32(slices)

			gl.TexCoord2f(u, v0)
			gl.Normal3f(float32(x*yr0), float32(y0), float32(z*yr0))
			gl.Vertex3f(float32(x*yr0), float32(y0), float32(z*yr0))
			gl.TexCoord2f(u, v1)
			gl.Normal3f(float32(x*yr1), float32(y1), float32(z*yr1))
			gl.Vertex3f(float32(x*yr1), float32(y1), float32(z*yr1))
		}
		gl.End()
	}
}

// drawOrbitRing draws a circle of radius 0.5 in the horizontal plane. The
// orbit CTM carries a uniform scale of the orbit's diameter, so the scaled
// ring passes through the orbiting body.
func drawOrbitRing(segments int) {
	gl.Begin(gl.LINE_LOOP)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		gl.Vertex3f(float32(math.Cos(a))*0.5, 0, float32(math.Sin(a))*0.5)
	}
	gl.End()
}

// sphereSlices picks a tessellation that keeps big bodies round without
// wasting vertices on small ones.
func sphereSlices(r float32) int {
	return int(math.Max(10, 15*math.Log(float64(r)+1)))
}
