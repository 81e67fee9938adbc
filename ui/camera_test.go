package ui

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSphereInFrustum(t *testing.T) {
	c := NewCamera(1440, 900, mgl32.Vec3{-40, 0, 0})

	if f := c.SphereInFrustum(mgl32.Vec3{0, 0, 0}, 30); f != INTERSECT {
		t.Errorf(`expected INTERSECT, got %s`, f.String())
	}

	if f := c.SphereInFrustum(mgl32.Vec3{0, 0, 0}, 1); f != INSIDE {
		t.Errorf(`expected INSIDE, got %s`, f.String())
	}

	if f := c.SphereInFrustum(mgl32.Vec3{-100, 0, 0}, 1); f != OUTSIDE {
		t.Errorf(`expected OUTSIDE, got %s`, f.String())
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(1024, 768, mgl32.Vec3{-40, 0, 0})

	c.QueueCommand(cameraCommandMove{Y: 10})
	c.Refresh()

	if d := math.Abs(float64(c.Pos.X() + 30)); d > 1e-5 {
		t.Errorf(`expected x=-30 after moving forward, got %v`, c.Pos)
	}

	c.QueueCommand(cameraCommandReset{})
	c.Refresh()

	if c.Pos != (mgl32.Vec3{-40, 0, 0}) {
		t.Errorf(`expected home position after reset, got %v`, c.Pos)
	}
}
