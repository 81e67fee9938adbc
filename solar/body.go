package solar

import (
	"github.com/go-gl/mathgl/mgl32"

	"git.c3pb.de/farhaven/planetarium/scene"
)

// BodyID indexes a body inside its System's arena. Parent/child links are
// plain indices with no ownership semantics; dropping the System frees the
// whole tree at once.
type BodyID int

const NoBody BodyID = -1

type Body struct {
	ScaledDiameter float32
	OrbitSpeed     float32 // radians per unit time around the parent
	SpinSpeed      float32 // radians per unit time around its own axis
	OrbitAngle     float32 // current orbital phase
	SpinAngle      float32 // current self-rotation phase
	OrbitRadius    float32 // render-space distance from the parent
	Axis           mgl32.Vec3

	// orient aligns the default orbital plane with this body's inclined
	// one; translate is the position chain up to and including this body's
	// orbit, refreshed every update.
	orient    mgl32.Mat4
	translate mgl32.Mat4

	// Shape is owned by the renderer's list, not by the tree.
	Shape *scene.Shape

	Parent   BodyID
	Children []BodyID
}

// updateBody advances the two phase angles and rebuilds the transform
// chain, node before children, so a child always composes against its
// parent's current-frame translate matrix.
func (s *System) updateBody(id BodyID, parent mgl32.Mat4, dt float32) {
	b := &s.bodies[id]

	b.SpinAngle += b.SpinSpeed * dt
	b.OrbitAngle += b.OrbitSpeed * dt

	b.translate = parent.
		Mul4(mgl32.HomogRotate3D(b.OrbitAngle, b.Axis)).
		Mul4(mgl32.Translate3D(b.OrbitRadius, 0, 0))
	b.Shape.CTM = b.translate.
		Mul4(mgl32.HomogRotate3D(b.SpinAngle, b.Axis)).
		Mul4(mgl32.Scale3D(b.ScaledDiameter, b.ScaledDiameter, b.ScaledDiameter))

	for _, c := range b.Children {
		s.updateBody(c, b.translate, dt)
	}
}
