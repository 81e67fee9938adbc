// Package solar builds a stylized solar system as a tree of bodies and
// advances their orbital and rotational phases every frame. It is a
// visualization, not an N-body simulator: real astronomical magnitudes are
// log-compressed into renderable ranges and orbits are plain circles.
package solar

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"git.c3pb.de/farhaven/planetarium/scene"
)

// moonHost is the catalog index of the planet the moon orbits (Earth).
const moonHost = 2

type System struct {
	bodies []Body
	root   BodyID
}

func (s *System) Root() BodyID {
	return s.root
}

func (s *System) Body(id BodyID) *Body {
	return &s.bodies[id]
}

// Len is the number of bodies in the system, root included.
func (s *System) Len() int {
	return len(s.bodies)
}

func (s *System) addBody(b Body) BodyID {
	s.bodies = append(s.bodies, b)
	return BodyID(len(s.bodies) - 1)
}

// Generate builds the fully linked body tree from cat and returns it
// together with the renderer's shape list: sun first, planets in catalog
// order, moon last. Each planet starts at a random orbital phase drawn
// from rng so the system doesn't look synchronized.
func Generate(cat Catalog, rng *rand.Rand) (*System, []*scene.Shape) {
	if len(cat.Planets) <= moonHost {
		panic(fmt.Sprintf(`catalog needs at least %d planets, got %d`, moonHost+1, len(cat.Planets)))
	}

	s := &System{bodies: make([]Body, 0, len(cat.Planets)+2)}
	shapes := make([]*scene.Shape, 0, len(cat.Planets)+2)

	mat := scene.Material{
		Diffuse: mgl32.Vec4{1, 1, 1, 0},
		Blend:   1,
		Texture: scene.TextureMap{Used: true, RepeatU: 1, RepeatV: 1},
	}

	mat.Texture.Filename = cat.Sun.Texture
	sunShape := &scene.Shape{Primitive: scene.PrimitiveSphere, Material: mat, CTM: mgl32.Ident4()}
	shapes = append(shapes, sunShape)
	s.root = s.addBody(Body{
		ScaledDiameter: scaleDiameter(cat.Sun.Diameter),
		Axis:           defaultAxis,
		orient:         mgl32.Ident4(),
		Shape:          sunShape,
		Parent:         NoBody,
	})

	mat.Blend = 0.5
	for _, p := range cat.Planets {
		mat.Texture.Filename = p.Texture
		shape := &scene.Shape{Primitive: scene.PrimitiveSphere, Material: mat, CTM: mgl32.Ident4()}
		shapes = append(shapes, shape)
		id := s.addBody(Body{
			ScaledDiameter: scaleDiameter(p.Diameter),
			OrbitSpeed:     scaleVelocity(1 / p.OrbitalPeriod),
			SpinSpeed:      p.RotationalVelocity / p.Diameter,
			OrbitAngle:     rng.Float32() * 2 * math.Pi,
			OrbitRadius:    scaleOrbitRadius(p.OrbitalRadius),
			Axis:           computeAxis(p.Inclination),
			orient:         orientMat(p.Inclination),
			Shape:          shape,
			Parent:         s.root,
		})
		s.bodies[s.root].Children = append(s.bodies[s.root].Children, id)
	}

	// The moon's scales are tuned by hand: it is far too small and too
	// close for the planets' log compression to produce anything visible.
	mat.Texture.Filename = cat.Moon.Texture
	moonShape := &scene.Shape{Primitive: scene.PrimitiveSphere, Material: mat, CTM: mgl32.Ident4()}
	shapes = append(shapes, moonShape)
	earth := s.bodies[s.root].Children[moonHost]
	moon := s.addBody(Body{
		ScaledDiameter: cat.Moon.Diameter / 20000,
		OrbitSpeed:     scaleVelocity(1 / cat.Moon.OrbitalPeriod),
		SpinSpeed:      cat.Moon.RotationalVelocity / cat.Moon.Diameter,
		OrbitAngle:     rng.Float32() * 2 * math.Pi,
		OrbitRadius:    cat.Moon.OrbitalRadius * 1.5,
		Axis:           computeAxis(cat.Moon.Inclination),
		orient:         orientMat(cat.Moon.Inclination),
		Shape:          moonShape,
		Parent:         earth,
	})
	s.bodies[earth].Children = []BodyID{moon}

	// Populate every translate matrix and shape CTM for frame zero.
	s.Update(0)

	return s, shapes
}

// Update advances every body's phase angles by dt and refreshes all shape
// transforms, depth-first from the root.
func (s *System) Update(dt float32) {
	s.updateBody(s.root, mgl32.Ident4(), dt)
}

// OrbitCtms returns one transform per non-root body describing its orbit
// ring: the parent's translate chain, scaled to the orbit's diameter,
// tilted by the body's orientation. Order is depth-first, node before
// children, matching child insertion order.
func (s *System) OrbitCtms() []mgl32.Mat4 {
	ctms := make([]mgl32.Mat4, 0, len(s.bodies)-1)
	s.appendOrbitCtms(&ctms, s.root)
	return ctms
}

func (s *System) appendOrbitCtms(ctms *[]mgl32.Mat4, id BodyID) {
	b := &s.bodies[id]

	if b.Parent != NoBody {
		d := 2 * b.OrbitRadius
		m := s.bodies[b.Parent].translate.
			Mul4(mgl32.Scale3D(d, d, d)).
			Mul4(b.orient)
		*ctms = append(*ctms, m)
	}

	for _, c := range b.Children {
		s.appendOrbitCtms(ctms, c)
	}
}
