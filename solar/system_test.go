package solar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"git.c3pb.de/farhaven/planetarium/scene"
)

func testSystem(seed int64) (*System, []*scene.Shape) {
	return Generate(DefaultCatalog(), rand.New(rand.NewSource(seed)))
}

func TestGenerateShapeList(t *testing.T) {
	cat := DefaultCatalog()
	_, shapes := testSystem(1)

	if len(shapes) != len(cat.Planets)+2 {
		t.Fatalf(`expected %d shapes, got %d`, len(cat.Planets)+2, len(shapes))
	}

	if fn := shapes[0].Material.Texture.Filename; fn != cat.Sun.Texture {
		t.Errorf(`first shape textured %q, expected the sun %q`, fn, cat.Sun.Texture)
	}
	for i, p := range cat.Planets {
		if fn := shapes[i+1].Material.Texture.Filename; fn != p.Texture {
			t.Errorf(`shape %d textured %q, expected %q`, i+1, fn, p.Texture)
		}
	}
	if fn := shapes[len(shapes)-1].Material.Texture.Filename; fn != cat.Moon.Texture {
		t.Errorf(`last shape textured %q, expected the moon %q`, fn, cat.Moon.Texture)
	}

	for i, sh := range shapes {
		if sh.Primitive != scene.PrimitiveSphere {
			t.Errorf(`shape %d is a %s, expected a sphere`, i, sh.Primitive)
		}
		want := float32(0.5)
		if i == 0 {
			want = 1
		}
		if sh.Material.Blend != want {
			t.Errorf(`shape %d blends at %v, expected %v`, i, sh.Material.Blend, want)
		}
		if sh.Material.Diffuse != (mgl32.Vec4{1, 1, 1, 0}) {
			t.Errorf(`shape %d diffuse %v`, i, sh.Material.Diffuse)
		}
		tm := sh.Material.Texture
		if !tm.Used || tm.RepeatU != 1 || tm.RepeatV != 1 {
			t.Errorf(`shape %d texture map %+v`, i, tm)
		}
	}
}

func TestTreeShape(t *testing.T) {
	cat := DefaultCatalog()
	s, _ := testSystem(2)

	root := s.Body(s.Root())
	if root.Parent != NoBody {
		t.Errorf(`root has parent %d`, root.Parent)
	}
	if root.OrbitRadius != 0 {
		t.Errorf(`root orbit radius %v, expected 0`, root.OrbitRadius)
	}
	if len(root.Children) != len(cat.Planets) {
		t.Fatalf(`root has %d children, expected %d`, len(root.Children), len(cat.Planets))
	}

	earth := s.Body(root.Children[moonHost])
	if len(earth.Children) != 1 {
		t.Fatalf(`moon host has %d children, expected 1`, len(earth.Children))
	}
	moon := s.Body(earth.Children[0])
	if len(moon.Children) != 0 {
		t.Errorf(`moon has %d children`, len(moon.Children))
	}

	// Every planet except the host is a leaf.
	for i, c := range root.Children {
		if i == moonHost {
			continue
		}
		if n := len(s.Body(c).Children); n != 0 {
			t.Errorf(`planet %d has %d children`, i, n)
		}
	}
}

// The arena replaces recursive ownership, so "every descendant freed
// exactly once" becomes "every body reachable from the root exactly once
// and consistently linked".
func TestArenaIntegrity(t *testing.T) {
	s, _ := testSystem(3)

	seen := make(map[BodyID]int)
	var walk func(id BodyID)
	walk = func(id BodyID) {
		seen[id]++
		for _, c := range s.Body(id).Children {
			if s.Body(c).Parent != id {
				t.Errorf(`body %d lists child %d, whose parent is %d`, id, c, s.Body(c).Parent)
			}
			walk(c)
		}
	}
	walk(s.Root())

	if len(seen) != s.Len() {
		t.Errorf(`reached %d bodies, arena holds %d`, len(seen), s.Len())
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf(`body %d reached %d times`, id, n)
		}
	}
}

func TestRandomPhases(t *testing.T) {
	s, _ := testSystem(4)

	if a := s.Body(s.Root()).OrbitAngle; a != 0 {
		t.Errorf(`sun orbit phase %v, expected 0`, a)
	}
	for _, c := range s.Body(s.Root()).Children {
		a := s.Body(c).OrbitAngle
		if a < 0 || a >= 2*math.Pi {
			t.Errorf(`planet %d starts at phase %v, outside [0, 2π)`, c, a)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := testSystem(5)
	b, _ := testSystem(5)

	if a.Len() != b.Len() {
		t.Fatalf(`sizes differ: %d vs %d`, a.Len(), b.Len())
	}
	for id := BodyID(0); int(id) < a.Len(); id++ {
		if pa, pb := a.Body(id).OrbitAngle, b.Body(id).OrbitAngle; pa != pb {
			t.Errorf(`body %d phase differs with the same seed: %v vs %v`, id, pa, pb)
		}
	}
}

func angles(s *System) []float32 {
	r := make([]float32, 0, 2*s.Len())
	for id := BodyID(0); int(id) < s.Len(); id++ {
		r = append(r, s.Body(id).OrbitAngle, s.Body(id).SpinAngle)
	}
	return r
}

func TestUpdateZeroIdempotent(t *testing.T) {
	s, shapes := testSystem(6)

	before := angles(s)
	ctms := make([]mgl32.Mat4, len(shapes))
	for i, sh := range shapes {
		ctms[i] = sh.CTM
	}

	s.Update(0)

	for i, a := range angles(s) {
		if a != before[i] {
			t.Errorf(`angle %d changed from %v to %v on update(0)`, i, before[i], a)
		}
	}
	for i, sh := range shapes {
		if sh.CTM != ctms[i] {
			t.Errorf(`shape %d transform changed on update(0)`, i)
		}
	}
}

func TestUpdateAdditive(t *testing.T) {
	a, _ := testSystem(7)
	b, _ := testSystem(7)

	a.Update(0.3)
	a.Update(0.7)
	b.Update(1.0)

	bAngles := angles(b)
	for i, x := range angles(a) {
		if d := math.Abs(float64(x - bAngles[i])); d > 1e-4 {
			t.Errorf(`angle %d: split update %v vs single update %v`, i, x, bAngles[i])
		}
	}
}

// A body's distance from its parent is its orbit radius, whatever the
// current phase: the orbit rotation can't stretch the translation.
func TestUpdateDistances(t *testing.T) {
	s, _ := testSystem(8)
	s.Update(1.7)

	pos := func(id BodyID) mgl32.Vec3 {
		return s.Body(id).Shape.CTM.Col(3).Vec3()
	}

	root := s.Root()
	if p := pos(root); p.Len() > 1e-5 {
		t.Errorf(`sun moved to %v`, p)
	}
	for _, c := range s.Body(root).Children {
		d := pos(c).Len()
		if r := s.Body(c).OrbitRadius; math.Abs(float64(d-r)) > 1e-3 {
			t.Errorf(`planet %d at distance %v, orbit radius %v`, c, d, r)
		}
	}

	earth := s.Body(root).Children[moonHost]
	moon := s.Body(earth).Children[0]
	d := pos(moon).Sub(pos(earth)).Len()
	if r := s.Body(moon).OrbitRadius; math.Abs(float64(d-r)) > 1e-3 {
		t.Errorf(`moon at distance %v from its host, orbit radius %v`, d, r)
	}
}

func TestOrbitCtms(t *testing.T) {
	s, _ := testSystem(9)

	ctms := s.OrbitCtms()
	if len(ctms) != s.Len()-1 {
		t.Fatalf(`%d orbit rings for %d bodies, expected %d`, len(ctms), s.Len(), s.Len()-1)
	}

	// Depth-first with the moon right after its host: mercury, venus,
	// earth, moon, mars, ...
	order := []BodyID{}
	root := s.Body(s.Root())
	for i, c := range root.Children {
		order = append(order, c)
		if i == moonHost {
			order = append(order, s.Body(c).Children[0])
		}
	}

	for i, id := range order {
		// The ring transform's rotation part is orthonormal, so the basis
		// column length recovers the uniform scale: the orbit's diameter.
		got := ctms[i].Col(0).Vec3().Len()
		want := 2 * s.Body(id).OrbitRadius
		if math.Abs(float64(got-want)) > 1e-3 {
			t.Errorf(`ring %d scaled to %v, expected %v for body %d`, i, got, want, id)
		}
	}
}

func TestGenerateAlternateCatalog(t *testing.T) {
	cat := Catalog{
		Sun:  Record{Texture: "images/a.jpeg", Diameter: 10000},
		Moon: Record{Texture: "images/b.jpeg", Diameter: 2000, RotationalVelocity: 10, OrbitalRadius: 0.5, OrbitalPeriod: 20, Inclination: 1},
		Planets: []Record{
			{Texture: "images/c.jpeg", Diameter: 5000, RotationalVelocity: 10, OrbitalRadius: 50, OrbitalPeriod: 100, Inclination: 2},
			{Texture: "images/d.jpeg", Diameter: 6000, RotationalVelocity: 10, OrbitalRadius: 100, OrbitalPeriod: 200, Inclination: 3},
			{Texture: "images/e.jpeg", Diameter: 7000, RotationalVelocity: 10, OrbitalRadius: 150, OrbitalPeriod: 300, Inclination: 4},
		},
	}

	s, shapes := Generate(cat, rand.New(rand.NewSource(10)))
	if s.Len() != 5 {
		t.Errorf(`%d bodies, expected 5`, s.Len())
	}
	if len(shapes) != 5 {
		t.Errorf(`%d shapes, expected 5`, len(shapes))
	}
	if len(s.OrbitCtms()) != 4 {
		t.Errorf(`%d orbit rings, expected 4`, len(s.OrbitCtms()))
	}
}

func TestGenerateTooFewPlanets(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf(`expected a panic for a catalog without a moon host`)
		}
	}()

	cat := DefaultCatalog()
	cat.Planets = cat.Planets[:2]
	Generate(cat, rand.New(rand.NewSource(11)))
}
