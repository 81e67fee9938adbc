package ui

import (
	"log"
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraCommand interface{}
type cameraCommandMove struct {
	X, Y float64 // strafe, forward
}
type cameraCommandTurn struct {
	X, Y float64
}
type cameraCommandReset struct{}

// plane is a normal and a point on the plane.
type plane struct {
	n, p mgl32.Vec3
}

func (pl plane) distance(px mgl32.Vec3) float32 {
	return pl.n.Dot(px) - pl.n.Dot(pl.p)
}

// Camera looks along a yaw/pitch direction from Pos, with the orbital
// plane horizontal (y up). Movement arrives as commands on a channel and
// is applied at the start of each frame.
type Camera struct {
	cmds chan cameraCommand

	screenw, screenh int

	Pos mgl32.Vec3

	alpha float64 // yaw
	theta float64 // pitch

	home mgl32.Vec3
	view mgl32.Mat4

	frustum struct {
		zNear, zFar  float32
		nearH, nearW float32
		fovY, aspect float32
		planes       []plane
	}
}

func NewCamera(width, height int, pos mgl32.Vec3) *Camera {
	c := &Camera{
		cmds:    make(chan cameraCommand, 20),
		screenw: width, screenh: height,
		Pos:  pos,
		home: pos,
	}
	c.frustum.zNear = 0.5
	c.frustum.zFar = float32(width)
	c.frustum.fovY = 60
	c.frustum.aspect = float32(width) / float32(height)

	t := float32(math.Tan(float64(c.frustum.fovY) / 360 * math.Pi))
	c.frustum.nearH = t * c.frustum.zNear
	c.frustum.nearW = c.frustum.nearH * c.frustum.aspect

	c.Refresh()

	return c
}

type FrustumCheckResult int

const (
	INSIDE FrustumCheckResult = iota
	OUTSIDE
	INTERSECT
)

func (r FrustumCheckResult) String() string {
	switch r {
	case INSIDE:
		return "INSIDE"
	case OUTSIDE:
		return "OUTSIDE"
	case INTERSECT:
		return "INTERSECT"
	default:
		log.Fatalf(`Can't get string for unknown frustum check result: %d`, r)
	}

	return ""
}

func (c *Camera) SphereInFrustum(p mgl32.Vec3, r float32) FrustumCheckResult {
	rv := INSIDE

	for _, pl := range c.frustum.planes {
		d := pl.distance(p)
		if d < -r {
			return OUTSIDE
		} else if d < r {
			rv = INTERSECT
		}
	}

	return rv
}

func (c *Camera) dir() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(c.theta) * math.Cos(c.alpha)),
		float32(math.Sin(c.theta)),
		float32(math.Cos(c.theta) * math.Sin(c.alpha)),
	}
}

func (c *Camera) lookAt(at mgl32.Vec3) {
	up := mgl32.Vec3{0, 1, 0}

	fw := at.Sub(c.Pos).Normalize()
	side := fw.Cross(up).Normalize()
	up = side.Cross(fw).Normalize()

	c.view = mgl32.LookAtV(c.Pos, at, up)

	// Frustum plane extraction
	nc := c.Pos.Add(fw.Mul(c.frustum.zNear))
	fc := c.Pos.Add(fw.Mul(c.frustum.zFar))

	planes := []plane{
		{fw, nc},         // NEARP
		{fw.Mul(-1), fc}, // FARP
	}

	nh, nw := c.frustum.nearH, c.frustum.nearW

	// TOP
	aux := nc.Add(up.Mul(nh)).Sub(c.Pos).Normalize()
	planes = append(planes, plane{aux.Cross(side), nc.Add(up.Mul(nh))})

	// BOTTOM
	aux = nc.Sub(up.Mul(nh)).Sub(c.Pos).Normalize()
	planes = append(planes, plane{side.Cross(aux), nc.Sub(up.Mul(nh))})

	// LEFT
	aux = nc.Sub(side.Mul(nw)).Sub(c.Pos).Normalize()
	planes = append(planes, plane{aux.Cross(up), nc.Sub(side.Mul(nw))})

	// RIGHT
	aux = nc.Add(side.Mul(nw)).Sub(c.Pos).Normalize()
	planes = append(planes, plane{up.Cross(aux), nc.Add(side.Mul(nw))})

	c.frustum.planes = planes
}

// Refresh drains pending commands and recomputes the view matrix and
// frustum planes. It touches no GL state, so it works headless.
func (c *Camera) Refresh() {
	c.drainCommands()
	c.lookAt(c.Pos.Add(c.dir().Mul(10)))
}

// Update has to be called in the GL thread.
func (c *Camera) Update() {
	c.Refresh()

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Frustum(
		-float64(c.frustum.nearW), float64(c.frustum.nearW),
		-float64(c.frustum.nearH), float64(c.frustum.nearH),
		float64(c.frustum.zNear), float64(c.frustum.zFar))

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&c.view[0])
}

func (c *Camera) drainCommands() {
	Pi2 := math.Pi / 2
	for {
		select {
		case cmd := <-c.cmds:
			switch cmd := cmd.(type) {
			case cameraCommandTurn:
				if cmd.X != 0 {
					c.alpha += cmd.X / (float64(c.screenw) / Pi2)
					c.alpha = math.Remainder(c.alpha, 2*math.Pi)
				}
				if cmd.Y != 0 {
					c.theta -= cmd.Y / (float64(c.screenh) / Pi2)
					c.theta = math.Max(-Pi2+0.01, math.Min(Pi2-0.01, c.theta))
				}
			case cameraCommandMove:
				if cmd.Y != 0 {
					c.Pos = c.Pos.Add(c.dir().Mul(float32(cmd.Y)))
				}
				if cmd.X != 0 {
					side := mgl32.Vec3{
						float32(math.Cos(c.alpha + Pi2)),
						0,
						float32(math.Sin(c.alpha + Pi2)),
					}
					c.Pos = c.Pos.Add(side.Mul(float32(cmd.X)))
				}
			case cameraCommandReset:
				c.Pos = c.home
				c.alpha = 0
				c.theta = 0
			}
		default:
			return
		}
	}
}

func (c *Camera) QueueCommand(cmd cameraCommand) {
	c.cmds <- cmd
}
