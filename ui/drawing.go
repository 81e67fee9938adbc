// Package ui owns the window, the GL frame loop and the camera. It draws
// the shape list the solar system hands over and keeps the simulation
// ticking with real frame times.
package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"git.c3pb.de/farhaven/planetarium/scene"
	"git.c3pb.de/farhaven/planetarium/solar"
)

type DrawCommand int

const (
	DRAW_QUIT DrawCommand = iota
	DRAW_TOGGLE_WIREFRAME
	DRAW_TOGGLE_ORBITS
	DRAW_TOGGLE_PAUSE
)

type Config struct {
	Width, Height int
	Resources     string // directory the catalog's texture paths are relative to
	Font          string
	TimeScale     float64
}

type DrawContext struct {
	cfg Config
	win *glfw.Window
	cmd chan DrawCommand

	cam *Camera

	sys      *solar.System
	shapes   []*scene.Shape
	textures []uint32 // parallel to shapes, 0 where loading failed
	hud      *hud

	wireframe bool
	orbits    bool
	paused    bool

	shutdown chan struct{}
}

func NewDrawContext(cfg Config, sys *solar.System, shapes []*scene.Shape) *DrawContext {
	c := make(chan *DrawContext)

	// glfw insists on the main OS thread; everything touching GL lives on
	// this one locked goroutine.
	go func() {
		runtime.LockOSThread()

		if err := glfw.Init(); err != nil {
			log.Fatalf(`can't init glfw: %s`, err)
		}

		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.Resizable, glfw.False)

		win, err := glfw.CreateWindow(cfg.Width, cfg.Height, "planetarium", nil, nil)
		if err != nil {
			log.Fatalf(`can't create window: %s`, err)
		}
		win.MakeContextCurrent()
		glfw.SwapInterval(1)

		if err := gl.Init(); err != nil {
			log.Fatalf(`can't init GL: %s`, err)
		}

		gl.ClearColor(0.02, 0.02, 0.05, 1)
		gl.Enable(gl.DEPTH_TEST)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

		ctx := &DrawContext{
			cfg: cfg,
			win: win,
			cmd: make(chan DrawCommand, 10),
			cam: NewCamera(cfg.Width, cfg.Height, mgl32.Vec3{-45, 12, 0}),
			sys: sys, shapes: shapes,
			hud:      newHud(cfg.Font),
			orbits:   true,
			shutdown: make(chan struct{}),
		}
		ctx.loadTextures()
		ctx.installCallbacks()

		c <- ctx

		ctx.drawScreen()

		glfw.Terminate()
		close(ctx.shutdown)
	}()

	return <-c
}

func (ctx *DrawContext) WaitForShutdown() {
	<-ctx.shutdown
}

func (ctx *DrawContext) QueueCommand(cmd DrawCommand) {
	ctx.cmd <- cmd
}

func (ctx *DrawContext) loadTextures() {
	ctx.textures = make([]uint32, len(ctx.shapes))
	for i, sh := range ctx.shapes {
		if !sh.Material.Texture.Used {
			continue
		}
		path := filepath.Join(ctx.cfg.Resources, sh.Material.Texture.Filename)
		tex, err := loadTexture(path)
		if err != nil {
			log.Printf(`can't load texture %s: %s`, path, err)
			continue
		}
		ctx.textures[i] = tex
	}
}

func (ctx *DrawContext) drawScreen() {
	last := glfw.GetTime()
	frameMs := 0.0

	for !ctx.win.ShouldClose() {
		glfw.PollEvents()

		select {
		case cmd := <-ctx.cmd:
			switch cmd {
			case DRAW_QUIT:
				return
			case DRAW_TOGGLE_WIREFRAME:
				ctx.wireframe = !ctx.wireframe
			case DRAW_TOGGLE_ORBITS:
				ctx.orbits = !ctx.orbits
			case DRAW_TOGGLE_PAUSE:
				ctx.paused = !ctx.paused
			}
		default:
			/* ignore */
		}

		now := glfw.GetTime()
		dt := now - last
		last = now
		if !ctx.paused {
			ctx.sys.Update(float32(dt * ctx.cfg.TimeScale))
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		ctx.cam.Update()
		if ctx.orbits {
			ctx.drawOrbits()
		}
		ctx.drawShapes()
		ctx.hud.draw(ctx.cfg.Width, ctx.cfg.Height, ctx.hudLines(frameMs))
		ctx.win.SwapBuffers()

		frameMs = (glfw.GetTime() - now) * 1000
	}
}

func (ctx *DrawContext) drawShapes() {
	for i, sh := range ctx.shapes {
		// Position and radius fall out of the CTM: the last column is the
		// translation, the basis column length recovers the uniform scale.
		pos := sh.CTM.Col(3).Vec3()
		r := sh.CTM.Col(0).Vec3().Len()
		if ctx.cam.SphereInFrustum(pos, r) == OUTSIDE {
			continue
		}

		m := sh.Material
		tex := ctx.textures[i]
		if tex != 0 {
			gl.Enable(gl.TEXTURE_2D)
			gl.BindTexture(gl.TEXTURE_2D, tex)
			gl.Color4f(m.Diffuse.X(), m.Diffuse.Y(), m.Diffuse.Z(), m.Blend)
		} else {
			c := fallbackColor(i)
			gl.Color4f(float32(c.R), float32(c.G), float32(c.B), m.Blend)
		}

		ctm := sh.CTM
		gl.MatrixMode(gl.MODELVIEW)
		gl.PushMatrix()
		gl.MultMatrixf(&ctm[0])
		drawUnitSphere(sphereSlices(r), ctx.wireframe)
		gl.PopMatrix()

		if tex != 0 {
			gl.Disable(gl.TEXTURE_2D)
		}
	}
}

func (ctx *DrawContext) drawOrbits() {
	gl.Color4f(0.35, 0.35, 0.4, 0.8)
	for _, m := range ctx.sys.OrbitCtms() {
		m := m
		gl.MatrixMode(gl.MODELVIEW)
		gl.PushMatrix()
		gl.MultMatrixf(&m[0])
		drawOrbitRing(96)
		gl.PopMatrix()
	}
}

func (ctx *DrawContext) hudLines(frameMs float64) []string {
	state := "running"
	if ctx.paused {
		state = "paused"
	}

	return []string{
		"WASD: Move, Mouse: Look, Wheel: Move fast, Space: Pause",
		"1: Toggle wireframe, O: Toggle orbits, R: Reset camera, Q: Quit",
		fmt.Sprintf(` %d bodies, %s, %0.1f ms/frame`, ctx.sys.Len(), state, frameMs),
		fmt.Sprintf(` x: %0.2f y: %0.2f z: %0.2f`, ctx.cam.Pos.X(), ctx.cam.Pos.Y(), ctx.cam.Pos.Z()),
	}
}
