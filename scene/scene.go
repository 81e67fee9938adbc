// Package scene holds the data types handed across the renderer boundary:
// a flat list of primitive shapes with a material and a live transform.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Primitive int

const (
	PrimitiveSphere Primitive = iota
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveSphere:
		return "SPHERE"
	default:
		return "UNKNOWN"
	}
}

type TextureMap struct {
	Used     bool
	Filename string
	RepeatU  float32
	RepeatV  float32
}

type Material struct {
	Diffuse mgl32.Vec4
	Blend   float32
	Texture TextureMap
}

// Shape is owned by the renderer's shape list. The simulation keeps a
// non-owning pointer and refreshes CTM every update.
type Shape struct {
	Primitive Primitive
	Material  Material
	CTM       mgl32.Mat4
}
