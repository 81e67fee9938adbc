package ui

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/go-gl/gl/v2.1/gl"

	"git.c3pb.de/farhaven/planetarium/ui/text"
)

// hud renders a text overlay into a texture and draws it as an ortho quad
// in the top left corner. A missing font disables the overlay instead of
// killing the program.
type hud struct {
	txt *text.Context
	tex uint32
}

func newHud(font string) *hud {
	c, err := text.NewContext(font)
	if err != nil {
		log.Printf(`HUD disabled, can't load font: %s`, err)
		return &hud{}
	}

	h := &hud{txt: c}
	gl.GenTextures(1, &h.tex)
	gl.BindTexture(gl.TEXTURE_2D, h.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return h
}

func (h *hud) draw(width, height int, lines []string) {
	if h.txt == nil {
		return
	}

	img, err := h.txt.RenderLines(lines, 13, color.RGBA{0, 0, 0, 180}, color.RGBA{0, 255, 255, 255})
	if err != nil {
		log.Printf(`can't render HUD: %s`, err)
		return
	}

	// Pad to power-of-two for the upload, draw only the used part.
	tw := nextPow2(img.Bounds().Dx())
	th := nextPow2(img.Bounds().Dy())
	canvas := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.Draw(canvas, img.Bounds(), img, image.Point{}, draw.Src)

	u := float32(img.Bounds().Dx()) / float32(tw)
	v := float32(img.Bounds().Dy()) / float32(th)

	gl.BindTexture(gl.TEXTURE_2D, h.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tw), int32(th), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(canvas.Pix))

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_2D)
	gl.Color4f(1, 1, 1, 1)

	w := float32(img.Bounds().Dx())
	ht := float32(img.Bounds().Dy())
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(u, 0)
	gl.Vertex2f(w, 0)
	gl.TexCoord2f(u, v)
	gl.Vertex2f(w, ht)
	gl.TexCoord2f(0, v)
	gl.Vertex2f(0, ht)
	gl.End()

	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.DEPTH_TEST)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
}
