// Package text rasterizes HUD strings into RGBA images with freetype.
package text

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

type Context struct {
	ft  *freetype.Context
	fnt *truetype.Font
}

func NewContext(font string) (*Context, error) {
	data, err := os.ReadFile(font)
	if err != nil {
		return nil, err
	}

	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, err
	}

	ft := freetype.NewContext()
	ft.SetFont(fnt)
	/* XXX: get appropriate DPI for current display */
	ft.SetDPI(96)

	return &Context{ft, fnt}, nil
}

// measureImage soaks up draw calls so a string can be measured by drawing
// it nowhere.
type measureImage struct{}

func (measureImage) ColorModel() color.Model     { return color.RGBAModel }
func (measureImage) Bounds() image.Rectangle     { return image.Rect(0, 0, 1, 1) }
func (measureImage) At(x, y int) color.Color     { return color.Black }
func (measureImage) Set(x, y int, c color.Color) {}

func (c *Context) lineHeight(size float64) int {
	bnd := c.fnt.Bounds(fixed.I(int(size + 0.5)))
	return (bnd.Max.Y - bnd.Min.Y).Ceil()
}

// Render draws txt at the given point size into a tightly sized image.
func (c *Context) Render(txt string, size float64, col color.Color) (*image.RGBA, error) {
	lh := c.lineHeight(size)

	c.ft.SetSrc(image.NewUniform(col))
	c.ft.SetFontSize(size)

	c.ft.SetDst(measureImage{})
	c.ft.SetClip(measureImage{}.Bounds())
	end, err := c.ft.DrawString(txt, fixed.P(0, lh))
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, end.X.Ceil(), lh))
	c.ft.SetDst(dst)
	c.ft.SetClip(dst.Bounds())
	if _, err := c.ft.DrawString(txt, fixed.P(0, int(size))); err != nil {
		return nil, err
	}

	return dst, nil
}

// RenderLines stacks the rendered lines top to bottom on a shared
// background, sized to the widest line.
func (c *Context) RenderLines(lines []string, size float64, bg, fg color.Color) (*image.RGBA, error) {
	w, h := 0, 0
	imgs := make([]*image.RGBA, 0, len(lines))

	for _, l := range lines {
		img, err := c.Render(l, size, fg)
		if err != nil {
			return nil, err
		}
		if img.Bounds().Dx() > w {
			w = img.Bounds().Dx()
		}
		h += img.Bounds().Dy()
		imgs = append(imgs, img)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	y := 0
	for _, src := range imgs {
		sr := src.Bounds()
		r := image.Rectangle{image.Point{0, y}, image.Point{sr.Dx(), y + sr.Dy()}}
		draw.Draw(dst, r, src, sr.Min, draw.Over)
		y += sr.Dy()
	}

	return dst, nil
}
