package ui

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const maxTextureSize = 1024

func nextPow2(n int) int {
	p := 1
	for p < n && p < maxTextureSize {
		p *= 2
	}
	return p
}

// loadTexture decodes an image file, rescales it to power-of-two
// dimensions (plain GL 2.1 contexts reject NPOT textures) and uploads it
// with repeat wrapping.
func loadTexture(path string) (uint32, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fh.Close()

	img, _, err := image.Decode(fh)
	if err != nil {
		return 0, fmt.Errorf(`decoding %s: %w`, path, err)
	}

	w := nextPow2(img.Bounds().Dx())
	h := nextPow2(img.Bounds().Dy())
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	return tex, nil
}

// fallbackColor tints a body whose texture couldn't be loaded, stable per
// shape index.
func fallbackColor(i int) colorful.Color {
	return colorful.Hcl(math.Remainder(float64(i)*49, 360), 0.9, 0.9)
}
