package text

import (
	"image/color"
	"os"
	"testing"
)

const testFont = "../../font.ttf"

func testContext(t *testing.T) *Context {
	if _, err := os.Stat(testFont); err != nil {
		t.Skipf(`no font available: %s`, err)
	}

	c, err := NewContext(testFont)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	return c
}

func TestRender(t *testing.T) {
	c := testContext(t)

	img, err := c.Render("π ⚠ fnord", 20, color.Gray{128})
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf(`empty image %v`, img.Bounds())
	}
}

func TestRenderLines(t *testing.T) {
	c := testContext(t)

	lines := []string{"Foo", "Bar Bar Bar", "☺ ⚠"}
	img, err := c.RenderLines(lines, 20, color.Gray{0}, color.Gray{127})
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	single, err := c.Render(lines[1], 20, color.Gray{127})
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	if img.Bounds().Dx() != single.Bounds().Dx() {
		t.Errorf(`stacked width %d, widest line %d`, img.Bounds().Dx(), single.Bounds().Dx())
	}
	if img.Bounds().Dy() < 3*single.Bounds().Dy() {
		t.Errorf(`stacked height %d too small for %d lines`, img.Bounds().Dy(), len(lines))
	}
}
