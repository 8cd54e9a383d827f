package main

import (
	"image"
	"image/color"
	"regexp"
	"testing"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.ReplaceAllString(l, "")
	}
	return out
}

// bands returns an image with horizontal stripes of the given height,
// alternating red and blue from the top.
func bands(width, height, stripe int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := red
		if (y/stripe)%2 == 1 {
			c = blue
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRasterToCells(t *testing.T) {
	g := rasterToCells(bands(8, 16, 4), 2, 2)
	if g.width != 2 || g.height != 2 {
		t.Fatalf("grid is %dx%d", g.width, g.height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := g.at(x, y)
			if c.ch != upperHalf || !sameColor(c.fg, red) || !sameColor(c.bg, blue) {
				t.Errorf("cell (%d,%d) = %q fg %s bg %s", x, y, c.ch, hexColor(c.fg), hexColor(c.bg))
			}
		}
	}
}

func TestRasterToCellsEmpty(t *testing.T) {
	g := rasterToCells(bands(8, 8, 4), 0, 3)
	if len(g.lines()) != 0 {
		t.Error("zero-width grid produced lines")
	}
}

func TestPutTextKeepsBackground(t *testing.T) {
	g := rasterToCells(bands(8, 16, 4), 2, 2)
	g.putText(1, 0, "42", color.White)

	c := g.at(1, 0)
	if c.ch != '4' || !sameColor(c.fg, color.White) {
		t.Errorf("text cell = %q fg %s", c.ch, hexColor(c.fg))
	}
	// The upper half sample becomes the background behind the glyph.
	if !sameColor(c.bg, red) {
		t.Errorf("text background = %s, want red", hexColor(c.bg))
	}
	if g.at(0, 0).ch != upperHalf {
		t.Error("text overwrote the cell before it")
	}
	if g.at(2, 0) != nil {
		t.Error("text past the edge is addressable")
	}
}

func TestCellGridLines(t *testing.T) {
	g := rasterToCells(bands(16, 8, 4), 4, 1)
	g.putText(1, 0, "ab", color.White)
	diff(t, []string{"▀ab▀"}, stripANSI(g.lines()))
}

func TestDevicePosRoundTrip(t *testing.T) {
	term := DefaultConfig().Terminal
	for _, c := range [][2]int{{0, 0}, {3, 7}, {199, 77}} {
		p := devicePos(c[0], c[1], term)
		x, y := cellPos(p, term)
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v -> %v -> (%d,%d)", c, p, x, y)
		}
	}
	diff(t, Pt(2, 4), devicePos(0, 0, term))
	if x, y := cellPos(Pt(-0.5, -0.5), term); x != -1 || y != -1 {
		t.Errorf("negative position maps to (%d,%d)", x, y)
	}
}

func TestRasterToCellsAveragesThinLines(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 8))
	for x := 0; x < 4; x++ {
		for y := 0; y < 8; y++ {
			img.SetRGBA(x, y, color.RGBA{A: 0xff})
		}
		img.SetRGBA(x, 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	}

	g := rasterToCells(img, 1, 1)
	// One white row out of the four covered by the top sample.
	r, _, _, _ := g.at(0, 0).fg.RGBA()
	if r>>8 < 0x38 || r>>8 > 0x48 {
		t.Errorf("top sample = %s, want a quarter-bright gray", hexColor(g.at(0, 0).fg))
	}
	if !sameColor(g.at(0, 0).bg, color.Black) {
		t.Errorf("bottom sample = %s, want black", hexColor(g.at(0, 0).bg))
	}
}
