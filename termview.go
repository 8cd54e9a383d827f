package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf shows the top sample as foreground and the bottom sample as
// background, giving two vertical pixels per terminal cell.
const upperHalf = '▀'

type cell struct {
	ch rune
	fg color.Color
	bg color.Color
}

type cellGrid struct {
	width  int
	height int
	cells  []cell
}

func (g *cellGrid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// rasterToCells downsamples img to cols×rows half-block cells.
func rasterToCells(img image.Image, cols, rows int) *cellGrid {
	if cols < 1 || rows < 1 {
		return &cellGrid{}
	}
	// Each sample is the mean of the source pixels it covers.
	small := imaging.Resize(img, cols, rows*2, imaging.Box)

	g := &cellGrid{width: cols, height: rows, cells: make([]cell, cols*rows)}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[y*cols+x] = cell{
				ch: upperHalf,
				fg: small.NRGBAAt(x, 2*y),
				bg: small.NRGBAAt(x, 2*y+1),
			}
		}
	}
	return g
}

// putText writes s starting at (x, y), keeping the cell backgrounds.
func (g *cellGrid) putText(x, y int, s string, fg color.Color) {
	for i, r := range []rune(s) {
		c := g.at(x+i, y)
		if c == nil {
			continue
		}
		if c.ch == upperHalf {
			c.bg = c.fg
		}
		c.ch = r
		c.fg = fg
	}
}

// putStyledText writes s with both colors set.
func (g *cellGrid) putStyledText(x, y int, s string, fg, bg color.Color) {
	for i, r := range []rune(s) {
		if c := g.at(x+i, y); c != nil {
			*c = cell{ch: r, fg: fg, bg: bg}
		}
	}
}

// lines renders each row, merging runs of identically colored cells into a
// single styled string.
func (g *cellGrid) lines() []string {
	out := make([]string, 0, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		row := g.cells[y*g.width : (y+1)*g.width]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameColor(row[x].fg, row[start].fg) && sameColor(row[x].bg, row[start].bg) {
				continue
			}
			runes := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				runes = append(runes, c.ch)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(row[start].fg))).
				Background(lipgloss.Color(hexColor(row[start].bg)))
			b.WriteString(style.Render(string(runes)))
			start = x
		}
		out = append(out, b.String())
	}
	return out
}

func hexColor(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func sameColor(a, b color.Color) bool {
	return hexColor(a) == hexColor(b)
}

// devicePos maps a terminal cell inside the canvas area to the device pixel
// at its centre.
func devicePos(cellX, cellY int, t TerminalConfig) Point {
	return Pt(
		float64(cellX*t.CellWidth)+float64(t.CellWidth)/2,
		float64(cellY*t.CellHeight)+float64(t.CellHeight)/2,
	)
}

// cellPos is the inverse of devicePos, truncating to the containing cell.
func cellPos(p Point, t TerminalConfig) (int, int) {
	return int(math.Floor(p.X / float64(t.CellWidth))), int(math.Floor(p.Y / float64(t.CellHeight)))
}
