package main

import (
	"fmt"
	"image"
	"math"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Built-in cursor art is drawn at this size and scaled down to cursorSize.
const cursorArtSize = 64

type cursorIcon struct {
	img  image.Image
	hotX int
	hotY int
}

type cursorLoadedMsg struct {
	kind CursorKind
	icon *cursorIcon
	err  error
}

// cursorAssets names the image files that replace the built-in art for the
// tool cursors when a cursor directory is configured.
var cursorAssets = map[CursorKind]string{
	CursorPointer: "pointer.png",
	CursorPen:     "pen.png",
}

// loadCursorCmd generates a cursor icon off the update loop.
func loadCursorCmd(kind CursorKind, size int, dir string) tea.Cmd {
	return func() tea.Msg {
		icon, err := generateCursor(kind, size, dir)
		return cursorLoadedMsg{kind: kind, icon: icon, err: err}
	}
}

func generateCursor(kind CursorKind, size int, dir string) (*cursorIcon, error) {
	var src image.Image
	if name, ok := cursorAssets[kind]; ok && dir != "" {
		img, err := imaging.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading %s cursor: %w", kind, err)
		}
		src = img
	} else {
		src = drawCursorArt(kind)
	}
	return &cursorIcon{
		img:  imaging.Resize(src, size, size, imaging.Lanczos),
		hotX: size / 2,
		hotY: size / 2,
	}, nil
}

func drawCursorArt(kind CursorKind) image.Image {
	const s = cursorArtSize
	dc := gg.NewContext(s, s)
	dc.SetLineWidth(3)

	switch kind {
	case CursorPen:
		dc.Push()
		dc.RotateAbout(gg.Radians(45), s/2, s/2)
		dc.DrawRectangle(s/2-6, 4, 12, s/2)
		dc.SetRGB(0.95, 0.95, 0.95)
		dc.FillPreserve()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.Stroke()
		dc.MoveTo(s/2-6, s/2+4)
		dc.LineTo(s/2+6, s/2+4)
		dc.LineTo(s/2, s-6)
		dc.ClosePath()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.Fill()
		dc.Pop()
	case CursorHover:
		dc.DrawCircle(s/2, s/2, s/3)
		dc.SetRGB(0.95, 0.95, 0.95)
		dc.Stroke()
		dc.DrawCircle(s/2, s/2, 4)
		dc.Fill()
	case CursorGrabbing:
		dc.DrawRoundedRectangle(s/4, s/3, s/2, s/3, 8)
		dc.SetRGB(0.95, 0.95, 0.95)
		dc.FillPreserve()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.Stroke()
	case CursorZoomIn:
		dc.DrawCircle(s/2-6, s/2-6, s/4)
		dc.SetRGB(0.95, 0.95, 0.95)
		dc.Stroke()
		dc.DrawLine(s/2+6, s/2+6, s-6, s-6)
		dc.Stroke()
		dc.DrawLine(s/2-14, s/2-6, s/2+2, s/2-6)
		dc.DrawLine(s/2-6, s/2-14, s/2-6, s/2+2)
		dc.Stroke()
	default:
		// Arrow with its tip at the centre, where the hotspot is.
		tip := float64(s / 2)
		dc.MoveTo(tip, tip)
		dc.LineTo(tip, tip+26)
		dc.LineTo(tip+7, tip+19)
		dc.LineTo(tip+18, tip+18)
		dc.ClosePath()
		dc.SetRGB(0.95, 0.95, 0.95)
		dc.FillPreserve()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.Stroke()
	}
	return dc.Image()
}

// overlayCursor composites the icon so that its hotspot lands on pos.
func overlayCursor(frame image.Image, icon *cursorIcon, pos Point) image.Image {
	if icon == nil {
		return frame
	}
	at := image.Pt(int(math.Round(pos.X))-icon.hotX, int(math.Round(pos.Y))-icon.hotY)
	return imaging.Overlay(frame, icon.img, at, 1.0)
}
