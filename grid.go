package main

import (
	"image/color"
	"math"
)

// Fade window, in zoom levels relative to a grid level: a level starts to
// fade in two levels before it becomes the coarsest visible one.
const (
	startFadeIn  = -2.0
	startFadeOut = 0.0
)

type gridLevel struct {
	Level     int
	Size      float64 // model-space spacing
	Fade      float64
	LineWidth float64
}

// gridLevels returns the grid levels visible at scale, coarsest first.
func gridLevels(scale float64, g GridConfig) []gridLevel {
	fine := float64(g.FineGridLinesPerCoarse)
	zoomLevel := math.Log(scale) / math.Log(fine)
	base := int(math.Floor(zoomLevel))

	levels := make([]gridLevel, 0, g.NumLevels)
	for i := 0; i < g.NumLevels; i++ {
		level := base + i
		factor := zoomLevel - float64(level)
		fade := clamp01((factor - startFadeIn) / (startFadeOut - startFadeIn))
		levels = append(levels, gridLevel{
			Level:     level,
			Size:      g.BaseGridSize / math.Pow(fine, float64(level)),
			Fade:      fade,
			LineWidth: g.CoarseLineWidth * (g.FineLineWidth + (1-g.FineLineWidth)*fade),
		})
	}
	return levels
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// gridLineStart returns the first line position for a given pan offset and
// on-screen spacing. The half pixel centres 1px lines on device pixels.
func gridLineStart(offset, step float64) float64 {
	return math.Floor(math.Mod(offset, step)) + 0.5
}

func drawGrid(s Surface, v *Viewport, g GridConfig, col color.Color) {
	width, height := s.Size()
	for _, lvl := range gridLevels(v.Scale, g) {
		step := lvl.Size * v.Scale
		if lvl.Fade <= 0 || step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
			continue
		}

		s.SetStrokeColor(col)
		s.SetLineWidth(lvl.LineWidth)
		s.SetGlobalAlpha(lvl.Fade)

		for x := gridLineStart(v.Offset.X, step); x <= width; x += step {
			s.BeginPath()
			s.MoveTo(x, 0)
			s.LineTo(x, height)
			s.Stroke()
		}
		for y := gridLineStart(v.Offset.Y, step); y <= height; y += step {
			s.BeginPath()
			s.MoveTo(0, y)
			s.LineTo(width, y)
			s.Stroke()
		}
	}
	s.SetGlobalAlpha(1)
}
