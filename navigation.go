package main

import "honnef.co/go/curve"

func (m *model) handleNavigation(key string) {
	switch key {
	case "+", "=":
		m.editor.ZoomAround(m.canvasCentre(), m.config.ZoomFactor)
	case "-", "_":
		m.editor.ZoomAround(m.canvasCentre(), 1/m.config.ZoomFactor)
	case "0":
		m.editor.ResetView()
	case "f":
		w, h := m.screen.pixelSize()
		m.editor.FitView(float64(w), float64(h))
	default:
		if delta, ok := panDelta(key, m.config.PanStep); ok {
			m.editor.PanBy(delta)
		}
	}
}

// panDelta moves the view so the content follows the key direction, the
// way the pointer drag does.
func panDelta(key string, step float64) (curve.Vec2, bool) {
	step *= getMoveSpeed(key)
	switch key {
	case "h", "left", "H", "shift+left":
		return curve.Vec(step, 0), true
	case "l", "right", "L", "shift+right":
		return curve.Vec(-step, 0), true
	case "k", "up", "K", "shift+up":
		return curve.Vec(0, step), true
	case "j", "down", "J", "shift+down":
		return curve.Vec(0, -step), true
	}
	return curve.Vec2{}, false
}

func getMoveSpeed(key string) float64 {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) canvasCentre() Point {
	w, h := m.screen.pixelSize()
	return Pt(float64(w)/2, float64(h)/2)
}
