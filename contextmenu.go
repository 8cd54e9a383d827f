package main

import (
	"image/color"
	"strings"
)

type menuEntry struct {
	label  string
	action MenuAction
}

var contextMenuEntries = []menuEntry{
	{label: "Copy position", action: MenuCopyPosition},
	{label: "Delete point", action: MenuDeletePoint},
}

var (
	menuFg     = color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	menuBg     = color.NRGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xff}
	menuBorder = color.NRGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
)

// contextMenu is a popup anchored at a canvas cell, tied to one point.
type contextMenu struct {
	x, y  int
	point PointID
}

func newContextMenu(x, y int, id PointID) *contextMenu {
	return &contextMenu{x: x, y: y, point: id}
}

func (m *contextMenu) size() (int, int) {
	inner := 0
	for _, e := range contextMenuEntries {
		if len(e.label) > inner {
			inner = len(e.label)
		}
	}
	return inner + 4, len(contextMenuEntries) + 2
}

// clamp keeps the popup inside a cols×rows canvas.
func (m *contextMenu) clamp(cols, rows int) {
	w, h := m.size()
	if m.x+w > cols {
		m.x = cols - w
	}
	if m.y+h > rows {
		m.y = rows - h
	}
	if m.x < 0 {
		m.x = 0
	}
	if m.y < 0 {
		m.y = 0
	}
}

func (m *contextMenu) contains(cx, cy int) bool {
	w, h := m.size()
	return cx >= m.x && cx < m.x+w && cy >= m.y && cy < m.y+h
}

// actionAt returns the entry under a canvas cell, if any.
func (m *contextMenu) actionAt(cx, cy int) (MenuAction, bool) {
	if !m.contains(cx, cy) {
		return 0, false
	}
	row := cy - m.y - 1
	if row < 0 || row >= len(contextMenuEntries) {
		return 0, false
	}
	return contextMenuEntries[row].action, true
}

func (m *contextMenu) draw(g *cellGrid) {
	w, h := m.size()
	g.putStyledText(m.x, m.y, "┌"+strings.Repeat("─", w-2)+"┐", menuBorder, menuBg)
	for i, e := range contextMenuEntries {
		g.putStyledText(m.x, m.y+1+i, "│", menuBorder, menuBg)
		g.putStyledText(m.x+1, m.y+1+i, " "+e.label+strings.Repeat(" ", w-3-len(e.label)), menuFg, menuBg)
		g.putStyledText(m.x+w-1, m.y+1+i, "│", menuBorder, menuBg)
	}
	g.putStyledText(m.x, m.y+h-1, "└"+strings.Repeat("─", w-2)+"┘", menuBorder, menuBg)
}
