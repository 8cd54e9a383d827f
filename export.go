package main

import "fmt"

// exportPNG renders the current view, without cursor or menu, and writes it
// to the save directory.
func (m *model) exportPNG(filename string) (string, error) {
	w, h := m.screen.pixelSize()
	frame := m.screen.renderer.NewFrame(w, h)
	m.screen.renderer.Draw(frame, m.editor.Document())

	path, err := m.config.GetSavePath(filename)
	if err != nil {
		return "", err
	}
	if err := frame.SavePNG(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
