package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	toolbarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#0F141A"))
	activeTool     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0F14")).Background(lipgloss.Color("#7C3AED")).Bold(true)
	inactiveTool   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#51CF66"))
	helpTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bezed:", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := setupLogging(config)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	m, err := initialModel(config)
	if err != nil {
		slog.Error("startup failed", "err", err)
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("program exited", "err", err)
		return err
	}
	return nil
}

// setupLogging sends slog output to the configured log file. Without one,
// logs are dropped so they cannot corrupt the alternate screen.
func setupLogging(config *Config) (io.Closer, error) {
	if config.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}
	f, err := tea.LogToFile(config.LogFile, "bezed")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.slogLevel()})))
	return f, nil
}

func (m model) Init() tea.Cmd {
	m.editor.ActivateTool(ToolPointer)
	return m.screen.takeCmds()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.resize(msg.Width, msg.Height-toolbarRows-statusRows)
		if !m.screen.sized {
			m.screen.sized = true
			w, h := m.screen.pixelSize()
			if !m.editor.Visible(float64(w), float64(h)) {
				m.editor.FitView(float64(w), float64(h))
			}
		}
		m.screen.Redraw()
		return m, nil

	case tea.KeyMsg:
		if cmd := m.handleKey(msg.String()); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case cursorLoadedMsg:
		m.screen.cursorLoaded(msg)

	case cursorRestoreMsg:
		if msg.seq == m.screen.restoreSeq {
			m.editor.RestoreCursor()
		}
	}
	return m, m.screen.takeCmds()
}

func (m *model) handleKey(key string) tea.Cmd {
	if m.help {
		m.help = false
		return nil
	}
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "?":
		m.help = true
	case "esc":
		m.screen.menu = nil
	case "delete":
		m.editor.DeleteSelected()
	case "p":
		m.editor.ActivateTool(ToolPointer)
	case "b":
		m.editor.ActivateTool(ToolPen)
	case "S":
		filename := "spline-" + time.Now().Format("20060102-150405") + ".png"
		if path, err := m.exportPNG(filename); err != nil {
			m.errorMessage = fmt.Sprintf("Export failed: %v", err)
			slog.Error("png export failed", "err", err)
		} else {
			m.successMessage = "Exported " + path
		}
	default:
		m.handleNavigation(key)
	}
	return nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Y < toolbarRows {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if tool, ok := toolbarHit(msg.X); ok {
				m.editor.ActivateTool(tool)
			}
		}
		if msg.Action == tea.MouseActionRelease {
			m.editor.Release()
		}
		return
	}

	cx, cy := msg.X, msg.Y-toolbarRows
	pos := devicePos(cx, cy, m.config.Terminal)
	m.screen.pointer = pos
	m.screen.pointerInside = cy < m.screen.rows

	if msg.Action == tea.MouseActionPress && m.screen.menu != nil {
		menu := m.screen.menu
		m.screen.menu = nil
		if action, ok := menu.actionAt(cx, cy); ok {
			m.runMenuAction(action, menu.point)
			return
		}
		if menu.contains(cx, cy) {
			return
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.editor.PrimaryPress(pos)
		case tea.MouseButtonRight:
			m.editor.SecondaryPress(pos)
		case tea.MouseButtonWheelUp:
			m.editor.Wheel(pos, -1)
		case tea.MouseButtonWheelDown:
			m.editor.Wheel(pos, 1)
		}
	case tea.MouseActionRelease:
		m.editor.Release()
	case tea.MouseActionMotion:
		m.editor.PointerMove(pos)
	}
}

func (m *model) runMenuAction(action MenuAction, id PointID) {
	switch action {
	case MenuCopyPosition:
		cp, ok := m.editor.Document().Spline.Get(id)
		if !ok {
			return
		}
		if err := copyPosition(cp.Pos); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
			slog.Warn("clipboard write failed", "err", err)
			return
		}
		m.successMessage = "Copied " + cp.Pos.String()
	case MenuDeletePoint:
		m.editor.DeletePoint(id)
	}
	m.screen.Redraw()
}

// toolbarHit maps a toolbar column to the button under it.
func toolbarHit(x int) (Tool, bool) {
	start := 1
	for _, b := range toolbarButtons {
		w := lipgloss.Width(b.label)
		if x >= start && x < start+w {
			return b.tool, true
		}
		start += w + 1
	}
	return 0, false
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.toolbarView())
	result.WriteString("\n")
	for _, line := range m.screen.canvasLines() {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusView())
	return result.String()
}

func (m model) toolbarView() string {
	parts := []string{" "}
	for _, b := range toolbarButtons {
		if b.tool == m.screen.tool {
			parts = append(parts, activeTool.Render(b.label))
		} else {
			parts = append(parts, inactiveTool.Render(b.label))
		}
		parts = append(parts, " ")
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return toolbarStyle.Width(m.width).Render(bar)
}

func (m model) statusView() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}

	doc := m.editor.Document()
	pos := doc.View.ToModel(m.editor.Pointer())
	status := fmt.Sprintf("%s | %s | zoom %.0f%% | %.1f, %.1f | %d points",
		m.screen.tool, m.editor.State(), doc.View.Scale*100, pos.X, pos.Y, doc.Spline.Len())
	if !doc.Spline.WellFormed() {
		status += " | incomplete segment"
	}
	status += " | ? help"
	return statusStyle.Render(status)
}

func (m model) helpView() string {
	lines := []string{
		helpTitleStyle.Render("bezed help"),
		"",
		"Mouse:",
		"  left click         select and drag a point, or drag the canvas",
		"  left click (pen)   append a new point with two handles",
		"  right click        point menu (copy position, delete)",
		"  wheel              zoom around the pointer",
		"",
		"Keys:",
		"  p / b              pointer tool / pen tool",
		"  delete             delete the selected point",
		"  h/j/k/l, arrows    pan (shift for 2x)",
		"  + / -              zoom around the canvas centre",
		"  0                  reset the view",
		"  f                  fit the spline to the screen",
		"  S                  export the frame as PNG",
		"  esc                close the point menu",
		"  q / ctrl+c         quit",
		"",
		"Press any key to return.",
	}
	return strings.Join(lines, "\n")
}
