package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	configFileName = ".bezedrc"
	envPrefix      = "bezed"
)

type Config struct {
	BackgroundColor string              `split_words:"true"`
	ZoomFactor      float64             `split_words:"true"`
	CursorSize      int                 `split_words:"true"`
	ControlPoints   ControlPointsConfig `split_words:"true"`
	Lines           LinesConfig         `split_words:"true"`
	Labels          LabelsConfig        `split_words:"true"`
	Grid            GridConfig          `split_words:"true"`
	Terminal        TerminalConfig      `split_words:"true"`

	SaveDirectory      string        `split_words:"true"`
	CursorDir          string        `split_words:"true"`
	LogFile            string        `split_words:"true"`
	LogLevel           string        `split_words:"true"`
	CursorRestoreDelay time.Duration `split_words:"true"`
	PanStep            float64       `split_words:"true"`
}

type ControlPointsConfig struct {
	Radius            float64 `split_words:"true"`
	SnapDistance      float64 `split_words:"true"`
	HandleOffset      float64 `split_words:"true"`
	OnCurveColor      string  `split_words:"true"`
	OffCurveColor     string  `split_words:"true"`
	SelectedColor     string  `split_words:"true"`
	SelectedHaloColor string  `split_words:"true"`
	SelectedHaloBlur  float64 `split_words:"true"`
}

type LinesConfig struct {
	ControlLineColor string  `split_words:"true"`
	ControlLineWidth float64 `split_words:"true"`
	BezierCurveColor string  `split_words:"true"`
	BezierLineWidth  float64 `split_words:"true"`
}

type LabelsConfig struct {
	Font  string `split_words:"true"`
	Color string `split_words:"true"`
}

type GridConfig struct {
	Color                  string  `split_words:"true"`
	BaseGridSize           float64 `split_words:"true"`
	FineGridLinesPerCoarse int     `split_words:"true"`
	NumLevels              int     `split_words:"true"`
	CoarseLineWidth        float64 `split_words:"true"`
	FineLineWidth          float64 `split_words:"true"`
}

// TerminalConfig sets how many device pixels one terminal cell covers.
type TerminalConfig struct {
	CellWidth  int `split_words:"true"`
	CellHeight int `split_words:"true"`
}

func DefaultConfig() *Config {
	return &Config{
		BackgroundColor: "#1b1d23",
		ZoomFactor:      1.1,
		CursorSize:      24,
		ControlPoints: ControlPointsConfig{
			Radius:            5,
			SnapDistance:      10,
			HandleOffset:      50,
			OnCurveColor:      "#ff6b6b",
			OffCurveColor:     "#4dabf7",
			SelectedColor:     "#ffffff",
			SelectedHaloColor: "#ffd43b",
			SelectedHaloBlur:  12,
		},
		Lines: LinesConfig{
			ControlLineColor: "#868e96",
			ControlLineWidth: 1,
			BezierCurveColor: "#51cf66",
			BezierLineWidth:  2,
		},
		Labels: LabelsConfig{
			Font:  "12px mono",
			Color: "#dee2e6",
		},
		Grid: GridConfig{
			Color:                  "#495057",
			BaseGridSize:           100,
			FineGridLinesPerCoarse: 10,
			NumLevels:              3,
			CoarseLineWidth:        1,
			FineLineWidth:          0.5,
		},
		Terminal: TerminalConfig{
			CellWidth:  4,
			CellHeight: 8,
		},
		LogLevel:           "info",
		CursorRestoreDelay: 300 * time.Millisecond,
		PanStep:            20,
	}
}

// loadConfig layers ~/.bezedrc and BEZED_* environment variables over the
// defaults.
func loadConfig() (*Config, error) {
	config := DefaultConfig()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, configFileName)
		if file, err := os.Open(configPath); err == nil {
			config.readFrom(file, homeDir)
			file.Close()
		}
	}

	if err := envconfig.Process(envPrefix, config); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// readFrom applies key = value lines. Unknown keys and malformed values are
// logged and skipped.
func (c *Config) readFrom(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			slog.Warn("config: ignoring line without '='", "line", lineNo)
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		saved := *c
		if err := c.set(key, value, homeDir); err != nil {
			*c = saved
			slog.Warn("config: ignoring setting", "line", lineNo, "key", key, "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("config: read failed", "err", err)
	}
}

func (c *Config) set(key, value, homeDir string) error {
	var err error
	switch strings.ToLower(key) {
	case "backgroundcolor", "background_color":
		c.BackgroundColor = value
	case "zoomfactor", "zoom_factor":
		c.ZoomFactor, err = parseFloat(value)
	case "cursorsize", "cursor_size":
		c.CursorSize, err = strconv.Atoi(value)

	case "controlpoints.radius":
		c.ControlPoints.Radius, err = parseFloat(value)
	case "controlpoints.snapdistance":
		c.ControlPoints.SnapDistance, err = parseFloat(value)
	case "controlpoints.handleoffset":
		c.ControlPoints.HandleOffset, err = parseFloat(value)
	case "controlpoints.oncurvecolor":
		c.ControlPoints.OnCurveColor = value
	case "controlpoints.offcurvecolor":
		c.ControlPoints.OffCurveColor = value
	case "controlpoints.selectedcolor":
		c.ControlPoints.SelectedColor = value
	case "controlpoints.selectedhalocolor":
		c.ControlPoints.SelectedHaloColor = value
	case "controlpoints.selectedhaloblur":
		c.ControlPoints.SelectedHaloBlur, err = parseFloat(value)

	case "lines.controllinecolor":
		c.Lines.ControlLineColor = value
	case "lines.controllinewidth":
		c.Lines.ControlLineWidth, err = parseFloat(value)
	case "lines.beziercurvecolor":
		c.Lines.BezierCurveColor = value
	case "lines.bezierlinewidth":
		c.Lines.BezierLineWidth, err = parseFloat(value)

	case "labels.font":
		c.Labels.Font = value
	case "labels.color":
		c.Labels.Color = value

	case "grid.color":
		c.Grid.Color = value
	case "grid.basegridsize":
		c.Grid.BaseGridSize, err = parseFloat(value)
	case "grid.finegridlinespercoarse":
		c.Grid.FineGridLinesPerCoarse, err = strconv.Atoi(value)
	case "grid.numlevels":
		c.Grid.NumLevels, err = strconv.Atoi(value)
	case "grid.coarselinewidth":
		c.Grid.CoarseLineWidth, err = parseFloat(value)
	case "grid.finelinewidth":
		c.Grid.FineLineWidth, err = parseFloat(value)

	case "terminal.cellwidth":
		c.Terminal.CellWidth, err = strconv.Atoi(value)
	case "terminal.cellheight":
		c.Terminal.CellHeight, err = strconv.Atoi(value)

	case "savedirectory", "save_directory", "savedir":
		c.SaveDirectory = expandPath(value, homeDir)
	case "cursordir", "cursor_dir":
		c.CursorDir = expandPath(value, homeDir)
	case "logfile", "log_file":
		c.LogFile = expandPath(value, homeDir)
	case "loglevel", "log_level":
		c.LogLevel = value
	case "cursorrestoredelay", "cursor_restore_delay":
		c.CursorRestoreDelay, err = time.ParseDuration(value)
	case "panstep", "pan_step":
		c.PanStep, err = parseFloat(value)
	default:
		return fmt.Errorf("unknown key")
	}
	return err
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) Validate() error {
	if c.ZoomFactor <= 0 || c.ZoomFactor == 1 {
		return fmt.Errorf("zoomFactor must be positive and not 1, got %g", c.ZoomFactor)
	}
	if c.CursorSize < 1 {
		return fmt.Errorf("cursorSize must be positive, got %d", c.CursorSize)
	}
	if c.ControlPoints.Radius <= 0 {
		return fmt.Errorf("controlPoints.radius must be positive, got %g", c.ControlPoints.Radius)
	}
	if c.ControlPoints.SnapDistance <= 0 {
		return fmt.Errorf("controlPoints.snapDistance must be positive, got %g", c.ControlPoints.SnapDistance)
	}
	if c.Grid.BaseGridSize <= 0 {
		return fmt.Errorf("grid.baseGridSize must be positive, got %g", c.Grid.BaseGridSize)
	}
	if c.Grid.FineGridLinesPerCoarse < 2 {
		return fmt.Errorf("grid.fineGridLinesPerCoarse must be at least 2, got %d", c.Grid.FineGridLinesPerCoarse)
	}
	if c.Grid.NumLevels < 1 {
		return fmt.Errorf("grid.numLevels must be at least 1, got %d", c.Grid.NumLevels)
	}
	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if _, err := parseFontSize(c.Labels.Font); err != nil {
		return fmt.Errorf("labels.font: %w", err)
	}
	if _, err := newPalette(c); err != nil {
		return err
	}
	return nil
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("creating save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func (c *Config) slogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// palette holds the parsed colors used for one frame.
type palette struct {
	background   color.Color
	onCurve      color.Color
	offCurve     color.Color
	selected     color.Color
	selectedHalo color.Color
	controlLine  color.Color
	bezierCurve  color.Color
	label        color.Color
	grid         color.Color
}

func newPalette(c *Config) (palette, error) {
	var p palette
	fields := []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"backgroundColor", c.BackgroundColor, &p.background},
		{"controlPoints.onCurveColor", c.ControlPoints.OnCurveColor, &p.onCurve},
		{"controlPoints.offCurveColor", c.ControlPoints.OffCurveColor, &p.offCurve},
		{"controlPoints.selectedColor", c.ControlPoints.SelectedColor, &p.selected},
		{"controlPoints.selectedHaloColor", c.ControlPoints.SelectedHaloColor, &p.selectedHalo},
		{"lines.controlLineColor", c.Lines.ControlLineColor, &p.controlLine},
		{"lines.bezierCurveColor", c.Lines.BezierCurveColor, &p.bezierCurve},
		{"labels.color", c.Labels.Color, &p.label},
		{"grid.color", c.Grid.Color, &p.grid},
	}
	for _, f := range fields {
		col, err := parseColor(f.value)
		if err != nil {
			return palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// parseColor accepts #rgb, #rrggbb, #rrggbbaa and "transparent".
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.Transparent, nil
	}
	alpha := uint8(0xff)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// parseFontSize extracts the pixel size from a CSS-like font string such as
// "12px mono" or "bold 14px".
func parseFontSize(font string) (float64, error) {
	for _, field := range strings.Fields(font) {
		num := strings.TrimSuffix(strings.TrimSuffix(field, "px"), "pt")
		if num == field {
			continue
		}
		size, err := strconv.ParseFloat(num, 64)
		if err != nil || size <= 0 {
			return 0, fmt.Errorf("invalid font size %q", field)
		}
		return size, nil
	}
	return 0, fmt.Errorf("no size in font %q", font)
}
