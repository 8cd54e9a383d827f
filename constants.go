package main

type PointKind int

const (
	OnCurve PointKind = iota
	OffCurve
)

func (k PointKind) String() string {
	if k == OnCurve {
		return "on"
	}
	return "off"
}

type Tool int

const (
	ToolPointer Tool = iota
	ToolPen
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	default:
		return "pointer"
	}
}

type EditorState int

const (
	StateIdle EditorState = iota
	StateDraggingPoint
	StateDraggingCanvas
)

func (s EditorState) String() string {
	switch s {
	case StateDraggingPoint:
		return "dragging point"
	case StateDraggingCanvas:
		return "panning"
	default:
		return "idle"
	}
}

type CursorKind int

const (
	CursorPointer CursorKind = iota
	CursorPen
	CursorHover
	CursorGrabbing
	CursorZoomIn
)

func (c CursorKind) String() string {
	switch c {
	case CursorPen:
		return "pen"
	case CursorHover:
		return "hover"
	case CursorGrabbing:
		return "grabbing"
	case CursorZoomIn:
		return "zoom-in"
	default:
		return "pointer"
	}
}

type MenuAction int

const (
	MenuCopyPosition MenuAction = iota
	MenuDeletePoint
)

const (
	// NoPoint is the zero PointID; it never names a control point.
	NoPoint PointID = 0

	// Screen pixels kept free around the spline by FitView.
	fitMargin = 20

	labelOffsetX = 10
	labelOffsetY = -10

	// Rows taken by the toolbar above and the status line below the canvas.
	toolbarRows = 1
	statusRows  = 1
)
