package nkdemo

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns the channels as ints, the form the integer property editors use.
func (c Color) RGBA() (r, g, b, a int) {
	return int(c.R), int(c.G), int(c.B), int(c.A)
}

// SetRGBA sets the channels from ints, clamping each to [0,255].
func (c *Color) SetRGBA(r, g, b, a int) {
	c.R = uint8(clampInt(r, 0, 255))
	c.G = uint8(clampInt(g, 0, 255))
	c.B = uint8(clampInt(b, 0, 255))
	c.A = uint8(clampInt(a, 0, 255))
}

// Floats returns the color normalized to [0,1] per channel.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Common colors.
var (
	ColorBlack  = Color{0, 0, 0, 255}
	ColorBlue   = Color{0, 0, 255, 255}
	ColorYellow = Color{255, 255, 0, 255}
)

// WindowFlags is the panel flag bitmask.
type WindowFlags uint32

const (
	WindowBorder WindowFlags = 1 << iota
	WindowMovable
	WindowScalable
	WindowClosable
	WindowMinimizable
	WindowNoScrollbar
	WindowTitle
	WindowScaleLeft
)

// Has reports whether all bits of f are set.
func (w WindowFlags) Has(f WindowFlags) bool {
	return w&f == f
}

// TextAlign controls label alignment.
type TextAlign int

const (
	TextLeft TextAlign = iota
	TextCentered
	TextRight
)

// LayoutFormat selects static (pixel) or dynamic (ratio) row pushes.
type LayoutFormat int

const (
	LayoutStatic LayoutFormat = iota
	LayoutDynamic
)

// TreeKind selects the visual style of a collapsible section.
type TreeKind int

const (
	TreeTab TreeKind = iota
	TreeNode
)

// CollapseState is the initial state of a collapsible section.
type CollapseState int

const (
	Minimized CollapseState = iota
	Maximized
)

// PopupKind selects a static or dynamic popup.
type PopupKind int

const (
	PopupStatic PopupKind = iota
	PopupDynamic
)

// ChartKind selects the chart style.
type ChartKind int

const (
	ChartLines ChartKind = iota
	ChartColumn
)

// Symbol identifies a button symbol.
type Symbol int

const (
	SymbolCircleSolid Symbol = iota
	SymbolCircleOutline
	SymbolRectSolid
	SymbolRectOutline
	SymbolTriangleUp
	SymbolTriangleDown
	SymbolTriangleLeft
	SymbolTriangleRight
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
