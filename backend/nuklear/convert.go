package nuklear

import (
	"github.com/golang-ui/nuklear/nk"

	"github.com/go-theft-auto/nkdemo"
)

func flag(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func rect(r nkdemo.Rect) nk.Rect { return nk.NkRect(r.X, r.Y, r.W, r.H) }

func vec2(v nkdemo.Vec2) nk.Vec2 { return nk.NkVec2(v.X, v.Y) }

func color(c nkdemo.Color) nk.Color {
	return nk.NkRgba(int32(c.R), int32(c.G), int32(c.B), int32(c.A))
}

func fromColor(c nk.Color) nkdemo.Color {
	r, g, b, a := c.RGBAi()
	var out nkdemo.Color
	out.SetRGBA(int(r), int(g), int(b), int(a))
	return out
}

func textAlign(a nkdemo.TextAlign) nk.Flags {
	switch a {
	case nkdemo.TextCentered:
		return nk.Flags(nk.TextCentered)
	case nkdemo.TextRight:
		return nk.Flags(nk.TextRight)
	default:
		return nk.Flags(nk.TextLeft)
	}
}

var windowFlagBits = []struct {
	demo nkdemo.WindowFlags
	nk   nk.Flags
}{
	{nkdemo.WindowBorder, nk.Flags(nk.WindowBorder)},
	{nkdemo.WindowMovable, nk.Flags(nk.WindowMovable)},
	{nkdemo.WindowScalable, nk.Flags(nk.WindowScalable)},
	{nkdemo.WindowClosable, nk.Flags(nk.WindowClosable)},
	{nkdemo.WindowMinimizable, nk.Flags(nk.WindowMinimizable)},
	{nkdemo.WindowNoScrollbar, nk.Flags(nk.WindowNoScrollbar)},
	{nkdemo.WindowTitle, nk.Flags(nk.WindowTitle)},
	{nkdemo.WindowScaleLeft, nk.Flags(nk.WindowScaleLeft)},
}

func windowFlags(f nkdemo.WindowFlags) nk.Flags {
	var out nk.Flags
	for _, b := range windowFlagBits {
		if f.Has(b.demo) {
			out |= b.nk
		}
	}
	return out
}

func symbol(s nkdemo.Symbol) nk.SymbolType {
	switch s {
	case nkdemo.SymbolCircleSolid:
		return nk.SymbolCircleSolid
	case nkdemo.SymbolCircleOutline:
		return nk.SymbolCircleOutline
	case nkdemo.SymbolRectSolid:
		return nk.SymbolRectSolid
	case nkdemo.SymbolRectOutline:
		return nk.SymbolRectOutline
	case nkdemo.SymbolTriangleUp:
		return nk.SymbolTriangleUp
	case nkdemo.SymbolTriangleDown:
		return nk.SymbolTriangleDown
	case nkdemo.SymbolTriangleLeft:
		return nk.SymbolTriangleLeft
	case nkdemo.SymbolTriangleRight:
		return nk.SymbolTriangleRight
	default:
		return nk.SymbolNone
	}
}
