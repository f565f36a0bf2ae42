// Package nuklear implements nkdemo.GUI on top of the Nuklear GLFW3/GL3
// platform layer.
package nuklear

import (
	"fmt"

	gl3 "github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang-ui/nuklear/nk"

	"github.com/go-theft-auto/nkdemo"
)

// Draw-list buffer caps handed to the GL3 renderer each frame.
const (
	MaxVertexBuffer  = 512 * 1024
	MaxElementBuffer = 128 * 1024
)

// Backend is a Nuklear context bound to one GLFW window.
type Backend struct {
	ctx    *nk.Context
	atlas  *nk.FontAtlas
	edits  map[string]*nk.TextEdit
	closed bool
}

// New initializes Nuklear for win, installing its input callbacks, and
// bakes the default font. The window's context must be current.
func New(win *glfw.Window) (*Backend, error) {
	// The platform layer issues its GL calls through the 3.2-core binding,
	// which keeps its own function table.
	if err := gl3.Init(); err != nil {
		return nil, fmt.Errorf("nuklear gl init: %w", err)
	}

	ctx := nk.NkPlatformInit(win, nk.PlatformInstallCallbacks)
	if ctx == nil {
		return nil, fmt.Errorf("nuklear platform init failed")
	}

	b := &Backend{
		ctx:   ctx,
		atlas: nk.NewFontAtlas(),
		edits: make(map[string]*nk.TextEdit),
	}
	nk.NkFontStashBegin(&b.atlas)
	nk.NkFontStashEnd()

	return b, nil
}

// Close shuts the platform layer down. Safe to call twice.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.closed = true
	nk.NkPlatformShutdown()
}

// NewFrame implements nkdemo.GUI.
func (b *Backend) NewFrame() { nk.NkPlatformNewFrame() }

// AnyActive implements nkdemo.GUI.
func (b *Backend) AnyActive() bool { return nk.NkItemIsAnyActive(b.ctx) > 0 }

// Render implements nkdemo.GUI.
func (b *Backend) Render() {
	nk.NkPlatformRender(nk.AntiAliasingOn, MaxVertexBuffer, MaxElementBuffer)
}

func (b *Backend) Begin(title string, bounds nkdemo.Rect, flags nkdemo.WindowFlags) bool {
	return nk.NkBegin(b.ctx, title, rect(bounds), windowFlags(flags)) > 0
}

func (b *Backend) End() { nk.NkEnd(b.ctx) }

func (b *Backend) LayoutRowStatic(height float32, itemWidth, cols int) {
	nk.NkLayoutRowStatic(b.ctx, height, int32(itemWidth), int32(cols))
}

func (b *Backend) LayoutRowDynamic(height float32, cols int) {
	nk.NkLayoutRowDynamic(b.ctx, height, int32(cols))
}

func (b *Backend) LayoutRowBegin(format nkdemo.LayoutFormat, height float32, cols int) {
	f := nk.Static
	if format == nkdemo.LayoutDynamic {
		f = nk.Dynamic
	}
	nk.NkLayoutRowBegin(b.ctx, f, height, int32(cols))
}

func (b *Backend) LayoutRowPush(value float32) { nk.NkLayoutRowPush(b.ctx, value) }

func (b *Backend) LayoutRowEnd() { nk.NkLayoutRowEnd(b.ctx) }

func (b *Backend) WidgetWidth() float32 { return nk.NkWidgetWidth(b.ctx) }

func (b *Backend) Label(text string, align nkdemo.TextAlign) {
	nk.NkLabel(b.ctx, text, textAlign(align))
}

func (b *Backend) LabelColored(text string, align nkdemo.TextAlign, c nkdemo.Color) {
	nk.NkLabelColored(b.ctx, text, textAlign(align), color(c))
}

func (b *Backend) LabelWrap(text string) { nk.NkLabelWrap(b.ctx, text) }

func (b *Backend) Button(label string) bool { return nk.NkButtonLabel(b.ctx, label) > 0 }

func (b *Backend) ButtonColor(c nkdemo.Color) bool { return nk.NkButtonColor(b.ctx, color(c)) > 0 }

func (b *Backend) ButtonSymbol(s nkdemo.Symbol) bool {
	return nk.NkButtonSymbol(b.ctx, symbol(s)) > 0
}

func (b *Backend) ButtonSymbolLabel(s nkdemo.Symbol, label string, align nkdemo.TextAlign) bool {
	return nk.NkButtonSymbolLabel(b.ctx, symbol(s), label, textAlign(align)) > 0
}

func (b *Backend) SetButtonRepeat(repeat bool) {
	if repeat {
		nk.NkButtonSetBehavior(b.ctx, nk.ButtonRepeater)
	} else {
		nk.NkButtonSetBehavior(b.ctx, nk.ButtonDefault)
	}
}

func (b *Backend) Option(label string, active bool) bool {
	return nk.NkOptionLabel(b.ctx, label, flag(active)) > 0
}

func (b *Backend) Checkbox(label string, active *bool) bool {
	v := flag(*active)
	changed := nk.NkCheckboxLabel(b.ctx, label, &v) > 0
	*active = v > 0
	return changed
}

func (b *Backend) Selectable(label string, align nkdemo.TextAlign, selected *bool) bool {
	v := flag(*selected)
	changed := nk.NkSelectableLabel(b.ctx, label, textAlign(align), &v) > 0
	*selected = v > 0
	return changed
}

func (b *Backend) SliderInt(min int, value *int, max, step int) bool {
	v := int32(*value)
	changed := nk.NkSliderInt(b.ctx, int32(min), &v, int32(max), int32(step)) > 0
	*value = int(v)
	return changed
}

func (b *Backend) SliderFloat(min float32, value *float32, max, step float32) bool {
	return nk.NkSliderFloat(b.ctx, min, value, max, step) > 0
}

func (b *Backend) Progress(cur *int, max int, modifiable bool) bool {
	v := nk.Size(*cur)
	changed := nk.NkProgress(b.ctx, &v, nk.Size(max), flag(modifiable)) > 0
	*cur = int(v)
	return changed
}

func (b *Backend) PropertyInt(name string, min int, value *int, max, step int, incPerPixel float32) {
	v := int32(*value)
	nk.NkPropertyInt(b.ctx, name, int32(min), &v, int32(max), int32(step), incPerPixel)
	*value = int(v)
}

func (b *Backend) ColorPicker(c nkdemo.Color) nkdemo.Color {
	cf := nk.NkColorCf(color(c))
	cf = nk.NkColorPicker(b.ctx, cf, nk.ColorFormatRGBA)
	return fromColor(nk.NkRgbCf(cf))
}

func (b *Backend) Combo(items []string, selected int, itemHeight int, size nkdemo.Vec2) int {
	return int(nk.NkCombo(b.ctx, items, int32(len(items)), int32(selected), int32(itemHeight), vec2(size)))
}

// EditField keeps one Nuklear text buffer per key and mirrors its contents
// into text after every frame.
func (b *Backend) EditField(key string, text *string) {
	te, ok := b.edits[key]
	if !ok {
		te = &nk.TextEdit{}
		nk.NkTexteditInitDefault(te)
		b.edits[key] = te
	}
	nk.NkEditBuffer(b.ctx, nk.EditField, te, nk.NkFilterDefault)
	*text = te.GetGoString()
}

func (b *Backend) ComboBeginColor(c nkdemo.Color, size nkdemo.Vec2) bool {
	return nk.NkComboBeginColor(b.ctx, color(c), vec2(size)) > 0
}

func (b *Backend) ComboEnd() { nk.NkComboEnd(b.ctx) }

func (b *Backend) MenubarBegin() { nk.NkMenubarBegin(b.ctx) }

func (b *Backend) MenubarEnd() { nk.NkMenubarEnd(b.ctx) }

func (b *Backend) MenuBegin(label string, align nkdemo.TextAlign, size nkdemo.Vec2) bool {
	return nk.NkMenuBeginLabel(b.ctx, label, textAlign(align), vec2(size)) > 0
}

func (b *Backend) MenuItem(label string, align nkdemo.TextAlign) bool {
	return nk.NkMenuItemLabel(b.ctx, label, textAlign(align)) > 0
}

func (b *Backend) MenuEnd() { nk.NkMenuEnd(b.ctx) }

func (b *Backend) PopupBegin(kind nkdemo.PopupKind, title string, flags nkdemo.WindowFlags, bounds nkdemo.Rect) bool {
	t := nk.PopupStatic
	if kind == nkdemo.PopupDynamic {
		t = nk.PopupDynamic
	}
	return nk.NkPopupBegin(b.ctx, t, title, windowFlags(flags), rect(bounds)) > 0
}

func (b *Backend) PopupClose() { nk.NkPopupClose(b.ctx) }

func (b *Backend) PopupEnd() { nk.NkPopupEnd(b.ctx) }

// TreePush hashes sections by title, so titles must be unique per panel.
func (b *Backend) TreePush(kind nkdemo.TreeKind, title string, state nkdemo.CollapseState) bool {
	t := nk.TreeTab
	if kind == nkdemo.TreeNode {
		t = nk.TreeNode
	}
	s := nk.Minimized
	if state == nkdemo.Maximized {
		s = nk.Maximized
	}
	return nk.NkTreePushHashed(b.ctx, t, title, s, title, int32(len(title)), 0) > 0
}

func (b *Backend) TreePop() { nk.NkTreePop(b.ctx) }

func (b *Backend) ChartBegin(kind nkdemo.ChartKind, count int, min, max float32) bool {
	t := nk.ChartLines
	if kind == nkdemo.ChartColumn {
		t = nk.ChartColumn
	}
	return nk.NkChartBegin(b.ctx, t, int32(count), min, max) > 0
}

func (b *Backend) ChartPush(value float32) { nk.NkChartPush(b.ctx, value) }

func (b *Backend) ChartEnd() { nk.NkChartEnd(b.ctx) }

var _ nkdemo.GUI = (*Backend)(nil)
