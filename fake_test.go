package nkdemo_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/nkdemo"
)

// fakeUI is a GUI that records every call and answers from scripted input.
// Each scripted interaction applies to one frame and is cleared by NewFrame.
type fakeUI struct {
	calls []string

	open    map[string]bool // Begin, TreePush, MenuBegin, PopupBegin, ComboBeginColor by title
	clicks  map[string]bool // Button, MenuItem, Option by label
	toggles map[string]bool // Checkbox, Selectable by label
	props   map[string]int  // PropertyInt by name
	picked  *nkdemo.Color   // ColorPicker result
	combo   *int            // Combo result
	typed   map[string]string

	active bool

	// seen records the value each property editor was declared with.
	seen map[string]int

	frames   int
	rendered int

	// onFrame scripts input for a frame after NewFrame clears the last one.
	onFrame func(f *fakeUI)
}

func newFakeUI() *fakeUI {
	f := &fakeUI{}
	f.reset()
	return f
}

func (f *fakeUI) reset() {
	f.calls = nil
	f.open = map[string]bool{"Demonstration": true, "Overview": true}
	f.clicks = map[string]bool{}
	f.toggles = map[string]bool{}
	f.props = map[string]int{}
	f.typed = map[string]string{}
	f.seen = map[string]int{}
	f.picked = nil
	f.combo = nil
}

func (f *fakeUI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeUI) has(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeUI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

// NewFrame clears the previous frame's call log and one-shot input but
// keeps which panels are open.
func (f *fakeUI) NewFrame() {
	open := f.open
	f.reset()
	f.open = open
	f.frames++
	if f.onFrame != nil {
		f.onFrame(f)
	}
}

func (f *fakeUI) AnyActive() bool { return f.active }

func (f *fakeUI) Render() { f.rendered++ }

func (f *fakeUI) Begin(title string, _ nkdemo.Rect, flags nkdemo.WindowFlags) bool {
	f.record("begin %s", title)
	return f.open[title]
}

func (f *fakeUI) End() { f.record("end") }

func (f *fakeUI) LayoutRowStatic(float32, int, int) {}

func (f *fakeUI) LayoutRowDynamic(float32, int) {}

func (f *fakeUI) LayoutRowBegin(nkdemo.LayoutFormat, float32, int) { f.record("row begin") }

func (f *fakeUI) LayoutRowPush(float32) {}

func (f *fakeUI) LayoutRowEnd() { f.record("row end") }

func (f *fakeUI) WidgetWidth() float32 { return 200 }

func (f *fakeUI) Label(text string, _ nkdemo.TextAlign) { f.record("label %s", text) }

func (f *fakeUI) LabelColored(text string, _ nkdemo.TextAlign, _ nkdemo.Color) {
	f.record("label %s", text)
}

func (f *fakeUI) LabelWrap(text string) { f.record("label %s", text) }

func (f *fakeUI) Button(label string) bool {
	f.record("button %s", label)
	return f.clicks[label]
}

func (f *fakeUI) ButtonColor(nkdemo.Color) bool {
	f.record("button color")
	return false
}

func (f *fakeUI) ButtonSymbol(nkdemo.Symbol) bool {
	f.record("button symbol")
	return false
}

func (f *fakeUI) ButtonSymbolLabel(_ nkdemo.Symbol, label string, _ nkdemo.TextAlign) bool {
	f.record("button %s", label)
	return false
}

func (f *fakeUI) SetButtonRepeat(bool) {}

func (f *fakeUI) Option(label string, active bool) bool {
	f.record("option %s %t", label, active)
	if f.clicks[label] {
		return true
	}
	return active
}

func (f *fakeUI) Checkbox(label string, active *bool) bool {
	f.record("checkbox %s", label)
	if f.toggles[label] {
		*active = !*active
		return true
	}
	return false
}

func (f *fakeUI) Selectable(label string, _ nkdemo.TextAlign, selected *bool) bool {
	f.record("selectable %s", label)
	if f.toggles[label] {
		*selected = !*selected
		return true
	}
	return false
}

func (f *fakeUI) SliderInt(min int, value *int, max, step int) bool {
	f.record("slider int %d..%d", min, max)
	return false
}

func (f *fakeUI) SliderFloat(min float32, value *float32, max, step float32) bool {
	f.record("slider float")
	return false
}

func (f *fakeUI) Progress(cur *int, max int, modifiable bool) bool {
	f.record("progress")
	return false
}

// PropertyInt clamps scripted values the way Nuklear does.
func (f *fakeUI) PropertyInt(name string, min int, value *int, max, step int, _ float32) {
	f.record("property %s", name)
	f.seen[name] = *value
	if v, ok := f.props[name]; ok {
		if v < min {
			v = min
		}
		if v > max {
			v = max
		}
		*value = v
	}
}

func (f *fakeUI) ColorPicker(c nkdemo.Color) nkdemo.Color {
	f.record("color picker")
	if f.picked != nil {
		return *f.picked
	}
	return c
}

func (f *fakeUI) Combo(items []string, selected int, _ int, _ nkdemo.Vec2) int {
	f.record("combo %d", len(items))
	if f.combo != nil {
		return *f.combo
	}
	return selected
}

func (f *fakeUI) EditField(key string, text *string) {
	f.record("edit %s", key)
	if v, ok := f.typed[key]; ok {
		*text = v
	}
}

func (f *fakeUI) ComboBeginColor(nkdemo.Color, nkdemo.Vec2) bool {
	f.record("combo color")
	return f.open["background"]
}

func (f *fakeUI) ComboEnd() { f.record("combo end") }

func (f *fakeUI) MenubarBegin() { f.record("menubar begin") }

func (f *fakeUI) MenubarEnd() { f.record("menubar end") }

func (f *fakeUI) MenuBegin(label string, _ nkdemo.TextAlign, _ nkdemo.Vec2) bool {
	f.record("menu %s", label)
	return f.open[label]
}

func (f *fakeUI) MenuItem(label string, _ nkdemo.TextAlign) bool {
	f.record("menu item %s", label)
	return f.clicks[label]
}

func (f *fakeUI) MenuEnd() { f.record("menu end") }

func (f *fakeUI) PopupBegin(_ nkdemo.PopupKind, title string, _ nkdemo.WindowFlags, _ nkdemo.Rect) bool {
	f.record("popup %s", title)
	return f.open[title]
}

func (f *fakeUI) PopupClose() { f.record("popup close") }

func (f *fakeUI) PopupEnd() { f.record("popup end") }

func (f *fakeUI) TreePush(_ nkdemo.TreeKind, title string, _ nkdemo.CollapseState) bool {
	f.record("tree %s", title)
	return f.open[title]
}

func (f *fakeUI) TreePop() { f.record("tree pop") }

func (f *fakeUI) ChartBegin(_ nkdemo.ChartKind, count int, _, _ float32) bool {
	f.record("chart %d", count)
	return true
}

func (f *fakeUI) ChartPush(float32) {}

func (f *fakeUI) ChartEnd() { f.record("chart end") }

var _ nkdemo.GUI = (*fakeUI)(nil)

// fakeWindow is a Window whose events are scripted per frame.
type fakeWindow struct {
	nkdemo.KeySet

	shouldClose bool
	width       int
	height      int
	time        float64
	timeStep    float64
	swaps       int
	polls       int

	// onPoll runs inside PollEvents, like a GLFW key callback.
	onPoll func(frame int)
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(v bool) { w.shouldClose = v }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) Time() float64 { return w.time }

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	w.time += w.timeStep
}

func (w *fakeWindow) PollEvents() {
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
	w.polls++
}

// fakeScene records what the loop asked it to draw.
type fakeScene struct {
	clears [][4]float32
	sizes  [][2]int
	draws  []mgl32.Mat4
}

func (s *fakeScene) Clear(width, height int, color [4]float32) {
	s.clears = append(s.clears, color)
	s.sizes = append(s.sizes, [2]int{width, height})
}

func (s *fakeScene) Draw(mvp mgl32.Mat4) { s.draws = append(s.draws, mvp) }
