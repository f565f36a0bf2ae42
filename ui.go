package nkdemo

// UI is the immediate-mode GUI the demo declares its panels against.
// Calls are positional: the toolkit correlates each call with a widget by
// its order inside the current panel, so callers must issue them in the
// same order every frame. Every widget returns its result synchronously.
//
// backend/nuklear implements UI on top of Nuklear.
type UI interface {
	// Panels
	Begin(title string, bounds Rect, flags WindowFlags) bool
	End()

	// Layout
	LayoutRowStatic(height float32, itemWidth, cols int)
	LayoutRowDynamic(height float32, cols int)
	LayoutRowBegin(format LayoutFormat, height float32, cols int)
	LayoutRowPush(value float32)
	LayoutRowEnd()
	WidgetWidth() float32

	// Text
	Label(text string, align TextAlign)
	LabelColored(text string, align TextAlign, c Color)
	LabelWrap(text string)

	// Buttons
	Button(label string) bool
	ButtonColor(c Color) bool
	ButtonSymbol(s Symbol) bool
	ButtonSymbolLabel(s Symbol, label string, align TextAlign) bool
	SetButtonRepeat(repeat bool)

	// Value widgets. Pointer arguments are read and written back.
	Option(label string, active bool) bool
	Checkbox(label string, active *bool) bool
	Selectable(label string, align TextAlign, selected *bool) bool
	SliderInt(min int, value *int, max, step int) bool
	SliderFloat(min float32, value *float32, max, step float32) bool
	Progress(cur *int, max int, modifiable bool) bool
	PropertyInt(name string, min int, value *int, max, step int, incPerPixel float32)
	ColorPicker(c Color) Color
	Combo(items []string, selected int, itemHeight int, size Vec2) int
	EditField(key string, text *string)

	// Combo boxes, menus and popups
	ComboBeginColor(c Color, size Vec2) bool
	ComboEnd()
	MenubarBegin()
	MenubarEnd()
	MenuBegin(label string, align TextAlign, size Vec2) bool
	MenuItem(label string, align TextAlign) bool
	MenuEnd()
	PopupBegin(kind PopupKind, title string, flags WindowFlags, bounds Rect) bool
	PopupClose()
	PopupEnd()

	// Collapsible sections
	TreePush(kind TreeKind, title string, state CollapseState) bool
	TreePop()

	// Charts
	ChartBegin(kind ChartKind, count int, min, max float32) bool
	ChartPush(value float32)
	ChartEnd()
}

// GUI is a UI that also owns the per-frame lifecycle.
type GUI interface {
	UI

	// NewFrame starts a frame and feeds it the input gathered by PollEvents.
	NewFrame()

	// AnyActive reports whether a widget currently holds input focus.
	AnyActive() bool

	// Render draws the frame's draw lists.
	Render()
}
