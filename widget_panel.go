package nkdemo

import (
	"log/slog"
)

// Panel geometry.
var (
	DemonstrationBounds = Rect{X: 10, Y: 10, W: 230, H: 250}
	OverviewBounds      = Rect{X: 10, Y: 300, W: 400, H: 600}
	AboutBounds         = Rect{X: 20, Y: 100, W: 300, H: 190}
	InfoBounds          = Rect{X: 20, Y: 100, W: 220, H: 90}
)

// DemonstrationFlags are the fixed flags of the Demonstration panel.
const DemonstrationFlags = WindowBorder | WindowMovable | WindowScalable | WindowMinimizable | WindowTitle

// Panels declares the demo's GUI. Each call to Declare re-declares the
// whole tree; widget values are read from and written back to State.
type Panels struct {
	State   *UIState
	Intents *Intents
	Logger  *slog.Logger
}

// Declare issues every panel for one frame. t is the animation time in
// seconds, used by the chart.
func (p *Panels) Declare(ui UI, t float64) {
	if p.Logger == nil {
		p.Logger = demoLogger
	}
	p.demonstration(ui)
	p.overview(ui, t)
}

func (p *Panels) demonstration(ui UI) {
	s := p.State

	if ui.Begin("Demonstration", DemonstrationBounds, DemonstrationFlags) {
		ui.LayoutRowStatic(30, 80, 5)
		if ui.Button("button") {
			p.Logger.Info("button pressed")
		}

		ui.LayoutRowDynamic(30, 2)
		if ui.Option("easy", s.Difficulty == Easy) {
			s.Difficulty = Easy
		}
		if ui.Option("hard", s.Difficulty == Hard) {
			s.Difficulty = Hard
		}

		ui.LayoutRowDynamic(25, 1)
		r := CompressionRange
		ui.PropertyInt("Compression:", r.Min, &s.Compression, r.Max, r.Step, 1)

		ui.LayoutRowDynamic(20, 1)
		ui.Label("background:", TextLeft)

		ui.LayoutRowDynamic(25, 1)
		if ui.ComboBeginColor(s.Background, Vec2{X: ui.WidgetWidth(), Y: 400}) {
			ui.LayoutRowDynamic(120, 1)
			s.Background = ui.ColorPicker(s.Background)

			ui.LayoutRowDynamic(25, 1)
			cr, cg, cb, ca := s.Background.RGBA()
			c := ChannelRange
			ui.PropertyInt("#R:", c.Min, &cr, c.Max, c.Step, 1)
			ui.PropertyInt("#G:", c.Min, &cg, c.Max, c.Step, 1)
			ui.PropertyInt("#B:", c.Min, &cb, c.Max, c.Step, 1)
			ui.PropertyInt("#A:", c.Min, &ca, c.Max, c.Step, 1)
			s.Background.SetRGBA(cr, cg, cb, ca)

			ui.ComboEnd()
		}
	}
	ui.End()
}

func (p *Panels) overview(ui UI, t float64) {
	s := p.State

	if ui.Begin("Overview", OverviewBounds, s.WindowFlags()) {
		if s.ShowMenu {
			p.menubar(ui)
		}
		if s.ShowAbout {
			p.about(ui)
		}

		p.windowSection(ui)
		p.widgetsSection(ui)
		p.chartSection(ui, t)
		p.popupSection(ui)
		p.layoutSection(ui)
	}
	ui.End()
}

func (p *Panels) menubar(ui UI) {
	s := p.State

	ui.MenubarBegin()
	ui.LayoutRowBegin(LayoutStatic, 25, 5)

	ui.LayoutRowPush(45)
	if ui.MenuBegin("MENU", TextLeft, Vec2{X: 120, Y: 200}) {
		ui.LayoutRowDynamic(25, 1)
		if ui.MenuItem("Hide", TextLeft) {
			s.ShowMenu = false
		}
		if ui.MenuItem("About", TextLeft) {
			s.ShowAbout = true
		}
		ui.Progress(&s.MenuProgress, MenuProgressRange.Max, true)
		ui.SliderInt(MenuSliderRange.Min, &s.MenuSlider, MenuSliderRange.Max, MenuSliderRange.Step)
		ui.Checkbox("check", &s.MenuCheck)
		ui.MenuEnd()
	}

	ui.LayoutRowPush(60)
	if ui.MenuBegin("Advanced", TextLeft, Vec2{X: 200, Y: 600}) {
		ui.LayoutRowDynamic(25, 1)
		if ui.MenuItem("Reset camera", TextLeft) {
			p.post(IntentResetCamera)
		}
		if ui.MenuItem("Reset widgets", TextLeft) {
			p.post(IntentResetUI)
		}
		if ui.MenuItem("Quit", TextLeft) {
			p.post(IntentClose)
		}
		ui.MenuEnd()
	}

	ui.LayoutRowPush(70)
	ui.Progress(&s.MenuProgress, MenuProgressRange.Max, true)
	ui.SliderInt(MenuSliderRange.Min, &s.MenuSlider, MenuSliderRange.Max, MenuSliderRange.Step)
	ui.Checkbox("check", &s.MenuCheck)

	ui.LayoutRowEnd()
	ui.MenubarEnd()
}

func (p *Panels) about(ui UI) {
	if !ui.PopupBegin(PopupStatic, "About", WindowClosable, AboutBounds) {
		// The user closed the popup with its close button.
		p.State.ShowAbout = false
		return
	}
	ui.LayoutRowDynamic(20, 1)
	ui.Label("nkdemo", TextLeft)
	ui.Label("A rotating triangle under a Nuklear overlay.", TextLeft)
	ui.Label("based on Nuklear", TextLeft)
	ui.Label("By Micha Mettke", TextLeft)
	ui.Label("nuklear is licensed under the public domain License.", TextLeft)
	ui.PopupEnd()
}

func (p *Panels) post(i Intent) {
	if p.Intents == nil {
		return
	}
	if !p.Intents.Post(i) {
		p.Logger.Warn("intent queue full, dropping", "intent", i)
	}
}
