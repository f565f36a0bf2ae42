package nkdemo

import "math"

// chartSamples is the number of points pushed into the chart each frame.
const chartSamples = 32

func (p *Panels) windowSection(ui UI) {
	s := p.State

	if !ui.TreePush(TreeTab, "Window", Minimized) {
		return
	}
	ui.LayoutRowDynamic(30, 2)
	ui.Checkbox("Titlebar", &s.Titlebar)
	ui.Checkbox("Menu", &s.ShowMenu)
	ui.Checkbox("Border", &s.Border)
	ui.Checkbox("Resizable", &s.Resize)
	ui.Checkbox("Movable", &s.Movable)
	ui.Checkbox("No Scrollbar", &s.NoScrollbar)
	ui.Checkbox("Minimizable", &s.Minimizable)
	ui.Checkbox("Scale Left", &s.ScaleLeft)
	ui.TreePop()
}

func (p *Panels) widgetsSection(ui UI) {
	if !ui.TreePush(TreeTab, "Widgets", Minimized) {
		return
	}
	p.textNode(ui)
	p.buttonNode(ui)
	p.basicNode(ui)
	p.selectableNode(ui)
	p.comboNode(ui)
	p.inputNode(ui)
	ui.TreePop()
}

func (p *Panels) textNode(ui UI) {
	if !ui.TreePush(TreeNode, "Text", Minimized) {
		return
	}
	ui.LayoutRowDynamic(20, 1)
	ui.Label("Label aligned left", TextLeft)
	ui.Label("Label aligned centered", TextCentered)
	ui.Label("Label aligned right", TextRight)
	ui.LabelColored("Blue text", TextLeft, ColorBlue)
	ui.LabelColored("Yellow text", TextLeft, ColorYellow)
	ui.Label("Text aligned right", TextRight)

	ui.LayoutRowStatic(100, 200, 1)
	ui.LabelWrap("This is a very long line to hopefully get this text to be wrapped into multiple lines to show line wrapping")
	ui.LayoutRowDynamic(100, 1)
	ui.LabelWrap("This is another long text to show dynamic window changes on multiline text")
	ui.TreePop()
}

var symbolButtons = []Symbol{
	SymbolCircleSolid,
	SymbolCircleOutline,
	SymbolRectSolid,
	SymbolRectOutline,
	SymbolTriangleUp,
	SymbolTriangleDown,
	SymbolTriangleLeft,
	SymbolTriangleRight,
}

func (p *Panels) buttonNode(ui UI) {
	if !ui.TreePush(TreeNode, "Button", Minimized) {
		return
	}
	ui.LayoutRowStatic(30, 100, 3)
	if ui.Button("Button") {
		p.Logger.Info("Button pressed")
	}
	ui.SetButtonRepeat(true)
	if ui.Button("Repeater") {
		p.Logger.Debug("Repeater is being pressed")
	}
	ui.SetButtonRepeat(false)
	ui.ButtonColor(ColorBlue)

	ui.LayoutRowStatic(25, 25, len(symbolButtons))
	for _, sym := range symbolButtons {
		ui.ButtonSymbol(sym)
	}

	ui.LayoutRowStatic(30, 100, 2)
	ui.ButtonSymbolLabel(SymbolTriangleLeft, "prev", TextRight)
	ui.ButtonSymbolLabel(SymbolTriangleRight, "next", TextLeft)
	ui.TreePop()
}

func (p *Panels) basicNode(ui UI) {
	s := p.State

	if !ui.TreePush(TreeNode, "Basic", Minimized) {
		return
	}
	ui.LayoutRowStatic(30, 100, 1)
	ui.Checkbox("CheckBox", &s.BasicCheck)

	ui.LayoutRowStatic(30, 80, 3)
	if ui.Option("optionA", s.BasicOption == OptionA) {
		s.BasicOption = OptionA
	}
	if ui.Option("optionB", s.BasicOption == OptionB) {
		s.BasicOption = OptionB
	}
	if ui.Option("optionC", s.BasicOption == OptionC) {
		s.BasicOption = OptionC
	}

	ui.LayoutRowBegin(LayoutStatic, 30, 2)
	ui.LayoutRowPush(120)
	ui.Label("Slider int", TextLeft)
	ui.LayoutRowPush(150)
	ui.SliderInt(BasicSliderRange.Min, &s.BasicSlider, BasicSliderRange.Max, BasicSliderRange.Step)
	ui.LayoutRowPush(120)
	ui.Label("Slider float", TextLeft)
	ui.LayoutRowPush(150)
	ui.SliderFloat(FloatSliderRange.Min, &s.FloatSlider, FloatSliderRange.Max, FloatSliderRange.Step)
	ui.LayoutRowEnd()
	ui.TreePop()
}

func (p *Panels) selectableNode(ui UI) {
	s := p.State

	if !ui.TreePush(TreeNode, "Selectable", Minimized) {
		return
	}
	ui.LayoutRowDynamic(18, 1)
	for i, label := range Selectables {
		ui.Selectable(label, TextLeft, &s.Selected[i])
	}
	ui.TreePop()
}

func (p *Panels) comboNode(ui UI) {
	s := p.State

	if !ui.TreePush(TreeNode, "Combo", Minimized) {
		return
	}
	ui.LayoutRowStatic(25, 200, 1)
	s.Weapon = ui.Combo(Weapons, s.Weapon, 25, Vec2{X: 200, Y: 200})
	ui.TreePop()
}

func (p *Panels) inputNode(ui UI) {
	s := p.State

	if !ui.TreePush(TreeNode, "Input", Minimized) {
		return
	}
	ui.LayoutRowDynamic(30, 1)
	ui.EditField("input", &s.InputText)
	ui.Label("You typed: "+s.InputText, TextLeft)
	ui.TreePop()
}

func (p *Panels) chartSection(ui UI, t float64) {
	if !ui.TreePush(TreeTab, "Chart", Minimized) {
		return
	}
	ui.LayoutRowDynamic(100, 1)
	if ui.ChartBegin(ChartLines, chartSamples, -1, 1) {
		for _, v := range ChartSamples(t) {
			ui.ChartPush(v)
		}
		ui.ChartEnd()
	}
	ui.TreePop()
}

// ChartSamples returns sin sampled evenly over the second ending at t.
func ChartSamples(t float64) []float32 {
	out := make([]float32, chartSamples)
	for i := range out {
		x := t - 1 + float64(i)/float64(chartSamples-1)
		out[i] = float32(math.Sin(x))
	}
	return out
}

func (p *Panels) popupSection(ui UI) {
	s := p.State

	if !ui.TreePush(TreeTab, "Popup", Minimized) {
		return
	}
	ui.LayoutRowStatic(30, 160, 1)
	if ui.Button("Show info popup") {
		s.ShowInfo = true
	}
	if s.ShowInfo {
		if ui.PopupBegin(PopupStatic, "Info", 0, InfoBounds) {
			ui.LayoutRowDynamic(25, 1)
			ui.Label("Nothing went wrong.", TextLeft)
			ui.LayoutRowDynamic(25, 2)
			if ui.Button("OK") {
				s.ShowInfo = false
				ui.PopupClose()
			}
			ui.PopupEnd()
		} else {
			s.ShowInfo = false
		}
	}
	ui.TreePop()
}

func (p *Panels) layoutSection(ui UI) {
	if !ui.TreePush(TreeTab, "Layout", Minimized) {
		return
	}
	ui.LayoutRowBegin(LayoutStatic, 30, 2)
	ui.LayoutRowPush(120)
	ui.Label("120 pixels", TextLeft)
	ui.LayoutRowPush(150)
	ui.Button("150 pixels")
	ui.LayoutRowEnd()

	ui.LayoutRowBegin(LayoutDynamic, 30, 2)
	ui.LayoutRowPush(0.3)
	ui.Label("30 percent", TextLeft)
	ui.LayoutRowPush(0.7)
	ui.Button("70 percent")
	ui.LayoutRowEnd()
	ui.TreePop()
}
