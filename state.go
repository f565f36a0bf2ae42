package nkdemo

// IntRange describes the bounds of an integer widget.
type IntRange struct {
	Min, Max, Step int
}

// Clamp limits v to [Min,Max]. Values inside the range pass through
// unchanged; they are not rounded to a multiple of Step.
func (r IntRange) Clamp(v int) int {
	return clampInt(v, r.Min, r.Max)
}

// Increment moves v by n steps and clamps at the bounds.
func (r IntRange) Increment(v, n int) int {
	return r.Clamp(v + n*r.Step)
}

// FloatRange describes the bounds of a float widget.
type FloatRange struct {
	Min, Max, Step float32
}

// Clamp limits v to [Min,Max].
func (r FloatRange) Clamp(v float32) float32 {
	return clampFloat(v, r.Min, r.Max)
}

// Widget ranges.
var (
	CompressionRange  = IntRange{Min: 0, Max: 100, Step: 10}
	ChannelRange      = IntRange{Min: 0, Max: 255, Step: 1}
	MenuProgressRange = IntRange{Min: 0, Max: 100, Step: 1}
	MenuSliderRange   = IntRange{Min: 0, Max: 16, Step: 1}
	BasicSliderRange  = IntRange{Min: 0, Max: 10, Step: 1}
	FloatSliderRange  = FloatRange{Min: 0, Max: 5, Step: 0.5}
)

// Difficulty is the easy/hard choice on the Demonstration panel.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

// BasicOption is the optionA/B/C choice in Widgets > Basic.
type BasicOption int

const (
	OptionA BasicOption = iota + 1
	OptionB
	OptionC
)

// Weapons lists the entries of the Widgets > Combo box.
var Weapons = []string{"Fist", "Pistol", "Shotgun", "Plasma", "BFG"}

// Selectables lists the entries of Widgets > Selectable.
var Selectables = [4]string{"Selectable", "Selectable", "Not Selectable", "Selectable"}

// UIState holds every widget value that must survive from one frame to the
// next. It is created once before the loop and passed by pointer into each
// frame's declarations.
type UIState struct {
	// Demonstration panel
	Difficulty  Difficulty
	Compression int
	Background  Color

	// Overview panel window options
	ShowMenu    bool
	Titlebar    bool
	Border      bool
	Resize      bool
	Movable     bool
	NoScrollbar bool
	ScaleLeft   bool
	Minimizable bool

	// Menu bar
	MenuProgress int
	MenuSlider   int
	MenuCheck    bool
	ShowAbout    bool

	// Widgets > Basic
	BasicCheck  bool
	BasicOption BasicOption
	BasicSlider int
	FloatSlider float32

	// Widgets > Selectable, Combo, Input
	Selected  [len(Selectables)]bool
	Weapon    int
	InputText string

	// Popup section
	ShowInfo bool
}

// NewUIState returns the state every widget starts with.
func NewUIState() *UIState {
	return &UIState{
		Difficulty:  Easy,
		Compression: 20,
		Background:  ColorBlack,

		ShowMenu:    true,
		Titlebar:    true,
		Border:      true,
		Resize:      true,
		Movable:     true,
		NoScrollbar: false,
		ScaleLeft:   false,
		Minimizable: true,

		MenuProgress: 60,
		MenuSlider:   10,

		BasicOption: OptionA,
		BasicSlider: 5,
		FloatSlider: 2.5,

		Selected: [len(Selectables)]bool{false, false, true, false},
	}
}

// Reset restores every widget to its starting value.
func (s *UIState) Reset() {
	*s = *NewUIState()
}

// Clamp forces every numeric value back into its declared range.
func (s *UIState) Clamp() {
	s.Compression = CompressionRange.Clamp(s.Compression)
	s.MenuProgress = MenuProgressRange.Clamp(s.MenuProgress)
	s.MenuSlider = MenuSliderRange.Clamp(s.MenuSlider)
	s.BasicSlider = BasicSliderRange.Clamp(s.BasicSlider)
	s.FloatSlider = FloatSliderRange.Clamp(s.FloatSlider)
	s.Weapon = clampInt(s.Weapon, 0, len(Weapons)-1)
	if s.Difficulty != Hard {
		s.Difficulty = Easy
	}
	if s.BasicOption < OptionA || s.BasicOption > OptionC {
		s.BasicOption = OptionA
	}
}

// WindowFlags derives the Overview panel flags from the window options.
func (s *UIState) WindowFlags() WindowFlags {
	var flags WindowFlags
	if s.Border {
		flags |= WindowBorder
	}
	if s.Resize {
		flags |= WindowScalable
	}
	if s.Movable {
		flags |= WindowMovable
	}
	if s.NoScrollbar {
		flags |= WindowNoScrollbar
	}
	if s.ScaleLeft {
		flags |= WindowScaleLeft
	}
	if s.Minimizable {
		flags |= WindowMinimizable
	}
	if s.Titlebar {
		flags |= WindowTitle
	}
	return flags
}

// ClearColor returns the background as normalized floats for glClearColor.
func (s *UIState) ClearColor() [4]float32 {
	return s.Background.Floats()
}
