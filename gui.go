package nkdemo

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is the window and input source the loop drives.
type Window interface {
	KeyState

	ShouldClose() bool
	SetShouldClose(bool)

	// PollEvents processes pending events. Key callbacks run synchronously
	// inside it.
	PollEvents()

	FramebufferSize() (width, height int)

	// Time returns seconds since the window library was initialized.
	Time() float64

	SwapBuffers()
}

// Scene renders everything below the GUI.
type Scene interface {
	// Clear sets the viewport and clears color and depth with the given color.
	Clear(width, height int, color [4]float32)

	// Draw renders the triangle with the combined model-view-projection matrix.
	Draw(mvp mgl32.Mat4)
}

// App owns the frame loop and everything it mutates.
type App struct {
	window  Window
	scene   Scene
	gui     GUI
	camera  Camera
	state   *UIState
	intents *Intents
	panels  Panels
	logger  *slog.Logger

	// beforeSwap runs after the GUI is rendered, while the frame is still
	// in the back buffer.
	beforeSwap func(frame int)

	frames int
}

// Option configures an App.
type Option func(*App)

// WithUIState starts the App from an existing state instead of NewUIState.
func WithUIState(s *UIState) Option {
	return func(a *App) { a.state = s }
}

// WithIntents shares an intent queue with the window's key callback or a
// signal handler.
func WithIntents(q *Intents) Option {
	return func(a *App) { a.intents = q }
}

// WithCamera sets the starting camera.
func WithCamera(c Camera) Option {
	return func(a *App) { a.camera = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithBeforeSwap registers fn to run once per frame after everything is
// drawn and before the buffers are swapped. frame counts from zero.
func WithBeforeSwap(fn func(frame int)) Option {
	return func(a *App) { a.beforeSwap = fn }
}

// NewApp creates the frame loop driver.
func NewApp(window Window, scene Scene, gui GUI, opts ...Option) *App {
	a := &App{
		window: window,
		scene:  scene,
		gui:    gui,
		camera: NewCamera(),
		logger: demoLogger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.state == nil {
		a.state = NewUIState()
	}
	if a.intents == nil {
		a.intents = NewIntents()
	}
	a.panels = Panels{State: a.state, Intents: a.intents, Logger: a.logger}
	return a
}

// State returns the persistent widget state.
func (a *App) State() *UIState { return a.state }

// Camera returns the current camera.
func (a *App) Camera() Camera { return a.camera }

// Intents returns the App's intent queue.
func (a *App) Intents() *Intents { return a.intents }

// Frames returns the number of completed frames.
func (a *App) Frames() int { return a.frames }

// Run steps frames until the window is asked to close.
func (a *App) Run() error {
	start := a.window.Time()
	for !a.window.ShouldClose() {
		a.Step()
	}
	a.logger.Debug("loop finished", "frames", a.frames, "seconds", a.window.Time()-start)
	return nil
}

// Step runs one frame: poll, apply intents, clear, camera, scene, GUI, swap.
func (a *App) Step() {
	a.window.PollEvents()
	a.gui.NewFrame()
	a.intents.Drain(a.apply)
	if a.window.ShouldClose() {
		return
	}

	t := a.window.Time()
	width, height := a.window.FramebufferSize()
	a.scene.Clear(width, height, a.state.ClearColor())

	projection := Projection(width, height)
	a.camera.Update(a.window, a.gui.AnyActive())
	view := a.camera.View()
	a.scene.Draw(MVP(projection, view, ModelMatrix(t)))

	a.panels.Declare(a.gui, t)
	a.state.Clamp()
	a.gui.Render()

	if a.beforeSwap != nil {
		a.beforeSwap(a.frames)
	}
	a.window.SwapBuffers()
	a.frames++
}

func (a *App) apply(i Intent) {
	a.logger.Debug("intent", "intent", i)
	switch i {
	case IntentClose:
		a.window.SetShouldClose(true)
	case IntentResetCamera:
		a.camera.Reset()
	case IntentResetUI:
		a.state.Reset()
	}
}
