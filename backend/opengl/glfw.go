package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/nkdemo"
)

// Window is a GLFW window with a current OpenGL core-profile context.
// It implements nkdemo.Window.
type Window struct {
	win     *glfw.Window
	intents *nkdemo.Intents
	closed  bool
}

// OpenWindow initializes GLFW, creates the window, makes its context current
// and loads the OpenGL functions. Escape presses are posted to intents as
// close requests.
//
// On error everything acquired so far is released.
func OpenWindow(cfg nkdemo.WindowConfig, intents *nkdemo.Intents) (_ *Window, err error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	defer func() {
		if err != nil {
			glfw.Terminate()
		}
	}()

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	defer func() {
		if err != nil {
			win.Destroy()
		}
	}()

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win, intents: intents}
	win.SetKeyCallback(w.keyCallback)

	fbw, fbh := win.GetFramebufferSize()
	nkdemo.Logger().Info("window opened",
		"title", cfg.Title,
		"framebuffer", fmt.Sprintf("%dx%d", fbw, fbh),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return w, nil
}

// GLFW returns the underlying GLFW window.
func (w *Window) GLFW() *glfw.Window { return w.win }

// ShouldClose implements nkdemo.Window.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// SetShouldClose implements nkdemo.Window.
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// PollEvents implements nkdemo.Window.
func (w *Window) PollEvents() { glfw.PollEvents() }

// FramebufferSize implements nkdemo.Window.
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

// Time implements nkdemo.Window.
func (w *Window) Time() float64 { return glfw.GetTime() }

// SwapBuffers implements nkdemo.Window.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// KeyDown implements nkdemo.KeyState by polling GLFW.
func (w *Window) KeyDown(k nkdemo.Key) bool {
	key, ok := guiKeyToGLFW(k)
	if !ok {
		return false
	}
	return w.win.GetKey(key) == glfw.Press
}

// Close destroys the window and terminates GLFW. Safe to call twice.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if glfwKeyToGUIKey(key) == nkdemo.KeyEscape && action == glfw.Press {
		w.intents.Post(nkdemo.IntentClose)
	}
}

// glfwKeyToGUIKey maps GLFW keys to demo keys.
func glfwKeyToGUIKey(key glfw.Key) nkdemo.Key {
	switch key {
	case glfw.KeyUp:
		return nkdemo.KeyUp
	case glfw.KeyDown:
		return nkdemo.KeyDown
	case glfw.KeyLeft:
		return nkdemo.KeyLeft
	case glfw.KeyRight:
		return nkdemo.KeyRight
	case glfw.KeyEscape:
		return nkdemo.KeyEscape
	default:
		return nkdemo.KeyNone
	}
}

// guiKeyToGLFW maps demo keys back to GLFW keys for polling.
func guiKeyToGLFW(k nkdemo.Key) (glfw.Key, bool) {
	switch k {
	case nkdemo.KeyUp:
		return glfw.KeyUp, true
	case nkdemo.KeyDown:
		return glfw.KeyDown, true
	case nkdemo.KeyLeft:
		return glfw.KeyLeft, true
	case nkdemo.KeyRight:
		return glfw.KeyRight, true
	case nkdemo.KeyEscape:
		return glfw.KeyEscape, true
	default:
		return glfw.KeyUnknown, false
	}
}
