/*
Package nkdemo drives a rotating triangle under an immediate-mode GUI overlay.

# Overview

The package holds everything that does not need a GPU: the camera
controller, the model and projection transforms, the persistent widget state
and the order in which widgets are declared each frame. Backends under
backend/ bind it to GLFW, OpenGL and Nuklear:

	backend/opengl   window, key polling, triangle renderer, screenshots
	backend/nuklear  the GUI interface implemented on golang-ui/nuklear

Immediate-mode widgets do not keep values between frames. Every value a
widget shows lives in UIState, is passed to the widget when it is declared
and is written back from the widget's result. UIState.Clamp keeps every
value inside its declared range after each frame.

# Quick Start

	intents := nkdemo.NewIntents()
	window, _ := opengl.OpenWindow(cfg.Window, intents)
	gui, _ := nuklear.New(window.GLFW())
	scene, _ := opengl.NewRenderer("shaders")

	app := nkdemo.NewApp(window, scene, gui, nkdemo.WithIntents(intents))
	app.Run()

# Frame Order

Each call to App.Step runs, in order:

	poll window events
	start the GUI frame
	apply queued intents
	clear to the background color
	update the camera, unless a widget is active
	draw the triangle with projection * view * model
	declare the Demonstration and Overview panels
	clamp the widget state
	render the GUI and swap buffers

# Intents

Code outside the frame loop never mutates the loop's state directly. Key
callbacks, signal handlers and menu items post an Intent; the loop drains
the queue once per frame, after polling. Duplicate intents within one frame
collapse into one.

# Keyboard Reference

	Left Arrow   Turn the camera left
	Right Arrow  Turn the camera right
	Up Arrow     Move forward along the view direction
	Down Arrow   Move backward
	Escape       Close the window

The arrow keys are ignored while any widget is hovered or active.

# Panels

Demonstration holds a button, an easy/hard choice, the Compression property
and a color combo that edits the background. Overview holds a menu bar and
collapsible sections:

	Window      toggles for the Overview panel's own flags
	Widgets     Text, Button, Basic, Selectable, Combo and Input nodes
	Chart       a line chart of sin(t) over the last second
	Popup       a static info popup
	Layout      static and dynamic row layouts

The Advanced menu posts IntentResetCamera, IntentResetUI and IntentClose.
*/
package nkdemo
