// Command nkdemo opens a window with a rotating triangle and a Nuklear GUI
// overlay.
//
// Arrow keys move the camera while no widget is active. Escape closes the
// window.
//
//	go run ./cmd/nkdemo -shaders ./shaders
//
// With -screenshot the demo saves a JPEG of an early frame and exits.
//
//	go run ./cmd/nkdemo -screenshot doc/nkdemo.jpg
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/xlab/closer"

	"github.com/go-theft-auto/nkdemo"
	"github.com/go-theft-auto/nkdemo/backend/nuklear"
	"github.com/go-theft-auto/nkdemo/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	shaderDir := flag.String("shaders", "", "directory holding triangle.vert and triangle.frag")
	verbose := flag.Bool("v", false, "enable debug logging")
	printConfig := flag.Bool("print-config", false, "print the effective config as TOML and exit")
	screenshot := flag.String("screenshot", "", "save a JPEG of an early frame to this path and exit")
	flag.Parse()

	cfg, err := nkdemo.LoadConfig(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if *shaderDir != "" {
		cfg.ShaderDir = *shaderDir
	}
	nkdemo.SetVerbose(*verbose || cfg.Verbose)

	if *printConfig {
		if err := nkdemo.EncodeConfig(os.Stdout, cfg); err != nil {
			closer.Fatalln(err)
		}
		return
	}

	intents := nkdemo.NewIntents()
	done := make(chan struct{})
	closer.Bind(func() {
		// Runs on SIGINT/SIGTERM, or from Close/Fatalln after run returned.
		intents.Post(nkdemo.IntentClose)
		<-done
	})

	err = run(cfg, intents, *screenshot)
	close(done)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

// screenshotFrame is the frame captured by -screenshot. Nuklear needs a
// frame of input before its layout settles.
const screenshotFrame = 2

func run(cfg nkdemo.Config, intents *nkdemo.Intents, screenshot string) error {
	log := nkdemo.Logger()

	window, err := opengl.OpenWindow(cfg.Window, intents)
	if err != nil {
		return err
	}
	defer window.Close()

	gui, err := nuklear.New(window.GLFW())
	if err != nil {
		return fmt.Errorf("gui init: %w", err)
	}
	defer gui.Close()

	scene, err := opengl.NewRenderer(nkdemo.ResolveShaderDir(cfg.ShaderDir))
	if err != nil {
		return fmt.Errorf("scene init: %w", err)
	}
	defer scene.Delete()

	opts := []nkdemo.Option{nkdemo.WithIntents(intents), nkdemo.WithLogger(log)}
	if screenshot != "" {
		opts = append(opts, nkdemo.WithBeforeSwap(func(frame int) {
			if frame != screenshotFrame {
				return
			}
			width, height := window.FramebufferSize()
			if err := opengl.WriteJPEG(screenshot, opengl.ReadFramebuffer(width, height)); err != nil {
				log.Error("screenshot failed", "path", screenshot, "err", err)
			} else {
				log.Info("screenshot saved", "path", screenshot, "width", width, "height", height)
			}
			intents.Post(nkdemo.IntentClose)
		}))
	}

	app := nkdemo.NewApp(window, scene, gui, opts...)
	if err := app.Run(); err != nil {
		return err
	}
	log.Info("window closed", "frames", app.Frames())
	return nil
}
