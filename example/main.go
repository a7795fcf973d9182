// Example opens a window with a multi-line text input and a menu.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-log-level debug          # log edits rejected by the character limit, clipboard use
//	-theme theme.toml         # load colors and sizes from a TOML file
//	-gta                      # use the GTA style
//	-system-clipboard         # use the OS clipboard instead of the window's
//
// Up/Down move the menu selection while the text input edits the text.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pixelui"
	"github.com/go-theft-auto/pixelui/backend/opengl"
)

const (
	windowWidth  = 640
	windowHeight = 400
	windowTitle  = "pixelui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	theme := flag.String("theme", "", "TOML style file")
	gta := flag.Bool("gta", false, "use the GTA style")
	systemClipboard := flag.Bool("system-clipboard", false, "use the OS clipboard instead of the window's")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *theme, *gta, *systemClipboard); err != nil {
		logger.Error("example failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, theme string, gta, systemClipboard bool) error {
	style := pixelui.DefaultStyle()
	if gta {
		style = pixelui.GTAStyle()
	}
	if theme != "" {
		var err error
		if style, err = pixelui.LoadStyleFile(theme); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	font := pixelui.BasicFont()
	if err := renderer.UploadFont(font); err != nil {
		return err
	}
	fonts := pixelui.NewFontRegistry()
	fonts.Register(style.FontName, font)

	var cb pixelui.ClipboardProvider = opengl.GLFWClipboard{Window: window}
	if systemClipboard {
		sys := pixelui.SystemClipboard{Logger: logger}
		if sys.Available() {
			cb = sys
		} else {
			logger.Warn("system clipboard unsupported, using the window clipboard")
		}
	}

	scene := pixelui.NewScene(renderer,
		pixelui.WithSceneStyle(style),
		pixelui.WithFontProvider(fonts),
		pixelui.WithClipboard(cb),
		pixelui.WithSceneLogger(logger),
	)
	defer scene.Close()

	input, err := scene.NewTextInput(
		pixelui.At(20, 20),
		pixelui.WithSize(300, 120),
		pixelui.WithFontSize(13),
		pixelui.Multiline(),
		pixelui.WithText("Type here.\nCtrl+Z undoes, Ctrl+Y redoes."),
	)
	if err != nil {
		return err
	}

	menu, err := scene.NewMenu(
		pixelui.At(360, 20),
		pixelui.WithSize(160, 100),
		pixelui.WithFontSize(13),
		pixelui.WithMenuOptions("New game", "Load game", "Options", "A label far too long to fit the button", "Quit"),
	)
	if err != nil {
		return err
	}
	// The input owns Up/Down while it is active; Escape hands them to the menu.
	menu.SetActive(false)

	keys := opengl.NewGLFWInput(window, keyRouter{scene: scene, input: input, menu: menu})
	defer keys.Detach()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		scene.Resize(w, h)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := scene.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}

// keyRouter toggles focus between the input and the menu on Escape and
// hands everything else to the scene.
type keyRouter struct {
	scene *pixelui.Scene
	input *pixelui.TextInput
	menu  *pixelui.Menu
}

func (r keyRouter) HandleKey(ev *pixelui.KeyEvent) bool {
	if ev.Key == pixelui.KeyEscape {
		r.input.SetActive(!r.input.Active())
		r.menu.SetActive(!r.input.Active())
		return true
	}
	return r.scene.HandleKey(ev)
}
