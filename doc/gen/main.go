// Command gen renders the widgets in a few representative states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pixelui"
	"github.com/go-theft-auto/pixelui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                            // filename without extension
	width  int                               // viewport width
	height int                               // viewport height
	style  pixelui.Style                     // scene style
	setup  func(scene *pixelui.Scene) error // adds and drives the widgets
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	font := pixelui.BasicFont()
	if err := renderer.UploadFont(font); err != nil {
		return err
	}
	fonts := pixelui.NewFontRegistry()
	fonts.Register(pixelui.DefaultFontName, font)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, fonts, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, fonts pixelui.FontProvider, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	scene := pixelui.NewScene(renderer,
		pixelui.WithSceneStyle(s.style),
		pixelui.WithFontProvider(fonts),
	)
	defer scene.Close()
	if err := s.setup(scene); err != nil {
		return err
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := scene.Render(); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func keys(scene *pixelui.Scene, evs ...*pixelui.KeyEvent) {
	for _, ev := range evs {
		scene.HandleKey(ev)
	}
}

func shift(k pixelui.Key) *pixelui.KeyEvent {
	return &pixelui.KeyEvent{Key: k, Shift: true}
}

func buildScreenshots() []screenshot {
	menuItems := []string{"New game", "Load game", "Options", "Statistics", "Brief", "Quit"}

	return []screenshot{
		{
			name: "text_input", width: 240, height: 40, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewTextInput(pixelui.At(10, 10), pixelui.WithSize(220, 20),
					pixelui.WithText("Hello, world!"))
				return err
			},
		},
		{
			name: "text_input_selection", width: 240, height: 40, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewTextInput(pixelui.At(10, 10), pixelui.WithSize(220, 20),
					pixelui.WithText("Hello, world!"))
				keys(scene, shift(pixelui.KeyLeft), shift(pixelui.KeyLeft), shift(pixelui.KeyLeft),
					shift(pixelui.KeyLeft), shift(pixelui.KeyLeft), shift(pixelui.KeyLeft))
				return err
			},
		},
		{
			name: "text_input_multiline", width: 240, height: 90, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewTextInput(pixelui.At(10, 10), pixelui.WithSize(220, 70),
					pixelui.Multiline(),
					pixelui.WithText("first line\nsecond line\nthird"))
				keys(scene, shift(pixelui.KeyUp), shift(pixelui.KeyLeft), shift(pixelui.KeyLeft))
				return err
			},
		},
		{
			name: "text_input_scrolled", width: 160, height: 40, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewTextInput(pixelui.At(10, 10), pixelui.WithSize(140, 20),
					pixelui.WithText(strings.Repeat("scroll ", 6)))
				return err
			},
		},
		{
			name: "text_input_gta", width: 240, height: 40, style: pixelui.GTAStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewTextInput(pixelui.At(10, 10), pixelui.WithSize(220, 20),
					pixelui.WithText("Grove Street"))
				keys(scene, &pixelui.KeyEvent{Key: pixelui.KeyA, Ctrl: true})
				return err
			},
		},
		{
			name: "menu", width: 180, height: 120, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewMenu(pixelui.At(10, 10), pixelui.WithSize(160, 100),
					pixelui.WithMenuOptions(menuItems...))
				keys(scene, &pixelui.KeyEvent{Key: pixelui.KeyDown})
				return err
			},
		},
		{
			name: "menu_scrolled", width: 180, height: 120, style: pixelui.DefaultStyle(),
			setup: func(scene *pixelui.Scene) error {
				m, err := scene.NewMenu(pixelui.At(10, 10), pixelui.WithSize(160, 100),
					pixelui.WithMenuOptions(menuItems...))
				if err != nil {
					return err
				}
				m.SetSelection(len(menuItems) - 1)
				return nil
			},
		},
		{
			name: "menu_truncated", width: 120, height: 80, style: pixelui.GTAStyle(),
			setup: func(scene *pixelui.Scene) error {
				_, err := scene.NewMenu(pixelui.At(10, 10), pixelui.WithSize(100, 60),
					pixelui.WithMenuOptions("Short", "A much longer label"))
				return err
			},
		},
	}
}
