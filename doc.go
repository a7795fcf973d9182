/*
Package pixelui provides retained-mode text input and menu widgets for
pixel art games drawn with bitmap fonts.

# Overview

Widgets are created once and keep their own state. A Scene owns them,
feeds them keyboard and clipboard events, and draws them into a DrawList
every frame. Widgets never talk to the window directly: they subscribe to an
InputSource (normally the scene's EventBus) and draw onto a Surface, so
both ends can be replaced in tests.

The editing core is independent of drawing:

  - TextBuffer holds the text, the caret and the selection anchor, filters
    input against a CharSet and enforces a character limit.
  - History is the bounded undo/redo stack behind TextBuffer.
  - TextLayout places glyphs for a Face and maps rune indices to pixels;
    CaretCoordinates and SelectionRects build on it.
  - TextView keeps the caret inside a scrolled viewport.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	font := pixelui.BasicFont()
	renderer.UploadFont(font)

	fonts := pixelui.NewFontRegistry()
	fonts.Register(pixelui.DefaultFontName, font)

	scene := pixelui.NewScene(renderer,
	    pixelui.WithFontProvider(fonts),
	    pixelui.WithClipboard(opengl.GLFWClipboard{Window: window}),
	)
	defer scene.Close()

	name, _ := scene.NewTextInput(pixelui.At(20, 20), pixelui.WithSize(200, 20))
	menu, _ := scene.NewMenu(pixelui.At(20, 60), pixelui.WithMenuOptions("Start", "Quit"))

	keys := opengl.NewGLFWInput(window, scene)
	defer keys.Detach()

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    scene.Render()
	    window.SwapBuffers()
	}

# Configuration

Widgets take functional options. Anything not set falls back to the Style
the scene was created with; a Style can be loaded from TOML:

	style, err := pixelui.LoadStyleFile("theme.toml")
	scene := pixelui.NewScene(renderer, pixelui.WithSceneStyle(style))

Options are resolved once at construction. Invalid combinations return an
error wrapping ErrInvalidConfig, unknown fonts one wrapping ErrFontNotFound.

# Keyboard Shortcuts Reference

## TextInput

	Characters       Insert at the selection (only the allowed set)
	Backspace        Delete the selection or the character before the caret
	Enter            Insert a line break (multi-line inputs only)
	Tab              Insert the tab string
	Left / Right     Move the caret one character
	Up / Down        Move the caret one line, keeping the column
	Shift+arrows     Extend the selection
	Ctrl+A           Select all
	Ctrl+Z           Undo
	Ctrl+Y           Redo
	Ctrl+C           Copy the selection
	Ctrl+X           Cut the selection
	Ctrl+V           Paste

Copy, cut and paste reach the input as clipboard events. The Scene turns
Ctrl+C, Ctrl+X and Ctrl+V that no widget consumed into those events.

## Menu

	Up / Down        Move the selection, stopping at the first and last entry

# Logging

Widgets and scenes log through log/slog. Pass a logger with WithSceneLogger
or WithLogger; without one nothing is logged. Rejected edits and clipboard
traffic are reported at debug level.
*/
package pixelui
