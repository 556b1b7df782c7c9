package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/trigon/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("verbose", false, "Enable debug logging (surface capabilities, FPS)")
	shaderPath := flag.String("shader", "", "Override the built-in triangle shader with a WGSL file")
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 500, "Window height")
	flag.Parse()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "Trigon", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	logger := app.NewDefaultLogger("trigon", *verbose)
	application := app.NewApp(window, logger)
	application.ShaderPath = *shaderPath
	if err := application.Init(); err != nil {
		panic(err)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		application.HandleMouseMoved(xpos, ypos)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		application.Render()
	}
}
