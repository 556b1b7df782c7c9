package app

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/trigon/asset"
	"github.com/gekko3d/trigon/gpu"
	"github.com/gekko3d/trigon/shaders"
)

// App hosts the triangle stage pair: it owns the window surface, the render
// pipeline and the per-frame draw that invokes the vertex stage exactly three
// times with indices 0, 1, 2.
type App struct {
	Window *glfw.Window
	Gpu    *gpu.State

	Pipeline *wgpu.RenderPipeline

	Assets         *asset.Server
	TriangleShader asset.Shader

	// ShaderPath optionally overrides the embedded triangle shader with a
	// WGSL file from disk. Set before Init.
	ShaderPath string

	ClearColor wgpu.Color
	MouseX     float64
	MouseY     float64

	FrameCount     int
	FPS            float64
	FPSTime        float64
	LastRenderTime float64

	log Logger
}

func NewApp(window *glfw.Window, log Logger) *App {
	if log == nil {
		log = NewNopLogger()
	}
	return &App{
		Window:     window,
		Assets:     asset.NewServer(),
		ClearColor: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		log:        log,
	}
}

func (a *App) Init() error {
	state, err := gpu.NewState(a.Window, a.log)
	if err != nil {
		return err
	}
	a.Gpu = state

	if a.ShaderPath != "" {
		a.TriangleShader = a.Assets.LoadShader(a.ShaderPath)
	} else {
		a.TriangleShader = a.Assets.RegisterShader("triangle", shaders.TriangleWGSL)
	}
	a.log.Infof("triangle shader: %s", a.Assets.Name(a.TriangleShader))

	a.Pipeline, err = gpu.CreateTrianglePipeline(state, "Triangle Pipeline", a.Assets.Listing(a.TriangleShader))
	if err != nil {
		return err
	}

	a.LastRenderTime = glfw.GetTime()
	return nil
}

func (a *App) Resize(width, height int) {
	a.Gpu.Resize(width, height)
}

// HandleMouseMoved tracks the cursor and drives the clear color from it:
// red follows the horizontal position, green the vertical.
func (a *App) HandleMouseMoved(xpos, ypos float64) {
	a.MouseX = xpos
	a.MouseY = ypos

	width, height := a.Window.GetFramebufferSize()
	if width == 0 || height == 0 {
		return
	}
	a.ClearColor.R = xpos / float64(width)
	a.ClearColor.G = ypos / float64(height)
}

func (a *App) Render() {
	nextTexture, err := a.Gpu.Surface.GetCurrentTexture()
	if err != nil {
		a.log.Errorf("GetCurrentTexture failed: %v", err)
		// A lost or outdated surface recovers after reconfiguration.
		width, height := a.Window.GetFramebufferSize()
		a.Gpu.Resize(width, height)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		a.log.Errorf("CreateView failed: %v", err)
		return
	}
	defer view.Release()

	encoder, err := a.Gpu.Device.CreateCommandEncoder(nil)
	if err != nil {
		a.log.Errorf("CreateCommandEncoder failed: %v", err)
		return
	}

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: a.ClearColor,
		}},
	})
	rPass.SetPipeline(a.Pipeline)
	// Three invocations, one instance, no vertex or index buffer.
	rPass.Draw(3, 1, 0, 0)
	if err := rPass.End(); err != nil {
		a.log.Errorf("render pass End failed: %v", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		a.log.Errorf("encoder Finish failed: %v", err)
		return
	}
	a.Gpu.Queue.Submit(cmd)
	a.Gpu.Surface.Present()

	// Update FPS
	now := glfw.GetTime()
	if a.LastRenderTime > 0 {
		a.FrameCount++
		a.FPSTime += now - a.LastRenderTime
		if a.FPSTime >= 1.0 {
			a.FPS = float64(a.FrameCount) / a.FPSTime
			a.FrameCount = 0
			a.FPSTime = 0
			a.log.Debugf("FPS: %.1f", a.FPS)
		}
	}
	a.LastRenderTime = now
}
