package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Logger is the subset of the app logger this package needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

type State struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Config  *wgpu.SurfaceConfiguration
}

// NewState wires the WebGPU stack for a GLFW window: instance, surface,
// adapter, device, queue and the initial surface configuration.
func NewState(window *glfw.Window, log Logger) (*State, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, err
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, err
	}
	queue := device.GetQueue()

	width, height := window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	log.Debugf("surface formats: %v", caps.Formats)
	log.Debugf("present modes: %v", caps.PresentModes)
	log.Debugf("alpha modes: %v", caps.AlphaModes)

	format := preferredFormat(caps.Formats)
	log.Infof("surface format: %v", format)

	config := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &config)

	return &State{
		Surface: surface,
		Adapter: adapter,
		Device:  device,
		Queue:   queue,
		Config:  &config,
	}, nil
}

// preferredFormat picks an sRGB surface format when the adapter offers one,
// falling back to the adapter's first choice.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatRGBA8UnormSrgb || f == wgpu.TextureFormatBGRA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}

// Resize reconfigures the surface. Zero sizes are ignored so a minimized
// window cannot wedge the swapchain.
func (s *State) Resize(width, height int) {
	if width > 0 && height > 0 {
		s.Config.Width = uint32(width)
		s.Config.Height = uint32(height)
		s.Surface.Configure(s.Adapter, s.Device, s.Config)
	}
}
