package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/trigon/shaders"
)

// CreateTrianglePipeline builds the render pipeline for the procedural
// triangle. The vertex stage synthesizes its own geometry from the vertex
// index, so no vertex buffer layouts are bound; the only user-defined value
// crossing the stages is the UV interpolant at location 0.
func CreateTrianglePipeline(state *State, name string, shaderCode string) (*wgpu.RenderPipeline, error) {
	shader, err := state.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		return nil, err
	}
	defer shader.Release()

	return state.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: shaders.VertexEntryPoint,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: shaders.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    state.Config.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
}
