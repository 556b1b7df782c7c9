package shaders

import (
	_ "embed"
)

// Entry point names the render pipeline binds to.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed triangle.wgsl
var TriangleWGSL string
