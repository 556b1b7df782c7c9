package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexRecord is the vertex stage output: a clip-space position plus the
// single UV interpolant carried through rasterization to the fragment stage.
type VertexRecord struct {
	ClipPosition mgl32.Vec4
	UV           mgl32.Vec2
}

// FragmentColor is an RGBA color with each channel nominally in [0,1].
type FragmentColor = mgl32.Vec4

// VertexStage computes the clip position and UV for one of the three
// procedurally generated triangle vertices. index must be 0, 1 or 2; the
// draw-call issuer owns that contract. Pure and order-independent, so the
// three invocations can run in any order.
//
// The clip position is shifted +0.2 along X while the UV is derived from the
// unshifted coordinate. That asymmetry is intentional and must stay.
func VertexStage(index uint32) VertexRecord {
	i := int32(index)
	x := float32(1-i) * 0.5
	y := float32((i&1)*2-1) * 0.5
	return VertexRecord{
		ClipPosition: mgl32.Vec4{x + 0.2, y, 0.0, 1.0},
		UV:           mgl32.Vec2{x + 0.5, y + 0.5},
	}
}

// FragmentStage maps an interpolated UV to the output color: red mirrors U,
// green mirrors V, blue is fixed at 0.5, alpha is opaque. No clamping; values
// outside [0,1] are the output merger's problem, not ours.
func FragmentStage(uv mgl32.Vec2) FragmentColor {
	return FragmentColor{uv.X(), uv.Y(), 0.5, 1.0}
}

// Triangle returns the three vertex records for indices 0, 1, 2.
func Triangle() [3]VertexRecord {
	return [3]VertexRecord{
		VertexStage(0),
		VertexStage(1),
		VertexStage(2),
	}
}

// SignedArea is twice the signed area of the triangle's clip positions
// projected onto the XY plane. Positive for counter-clockwise winding.
func SignedArea(tri [3]VertexRecord) float32 {
	ax, ay := tri[0].ClipPosition.X(), tri[0].ClipPosition.Y()
	bx, by := tri[1].ClipPosition.X(), tri[1].ClipPosition.Y()
	cx, cy := tri[2].ClipPosition.X(), tri[2].ClipPosition.Y()
	return (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
}
