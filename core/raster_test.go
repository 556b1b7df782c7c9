package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBarycentricAtVertices(t *testing.T) {
	tri := Triangle()
	tests := []struct {
		name       string
		px, py     float32
		w0, w1, w2 float32
	}{
		{"vertex0", tri[0].ClipPosition.X(), tri[0].ClipPosition.Y(), 1, 0, 0},
		{"vertex1", tri[1].ClipPosition.X(), tri[1].ClipPosition.Y(), 0, 1, 0},
		{"vertex2", tri[2].ClipPosition.X(), tri[2].ClipPosition.Y(), 0, 0, 1},
	}
	for _, tt := range tests {
		w0, w1, w2 := Barycentric(tri, tt.px, tt.py)
		if !closeEnough(w0, tt.w0, 1e-6) || !closeEnough(w1, tt.w1, 1e-6) || !closeEnough(w2, tt.w2, 1e-6) {
			t.Errorf("%s: weights (%f, %f, %f), want (%f, %f, %f)", tt.name, w0, w1, w2, tt.w0, tt.w1, tt.w2)
		}
	}
}

func TestBarycentricWeightsSumToOne(t *testing.T) {
	tri := Triangle()
	points := [][2]float32{{0.2, 0}, {0.5, -0.2}, {-0.1, -0.4}, {0.9, 0.9}}
	for _, p := range points {
		w0, w1, w2 := Barycentric(tri, p[0], p[1])
		if !closeEnough(w0+w1+w2, 1.0, 1e-5) {
			t.Errorf("point %v: weights sum to %f", p, w0+w1+w2)
		}
	}
}

func TestInterpolateUVAtCentroid(t *testing.T) {
	tri := Triangle()
	uv := InterpolateUV(tri, 1.0/3, 1.0/3, 1.0/3)
	want := mgl32.Vec2{0.5, 1.0 / 3}
	if !closeEnough(uv.X(), want.X(), 1e-6) || !closeEnough(uv.Y(), want.Y(), 1e-6) {
		t.Errorf("centroid uv = %v, want %v", uv, want)
	}
}

func TestRasterizeCentroidColor(t *testing.T) {
	const size = 256
	img := Rasterize(size, size)

	// Clip-space centroid (0.2, -1/6) maps back to a pixel near the middle of
	// the lower half. Interpolated uv there is (0.5, 1/3).
	cx, cy := float64(0.2), -1.0/6
	px := int((cx+1)/2*size - 0.5)
	py := int((1-cy)/2*size - 0.5)

	base := img.PixOffset(px, py)
	if img.Pix[base+3] != 255 {
		t.Fatalf("centroid pixel (%d, %d) not covered", px, py)
	}

	want := FragmentStage(mgl32.Vec2{0.5, 1.0 / 3})
	for c := 0; c < 4; c++ {
		got := int(img.Pix[base+c])
		expect := int(channelToByte(want[c]))
		if diff := got - expect; diff < -6 || diff > 6 {
			t.Errorf("channel %d = %d, want %d (+-6)", c, got, expect)
		}
	}
}

func TestRasterizeCornersUncovered(t *testing.T) {
	img := Rasterize(64, 64)
	corners := [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}}
	for _, c := range corners {
		base := img.PixOffset(c[0], c[1])
		if img.Pix[base+3] != 0 {
			t.Errorf("corner (%d, %d) should be uncovered", c[0], c[1])
		}
	}
}

func TestRasterizeCoverageFraction(t *testing.T) {
	// The triangle covers half its signed area (1.0/2) out of the 2x2 NDC
	// square, i.e. 12.5% of the pixels.
	const size = 128
	img := Rasterize(size, size)
	covered := 0
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			if img.Pix[img.PixOffset(px, py)+3] != 0 {
				covered++
			}
		}
	}
	fraction := float32(covered) / float32(size*size)
	if !closeEnough(fraction, 0.125, 0.01) {
		t.Errorf("covered fraction = %f, want ~0.125", fraction)
	}
}

func TestUpscale(t *testing.T) {
	img := Rasterize(16, 16)
	big := Upscale(img, 4)
	if big.Bounds().Dx() != 64 || big.Bounds().Dy() != 64 {
		t.Fatalf("upscaled bounds = %v, want 64x64", big.Bounds())
	}
	if Upscale(img, 1) != img {
		t.Errorf("factor 1 should return the input unchanged")
	}
}

func TestWritePNG(t *testing.T) {
	img := Rasterize(32, 32)
	path := filepath.Join(t.TempDir(), "triangle.png")
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("wrote an empty PNG")
	}
}
