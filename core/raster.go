package core

import (
	"image"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// Barycentric returns the barycentric weights of point (px, py) with respect
// to the triangle's clip positions projected onto XY. The weights sum to 1;
// all three are non-negative iff the point is inside the triangle.
func Barycentric(tri [3]VertexRecord, px, py float32) (w0, w1, w2 float32) {
	area := SignedArea(tri)
	if area == 0 {
		return 0, 0, 0
	}
	ax, ay := tri[0].ClipPosition.X(), tri[0].ClipPosition.Y()
	bx, by := tri[1].ClipPosition.X(), tri[1].ClipPosition.Y()
	cx, cy := tri[2].ClipPosition.X(), tri[2].ClipPosition.Y()

	w0 = ((bx-px)*(cy-py) - (cx-px)*(by-py)) / area
	w1 = ((cx-px)*(ay-py) - (ax-px)*(cy-py)) / area
	w2 = ((ax-px)*(by-py) - (bx-px)*(ay-py)) / area
	return w0, w1, w2
}

// InterpolateUV linearly combines the three vertex UVs with the given
// barycentric weights. All clip w components are 1, so plain linear
// interpolation matches what the hardware interpolator would produce.
func InterpolateUV(tri [3]VertexRecord, w0, w1, w2 float32) mgl32.Vec2 {
	return tri[0].UV.Mul(w0).Add(tri[1].UV.Mul(w1)).Add(tri[2].UV.Mul(w2))
}

// Rasterize runs the stage pair on the CPU: it samples every pixel center,
// interpolates UV across the triangle and shades covered pixels with
// FragmentStage. Uncovered pixels stay transparent black. This is a reference
// path for headless verification, not a performance path.
func Rasterize(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tri := Triangle()

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			// Pixel center to NDC. Image rows grow downward, clip-space Y grows upward.
			nx := (float32(px)+0.5)/float32(width)*2 - 1
			ny := 1 - (float32(py)+0.5)/float32(height)*2

			w0, w1, w2 := Barycentric(tri, nx, ny)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			color := FragmentStage(InterpolateUV(tri, w0, w1, w2))
			base := img.PixOffset(px, py)
			img.Pix[base+0] = channelToByte(color.X())
			img.Pix[base+1] = channelToByte(color.Y())
			img.Pix[base+2] = channelToByte(color.Z())
			img.Pix[base+3] = channelToByte(color.W())
		}
	}
	return img
}

// channelToByte clamps to [0,1] and quantizes to 8 bits, the way a Unorm
// color target would.
func channelToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Upscale enlarges a rasterized image by an integer factor with
// nearest-neighbor sampling, for eyeballing small reference rasters.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG stores an image as a PNG file.
func WritePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
