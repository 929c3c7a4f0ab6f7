// Package raster is a CPU rasterizer for the color cube figure. It draws the
// same draw calls as the OpenGL renderer into an in-memory image, so frames
// can be produced without a display.
package raster

import (
	"errors"
	"image"
	"math"
)

// ErrEmptyTarget is returned for a framebuffer with no pixels.
var ErrEmptyTarget = errors.New("raster: empty render target")

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // NDC depth per pixel, len = W*H, smaller is nearer
}

// NewFrameBuffer allocates a black color buffer and a cleared depth buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyTarget
	}
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		Depth:  make([]float32, w*h),
	}
	fb.Clear(0, 0, 0)
	return fb, nil
}

// Clear fills color with an opaque RGB and resets depth to the far plane.
func (fb *FrameBuffer) Clear(r, g, b uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 255
	}
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// At returns the color of pixel (x, y), origin top-left.
func (fb *FrameBuffer) At(x, y int) [4]uint8 {
	i := (y*fb.Width + x) * 4
	return [4]uint8{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
