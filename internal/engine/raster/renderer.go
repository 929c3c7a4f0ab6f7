package raster

import (
	"image"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/scene"
)

// Render draws every call into fb after clearing it to black.
func Render(fb *FrameBuffer, draws []scene.DrawCall) {
	fb.Clear(0, 0, 0)
	for _, d := range draws {
		mesh := d.Mesh
		for t := 0; t < cubeman.NumVertices/3; t++ {
			fb.DrawTriangle(d.PVM, mesh.Triangle(t))
		}
	}
}

// RenderState renders sc at state s into a new width x height image.
// The camera aspect is matched to the target size.
func RenderState(sc *scene.Scene, s scene.State, width, height int) (*image.NRGBA, error) {
	fb, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}
	s, _ = s.Resize(width, height)
	Render(fb, sc.Draws(s))
	return fb.Image(), nil
}
