package snapshot

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/engine/raster"
	"github.com/Faultbox/cubeman/internal/scene"
)

// Renderer produces square frames of the figure with the CPU rasterizer.
// It is safe for concurrent use.
type Renderer struct {
	scene       *scene.Scene
	view        camera.Preset
	size        int
	supersample int
}

// NewRenderer returns a renderer for size x size images. The figure is
// rasterized at size*supersample and filtered down.
func NewRenderer(sc *scene.Scene, view camera.Preset, size, supersample int) *Renderer {
	if supersample < 1 {
		supersample = 1
	}
	return &Renderer{
		scene:       sc,
		view:        view,
		size:        size,
		supersample: supersample,
	}
}

// Frame renders the figure at the given animation time.
func (r *Renderer) Frame(seconds float64) (*image.NRGBA, error) {
	s := r.scene.Step(r.scene.Initial(), seconds).SelectView(r.view)
	img, err := raster.RenderState(r.scene, s, r.size*r.supersample, r.size*r.supersample)
	if err != nil {
		return nil, fmt.Errorf("rendering t=%.3fs: %w", seconds, err)
	}
	return Downsample(img, r.size), nil
}

// FrameTimes spreads n sample times evenly over one cycle, starting at 0.
func FrameTimes(cycle float64, n int) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = cycle * float64(i) / float64(n)
	}
	return times
}

// Downsample scales img to size x size with a Catmull-Rom filter.
// Images already at or below the target are returned as is.
func Downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
