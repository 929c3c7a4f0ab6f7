package snapshot

import (
	"context"
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// RenderSequence renders one frame per time with at most workers frames in
// flight. Frames come back in the order of times.
func (r *Renderer) RenderSequence(ctx context.Context, times []float64, workers int) ([]*image.NRGBA, error) {
	frames := make([]*image.NRGBA, len(times))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range times {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := r.Frame(t)
			if err != nil {
				return err
			}
			frames[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// FramePath returns the file name of frame i in a numbered sequence.
func FramePath(dir, prefix string, i int, f Format) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%03d%s", prefix, i, f.Ext()))
}

// WriteSequence writes frames as numbered files and returns their paths.
func WriteSequence(dir, prefix string, frames []*image.NRGBA, f Format) ([]string, error) {
	paths := make([]string, len(frames))
	for i, img := range frames {
		paths[i] = FramePath(dir, prefix, i, f)
		if err := WriteFile(paths[i], img, f); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// Images converts frames for EncodeAnimation.
func Images(frames []*image.NRGBA) []image.Image {
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = f
	}
	return out
}
