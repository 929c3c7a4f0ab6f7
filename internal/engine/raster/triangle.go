package raster

import (
	stdmath "math"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/pkg/math"
)

// screenVertex is a vertex after the perspective divide and viewport mapping.
type screenVertex struct {
	x, y, z float32 // pixels, pixels, NDC depth
	invW    float32
	color   [4]float32 // premultiplied by invW for perspective-correct lerp
}

// project maps a clip-space vertex into the framebuffer. It reports false
// for vertices behind the eye.
func (fb *FrameBuffer) project(clip math.Vec4, color math.Vec4) (screenVertex, bool) {
	w := clip[3]
	if w <= 1e-6 {
		return screenVertex{}, false
	}
	invW := 1 / w
	ndcX, ndcY, ndcZ := clip[0]*invW, clip[1]*invW, clip[2]*invW
	sv := screenVertex{
		x:    (ndcX + 1) * 0.5 * float32(fb.Width),
		y:    (1 - ndcY) * 0.5 * float32(fb.Height),
		z:    ndcZ,
		invW: invW,
	}
	for k := 0; k < 4; k++ {
		sv.color[k] = color[k] * invW
	}
	return sv, true
}

// DrawTriangle rasterizes one triangle with per-vertex colors through the
// clip-space transform pvm. Depth testing keeps the nearest fragment.
func (fb *FrameBuffer) DrawTriangle(pvm math.Mat4, tri [3]cubeman.Vertex) {
	var v [3]screenVertex
	for i := range tri {
		clip := pvm.MulVec4(tri[i].Position)
		// Outside the near or far plane
		if clip[2] < -clip[3] || clip[2] > clip[3] {
			return
		}
		sv, ok := fb.project(clip, tri[i].Color)
		if !ok {
			return
		}
		v[i] = sv
	}
	fb.fill(v)
}

func (fb *FrameBuffer) fill(v [3]screenVertex) {
	x0, y0 := v[0].x, v[0].y
	x1, y1 := v[1].x, v[1].y
	x2, y2 := v[2].x, v[2].y

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1 / det

	minX := clampInt(int(stdmath.Floor(float64(min3(x0, x1, x2)))), 0, fb.Width-1)
	maxX := clampInt(int(stdmath.Ceil(float64(max3(x0, x1, x2)))), 0, fb.Width-1)
	minY := clampInt(int(stdmath.Floor(float64(min3(y0, y1, y2)))), 0, fb.Height-1)
	maxY := clampInt(int(stdmath.Ceil(float64(max3(y0, y1, y2)))), 0, fb.Height-1)

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		py := float32(sy) + 0.5
		dsy := py - y2
		row := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			px := float32(sx) + 0.5
			dsx := px - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v[0].z + w1*v[1].z + w2*v[2].z
			idx := row + sx
			if z >= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = z

			invW := w0*v[0].invW + w1*v[1].invW + w2*v[2].invW
			o := idx * 4
			for k := 0; k < 4; k++ {
				c := (w0*v[0].color[k] + w1*v[1].color[k] + w2*v[2].color[k]) / invW
				fb.Color[o+k] = toByte(c)
			}
		}
	}
}

func toByte(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}
