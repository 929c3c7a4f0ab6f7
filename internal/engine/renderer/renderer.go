// Package renderer draws the figure with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/cubeman"
	"github.com/Faultbox/cubeman/internal/engine/shader"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the cube buffers and the color program.
type Renderer struct {
	config Config

	program *shader.Program
	locPVM  int32

	vao uint32
	vbo uint32
}

// New creates a renderer and uploads the cube mesh.
// Must be called after the OpenGL context is created.
func New(cfg Config, mesh *cubeman.Mesh) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.NewCube()
	if err != nil {
		return nil, err
	}
	r.locPVM, err = r.program.Uniform(shader.UniformPVM)
	if err != nil {
		r.program.Delete()
		return nil, err
	}

	r.upload(mesh)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// upload stores positions then colors in one buffer.
func (r *Renderer) upload(mesh *cubeman.Mesh) {
	positions := mesh.Positions()
	colors := mesh.Colors()
	posBytes := len(positions) * 4
	colBytes := len(colors) * 4

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, posBytes+colBytes, nil, gl.STATIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, posBytes, unsafe.Pointer(&positions[0]))
	gl.BufferSubData(gl.ARRAY_BUFFER, posBytes, colBytes, unsafe.Pointer(&colors[0]))

	gl.VertexAttribPointer(shader.AttribPosition, 4, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(shader.AttribPosition)
	gl.VertexAttribPointerWithOffset(shader.AttribColor, 4, gl.FLOAT, false, 0, uintptr(posBytes))
	gl.EnableVertexAttribArray(shader.AttribColor)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("cube uploaded",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Int("vertices", cubeman.NumVertices),
	)
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin clears color and depth.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw submits one cube per draw call.
func (r *Renderer) Draw(draws []scene.DrawCall) {
	r.program.Use()
	gl.BindVertexArray(r.vao)
	for i := range draws {
		gl.UniformMatrix4fv(r.locPVM, 1, false, draws[i].PVM.Ptr())
		gl.DrawArrays(gl.TRIANGLES, 0, cubeman.NumVertices)
	}
	gl.BindVertexArray(0)
}

// End flushes the frame.
func (r *Renderer) End() {
	gl.Flush()
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
