// Package snapshot renders the figure off screen and writes the result as
// still images, numbered sequences or an animated WebP loop.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnknownFormat is returned for an output format that has no encoder.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	WebP
	TGA
)

var formatNames = [...]string{PNG: "png", WebP: "webp", TGA: "tga"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// EncodeAnimation writes frames as a looping animated WebP, each shown for
// frameMs milliseconds.
func EncodeAnimation(w io.Writer, frames []image.Image, frameMs int) error {
	if len(frames) == 0 {
		return errors.New("snapshot: animation has no frames")
	}
	ani := &nativewebp.Animation{
		Images:          frames,
		Durations:       make([]uint, len(frames)),
		Disposals:       make([]uint, len(frames)),
		LoopCount:       0,
		BackgroundColor: 0xff000000,
	}
	for i := range frames {
		ani.Durations[i] = uint(frameMs)
	}
	return nativewebp.EncodeAll(w, ani, nil)
}

// WriteFile encodes img into path, creating parent directories.
func WriteFile(path string, img image.Image, f Format) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, img, f) })
}

// WriteAnimation writes an animated WebP to path.
func WriteAnimation(path string, frames []image.Image, frameMs int) error {
	return writeFile(path, func(w io.Writer) error { return EncodeAnimation(w, frames, frameMs) })
}

func writeFile(path string, encode func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return file.Close()
}
