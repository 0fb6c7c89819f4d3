// Package raster is the reference Image/Container collaborator: a flat,
// contiguous byte-buffer raster with no row-pointer indirection. It exists
// so pixconv.Convert has something concrete to drive in tests, examples,
// and the pixconv CLI — the engine itself never depends on this package.
package raster

import (
	"github.com/deepteams/pixconv"
)

// maxBytes bounds a single raster allocation. It exists so NewLike has a
// concrete, testable path to OutOfMemory rather than that failure kind
// being unreachable from this reference Container.
const maxBytes = 1 << 34

// Image is a contiguous-buffer implementation of pixconv.Image.
type Image struct {
	width, height int
	mode          pixconv.Mode
	pitch         int
	pix           []byte
	pal           *pixconv.Palette
}

// New allocates a zeroed image of the given mode and shape.
func New(mode pixconv.Mode, width, height int) *Image {
	pitch := width * mode.BytesPerPixel()
	return &Image{
		width:  width,
		height: height,
		mode:   mode,
		pitch:  pitch,
		pix:    make([]byte, pitch*height),
	}
}

func (im *Image) Width() int         { return im.width }
func (im *Image) Height() int        { return im.height }
func (im *Image) ModeOf() pixconv.Mode { return im.mode }
func (im *Image) Pitch() int         { return im.pitch }

func (im *Image) RowBytes(y int) []byte {
	off := y * im.pitch
	return im.pix[off : off+im.pitch]
}

// RowIndices is identical to RowBytes: P-mode images in this
// implementation store one index byte per pixel in the same buffer plain
// modes use.
func (im *Image) RowIndices(y int) []byte {
	return im.RowBytes(y)
}

func (im *Image) Palette() *pixconv.Palette { return im.pal }

func (im *Image) SetPalette(p *pixconv.Palette) { im.pal = p }

// Container is the reference pixconv.Container backed by Image.
type Container struct{}

func (Container) NewLike(mode pixconv.Mode, width, height int, out, template pixconv.Image) (pixconv.Image, error) {
	if width == 0 && height == 0 && template != nil {
		width, height = template.Width(), template.Height()
	}
	if out != nil {
		if out.ModeOf() != mode || out.Width() != width || out.Height() != height {
			return nil, pixconv.NewConvertError(pixconv.BadMode,
				"preallocated output is %s %dx%d, want %s %dx%d",
				out.ModeOf(), out.Width(), out.Height(), mode, width, height)
		}
		return out, nil
	}

	pitch := int64(width) * int64(mode.BytesPerPixel())
	if pitch*int64(height) > maxBytes {
		return nil, pixconv.NewConvertError(pixconv.OutOfMemory,
			"%s %dx%d exceeds %d bytes", mode, width, height, maxBytes)
	}

	return New(mode, width, height), nil
}

func (c Container) Copy(dst, src pixconv.Image) (pixconv.Image, error) {
	out, err := c.NewLike(src.ModeOf(), src.Width(), src.Height(), dst, src)
	if err != nil {
		return nil, err
	}
	for y := 0; y < src.Height(); y++ {
		copy(out.RowBytes(y), src.RowBytes(y))
	}
	if pal := src.Palette(); pal != nil {
		out.SetPalette(pal.Duplicate())
	}
	return out, nil
}

func (Container) Delete(pixconv.Image) {
	// Backed entirely by GC-managed slices; nothing to release. Kept as
	// a method so callers that always bracket allocation with Delete on
	// failure paths don't need a type switch on the Container they hold.
}
