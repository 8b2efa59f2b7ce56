// Package raster fills stroke outlines into pixel buffers.
//
// The heavy lifting is done by golang.org/x/image/vector, the standard
// CPU scanline rasterizer. This package only walks outline elements into
// the rasterizer and converts the premultiplied result into the
// non-premultiplied layout the rest of the library stores.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/inkwell/sigpad/internal/stroke"
)

// Rasterizer fills stroke outlines into a fixed-size buffer.
//
// A Rasterizer is reusable but not safe for concurrent use; each
// rendering goroutine needs its own.
type Rasterizer struct {
	width  int
	height int
	ras    *vector.Rasterizer
	tmp    *image.RGBA
}

// New creates a rasterizer for the given dimensions.
func New(width, height int) *Rasterizer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rasterizer{
		width:  width,
		height: height,
		ras:    vector.NewRasterizer(width, height),
		tmp:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Fill rasterizes outline with the given pen color into dst, which must
// have the rasterizer's dimensions. dst is written with draw.Src
// semantics: pixels not covered by the outline become transparent.
//
// Filling is deterministic: the same outline, pen, and dimensions always
// produce byte-identical pixels.
func (r *Rasterizer) Fill(dst *image.NRGBA, outline []stroke.Element, pen color.NRGBA) {
	clear(r.tmp.Pix)
	r.ras.Reset(r.width, r.height)

	for _, el := range outline {
		switch e := el.(type) {
		case stroke.MoveTo:
			r.ras.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case stroke.LineTo:
			r.ras.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case stroke.QuadTo:
			r.ras.QuadTo(
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case stroke.CubicTo:
			r.ras.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case stroke.Close:
			r.ras.ClosePath()
		}
	}

	// Fill into the premultiplied scratch buffer (the rasterizer's fast
	// path), then convert into the caller's non-premultiplied buffer.
	r.ras.Draw(r.tmp, r.tmp.Bounds(), image.NewUniform(pen), image.Point{})
	draw.Draw(dst, dst.Bounds(), r.tmp, image.Point{}, draw.Src)
}
