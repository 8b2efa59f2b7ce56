package sigpad

import (
	"image"
	"image/color"

	"github.com/inkwell/sigpad/internal/raster"
	"github.com/inkwell/sigpad/internal/stroke"
)

// Renderer rasterizes a signature path into a pixmap.
//
// Implementations must be total over their inputs: non-positive
// dimensions yield a zero-area pixmap and an empty path yields an
// all-transparent one, never an error. Rendering must be deterministic so
// that identical inputs produce byte-identical pixels.
type Renderer interface {
	Render(path *Path, width, height int, style StrokeStyle) *Pixmap
}

// SoftwareRenderer is the CPU renderer. It expands the path to a filled
// outline under the round-cap, round-join pen model and fills the outline
// with the x/image/vector scanline rasterizer.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render implements Renderer.
func (r *SoftwareRenderer) Render(path *Path, width, height int, style StrokeStyle) *Pixmap {
	pm := NewPixmap(width, height)
	if pm.width == 0 || pm.height == 0 || path.Empty() || style.Width <= 0 {
		return pm
	}

	outline := stroke.NewExpander(style.Width).Expand(toStrokeElements(path))
	if len(outline) == 0 {
		return pm
	}

	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	px := style.Color.nrgba()
	pen := color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
	raster.New(pm.width, pm.height).Fill(dst, outline, pen)

	logger().Debug("sigpad: rendered path",
		"elements", path.Len(),
		"outline", len(outline),
		"width", pm.width,
		"height", pm.height,
	)
	return pm
}

// toStrokeElements converts public path elements to the internal stroke
// element set.
func toStrokeElements(path *Path) []stroke.Element {
	elems := make([]stroke.Element, 0, path.Len())
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case MoveTo:
			elems = append(elems, stroke.MoveTo{Point: stroke.Point(e.Point)})
		case LineTo:
			elems = append(elems, stroke.LineTo{Point: stroke.Point(e.Point)})
		case QuadTo:
			elems = append(elems, stroke.QuadTo{
				Control: stroke.Point(e.Control),
				Point:   stroke.Point(e.Point),
			})
		}
	}
	return elems
}
