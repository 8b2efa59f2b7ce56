package sigpad

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel in
// row-major order. A freshly created Pixmap is fully transparent, which
// is the background every renderer in this package produces. Pixmaps
// returned by [Renderer] and [Trim] are never mutated afterwards; treat
// them as immutable values.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Non-positive dimensions yield a zero-area pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	px := c.nrgba()
	copy(p.data[(y*p.width+x)*4:], px[:])
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Fill sets every pixel to a color.
func (p *Pixmap) Fill(c RGBA) {
	px := c.nrgba()
	for i := 0; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], px[:])
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with
// the pixmap. Callers layer their own encoding (PNG, JPEG, ...) on top;
// the core defines no file formats.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	if pm.width == 0 || pm.height == 0 {
		return pm
	}
	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
