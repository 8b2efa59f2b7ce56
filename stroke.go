package sigpad

// StrokeStyle defines how the signature pen is drawn.
//
// Cap and join shape are not configurable: signature strokes always use
// round caps and round joins, which is what makes taps render as dots and
// keeps sharp direction changes from producing miter spikes.
type StrokeStyle struct {
	// Color is the pen color.
	Color RGBA

	// Width is the pen width in pixels (the same unit as path
	// coordinates; density is fixed at 1.0).
	Width float64
}

// DefaultStyle returns the default pen: opaque black, 5 pixels wide.
func DefaultStyle() StrokeStyle {
	return StrokeStyle{
		Color: Black,
		Width: 5.0,
	}
}

// WithColor returns a copy of the style with the given pen color.
func (s StrokeStyle) WithColor(c RGBA) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy of the style with the given pen width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// FinePen returns a thin 2-pixel pen.
func FinePen() StrokeStyle {
	return DefaultStyle().WithWidth(2.0)
}

// Pen returns the default 5-pixel pen.
func Pen() StrokeStyle {
	return DefaultStyle()
}

// Marker returns a broad 9-pixel pen.
func Marker() StrokeStyle {
	return DefaultStyle().WithWidth(9.0)
}
