package sigpad

// PadOption configures a Pad during creation.
//
// Example:
//
//	// Defaults: 4px slop, 5px black pen, software renderer
//	pad := sigpad.NewPad()
//
//	// Broad blue pen with a larger touch slop
//	pad := sigpad.NewPad(
//	    sigpad.WithStyle(sigpad.Marker().WithColor(sigpad.Blue)),
//	    sigpad.WithSlop(8),
//	)
type PadOption func(*padOptions)

// padOptions holds optional configuration for Pad creation.
type padOptions struct {
	slop     float64
	style    StrokeStyle
	renderer Renderer
}

// defaultPadOptions returns the default pad options.
func defaultPadOptions() padOptions {
	return padOptions{
		slop:     DefaultSlop,
		style:    DefaultStyle(),
		renderer: nil, // Will be set to SoftwareRenderer if nil
	}
}

// WithSlop sets the drag classification threshold in pixels. Movement
// beyond this distance from the down point turns a tap into a drag.
func WithSlop(slop float64) PadOption {
	return func(o *padOptions) {
		o.slop = slop
	}
}

// WithStyle sets the pen style used by RenderToBitmap.
func WithStyle(style StrokeStyle) PadOption {
	return func(o *padOptions) {
		o.style = style
	}
}

// WithRenderer sets a custom renderer for the Pad.
// Use this for dependency injection of an accelerated or instrumented
// renderer in place of the default software one.
func WithRenderer(r Renderer) PadOption {
	return func(o *padOptions) {
		o.renderer = r
	}
}
