package sigpad

import "fmt"

// maxBitmapPixels caps a single render at 2^28 pixels (a 1 GiB RGBA
// buffer). Requests beyond it fail with ErrBitmapTooLarge instead of
// taking down the process inside the allocator.
const maxBitmapPixels = 1 << 28

// Pad is the boundary a UI shell talks to: it owns the path model, the
// smoother, and the renderer, and exposes the gesture entry points,
// rasterization, and export.
//
// Gesture input is a single logical stream: one active gesture per pad,
// driven from one goroutine. Reading (CurrentPath, RenderToBitmap) is
// safe from any goroutine concurrently with input, because the pad only
// ever hands out immutable path snapshots.
type Pad struct {
	model    *PathModel
	smoother *Smoother
	style    StrokeStyle
	renderer Renderer
}

// NewPad creates a pad with an empty signature.
func NewPad(opts ...PadOption) *Pad {
	options := defaultPadOptions()
	for _, opt := range opts {
		opt(&options)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	model := NewPathModel()
	return &Pad{
		model:    model,
		smoother: NewSmoother(model, options.slop),
		style:    options.style,
		renderer: renderer,
	}
}

// StartStroke begins a stroke at pt (pointer down).
// Non-finite coordinates are rejected with ErrNonFinitePoint; the
// geometry below this boundary is total and never sees them.
func (p *Pad) StartStroke(pt Point) error {
	if !pt.IsFinite() {
		return fmt.Errorf("%w: (%v, %v)", ErrNonFinitePoint, pt.X, pt.Y)
	}
	p.smoother.Start(pt)
	return nil
}

// ExtendStroke feeds one pointer sample into the active stroke.
func (p *Pad) ExtendStroke(pt Point) error {
	if !pt.IsFinite() {
		return fmt.Errorf("%w: (%v, %v)", ErrNonFinitePoint, pt.X, pt.Y)
	}
	p.smoother.Extend(pt)
	return nil
}

// EndStroke finishes the stroke. Pointer up and cancel are equivalent:
// segments already appended stay, nothing rolls back.
func (p *Pad) EndStroke() {
	p.smoother.End()
}

// CurrentPath returns a read-only snapshot of the signature path.
func (p *Pad) CurrentPath() *Path {
	return p.model.Snapshot()
}

// Clear resets the pad to an empty signature. An in-progress gesture is
// ended first so its remaining samples cannot resurrect old geometry.
func (p *Pad) Clear() {
	p.smoother.End()
	p.model.Clear()
}

// Style returns the pen style used by RenderToBitmap.
func (p *Pad) Style() StrokeStyle {
	return p.style
}

// RenderToBitmap rasterizes the current path snapshot into a
// width×height pixmap with a transparent background.
//
// Negative dimensions are a boundary error (ErrInvalidDimensions); zero
// is not, the renderer yields a zero-area pixmap. Requests whose pixel
// buffer would exceed the allocation cap fail with ErrBitmapTooLarge and
// return no partial bitmap.
func (p *Pad) RenderToBitmap(width, height int) (*Pixmap, error) {
	return p.RenderToBitmapStyle(width, height, p.style)
}

// RenderToBitmapStyle is RenderToBitmap with a per-call pen style. The
// pad's configured style is left untouched.
func (p *Pad) RenderToBitmapStyle(width, height int, style StrokeStyle) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if height > 0 && width > maxBitmapPixels/height {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrBitmapTooLarge, width, height)
	}
	return p.renderer.Render(p.model.Snapshot(), width, height, style), nil
}

// ExportTrimmed finalizes a rendered bitmap.
//
// With trimBlankSpace true it crops pm to its non-transparent bounding
// box; ok is false when the bitmap is blank (an expected outcome for an
// empty signature, not an error). With trimBlankSpace false it returns pm
// unchanged without scanning a single pixel.
func (p *Pad) ExportTrimmed(pm *Pixmap, trimBlankSpace bool) (*Pixmap, bool) {
	if !trimBlankSpace {
		return pm, pm != nil
	}
	return Trim(pm, Transparent)
}

// ExportTrimmedAsync runs ExportTrimmed on the background worker pool so
// a caller rendering interactively is not blocked by the scan of a large
// bitmap. There is no cancellation: a caller that no longer wants the
// result simply discards the task.
func (p *Pad) ExportTrimmedAsync(pm *Pixmap, trimBlankSpace bool) *TrimTask {
	t := &TrimTask{done: make(chan struct{})}
	scanPool().Submit(func() {
		t.pm, t.ok = p.ExportTrimmed(pm, trimBlankSpace)
		close(t.done)
	})
	return t
}

// TrimTask is an in-flight background export. Create one with
// [Pad.ExportTrimmedAsync].
type TrimTask struct {
	done chan struct{}
	pm   *Pixmap
	ok   bool
}

// Wait blocks until the export completes and returns its result, with
// the same meaning as [Pad.ExportTrimmed].
func (t *TrimTask) Wait() (*Pixmap, bool) {
	<-t.done
	return t.pm, t.ok
}

// Done returns a channel closed when the export completes, for callers
// that poll with select instead of blocking in Wait.
func (t *TrimTask) Done() <-chan struct{} {
	return t.done
}
