package sigpad

// gestureState tracks where a pointer gesture is in its lifecycle.
type gestureState int

const (
	// gestureIdle means no pointer is down.
	gestureIdle gestureState = iota
	// gestureDown means the pointer is down but has not left the slop
	// radius; releasing now is a tap.
	gestureDown
	// gestureDragging means the pointer has moved past the slop radius;
	// every further sample extends the curve.
	gestureDragging
)

// DefaultSlop is the default drag classification threshold in pixels.
// Movement beyond this distance from the down point turns a potential tap
// into a drag.
const DefaultSlop = 4.0

// Smoother converts raw pointer samples into smooth path geometry.
//
// For each drag sample it appends a quadratic segment whose control point
// is the previous raw sample and whose endpoint is the midpoint between
// the previous and current samples. The resulting curve passes through
// sample midpoints rather than the samples themselves, which absorbs
// jitter from discrete sampling. A gesture that never exceeds the slop
// threshold is a tap and appends a single zero-length LineTo, which the
// round-cap pen renders as a dot.
//
// Smoother performs no input validation: callers reject non-finite
// coordinates at the boundary ([Pad] does). It does not suppress
// zero-length segments from repeated identical samples; renderers
// tolerate them.
type Smoother struct {
	sink *PathModel
	slop float64

	state gestureState
	down  Point
	prev  Point
}

// NewSmoother creates a smoother appending to sink with the given slop
// threshold. A zero slop classifies any movement at all as a drag.
func NewSmoother(sink *PathModel, slop float64) *Smoother {
	return &Smoother{sink: sink, slop: slop}
}

// Start begins a new stroke at p and appends its MoveTo.
// An unfinished previous gesture is ended first; a surface delivers one
// gesture at a time, so this only matters for misbehaving callers.
func (s *Smoother) Start(p Point) {
	if s.state != gestureIdle {
		s.End()
	}
	s.sink.Append(MoveTo{Point: p})
	s.state = gestureDown
	s.down = p
	s.prev = p
}

// Extend feeds one pointer sample into the active stroke.
// Samples arriving while no stroke is active are dropped. Samples inside
// the slop radius of the down point are absorbed without geometry until
// the gesture classifies as a drag.
func (s *Smoother) Extend(p Point) {
	switch s.state {
	case gestureIdle:
		return
	case gestureDown:
		if p.Distance(s.down) <= s.slop {
			return
		}
		s.state = gestureDragging
	}
	mid := s.prev.Midpoint(p)
	s.sink.Append(QuadTo{Control: s.prev, Point: mid})
	s.prev = p
}

// End finishes the stroke on pointer release or cancel.
// A tap (never classified as a drag) appends its dot here; a drag needs
// no further geometry. Either way the tracking state resets so the next
// Start is independent.
func (s *Smoother) End() {
	if s.state == gestureDown {
		s.sink.Append(LineTo{Point: s.down})
	}
	s.state = gestureIdle
	s.down = Point{}
	s.prev = Point{}
}
