// Package stroke expands a stroked pen path into a filled outline.
//
// The expansion follows the tiny-skia/kurbo scheme: the outer offset path
// runs forward, the inner offset path is appended reversed, and round caps
// and joins stitch the two together. The pen model is fixed to round caps
// and round joins, so taps become dots and sharp turns never spike.
package stroke

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the negated point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared vector length.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Perp returns the perpendicular vector (rotated 90 degrees CCW).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the vector angle in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Element represents an element in a path.
type Element interface {
	isElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve. Only produced on output, for the
// arcs of round caps and joins.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath. Only produced on output.
type Close struct{}

func (Close) isElement() {}

// Expander converts stroked pen paths to filled outlines.
type Expander struct {
	width float64

	// Tolerance for quadratic flattening and the join-skip test.
	// Smaller values produce more segments.
	tolerance float64

	// Build state
	forward  *builder
	backward *builder
	output   *builder

	// Current subpath state
	started   bool // subpath has seen its MoveTo
	startPt   Point
	startNorm Point
	lastPt    Point
	lastTan   Point
	lastNorm  Point

	// Join threshold for skipping near-straight joins
	joinThresh float64
}

// NewExpander creates an expander for the given pen width.
func NewExpander(width float64) *Expander {
	return &Expander{
		width:     width,
		tolerance: 0.25,
	}
}

// Expand converts a pen path (MoveTo, LineTo, QuadTo) to a fill outline.
//
// Zero-length segments are tolerated: a subpath whose every point
// coincides with its start still produces a dot, a full pen-width circle,
// because the round-cap pen has area even with no direction of travel.
func (e *Expander) Expand(elements []Element) []Element {
	e.reset()

	for _, el := range elements {
		switch elem := el.(type) {
		case MoveTo:
			e.finish()
			e.started = true
			e.startPt = elem.Point
			e.lastPt = elem.Point
		case LineTo:
			if elem.Point != e.lastPt {
				tangent := elem.Point.Sub(e.lastPt)
				e.doJoin(tangent)
				e.lastTan = tangent
				e.doLine(tangent, elem.Point)
			}
		case QuadTo:
			if elem.Control != e.lastPt || elem.Point != e.lastPt {
				e.doQuad(elem.Control, elem.Point)
			}
		}
	}

	e.finish()
	return e.output.build()
}

// reset clears the expander state for a new expansion.
func (e *Expander) reset() {
	e.forward = newBuilder()
	e.backward = newBuilder()
	e.output = newBuilder()
	e.started = false
	e.startPt = Point{}
	e.startNorm = Point{}
	e.lastPt = Point{}
	e.lastTan = Point{}
	e.lastNorm = Point{}
	e.joinThresh = 2.0 * e.tolerance / e.width
}

// doJoin connects the incoming segment to the previous one.
func (e *Expander) doJoin(tan0 Point) {
	scale := 0.5 * e.width / tan0.Length()
	norm := tan0.Perp().Scale(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTangent(tan0, norm)
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Near-straight continuation: skip the join but still connect both
	// offset paths, otherwise they gap where tangents coincide.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	// Round join: arc on the outside of the turn, straight connection on
	// the inside.
	lastScale := 0.5 * e.width / ab.Length()
	lastNorm := ab.Perp().Scale(lastScale)
	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		e.backward.lineTo(p0.Add(norm))
		e.roundArc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.roundArc(e.backward, p0, lastNorm.Neg(), -angle)
	}
}

// startTangent records the start normal and tangent of the subpath for
// the final start cap.
func (e *Expander) startTangent(tan0, norm Point) {
	e.startNorm = norm
	e.lastTan = tan0
}

// doLine extends both offset paths with a line segment.
func (e *Expander) doLine(tangent Point, p1 Point) {
	scale := 0.5 * e.width / tangent.Length()
	norm := tangent.Perp().Scale(scale)

	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// doQuad handles a quadratic Bezier curve by flattening it to lines.
func (e *Expander) doQuad(control, end Point) {
	points := e.flattenQuad(e.lastPt, control, end)
	for i := 1; i < len(points); i++ {
		tangent := points[i].Sub(points[i-1])
		if tangent.LengthSquared() > 1e-10 {
			e.doJoin(tangent)
			e.lastTan = tangent
			e.doLine(tangent, points[i])
		}
	}
}

// finish completes the current subpath with round end caps, or a dot when
// the subpath never produced offset geometry.
func (e *Expander) finish() {
	if e.forward.isEmpty() {
		if e.started {
			e.emitDot(e.startPt)
		}
		e.started = false
		return
	}

	// Outer offset path goes forward.
	e.output.appendPath(e.forward)

	// End cap. lastNorm points toward the backward path; the cap arcs
	// from the forward side, so negate it.
	e.roundArc(e.output, e.lastPt, e.lastNorm.Neg(), math.Pi)

	// Inner offset path goes backward.
	e.appendReversed(e.backward)

	// Start cap, then close the outline.
	e.roundArc(e.output, e.startPt, e.startNorm, math.Pi)
	e.output.close()

	e.started = false
	e.forward = newBuilder()
	e.backward = newBuilder()
}

// emitDot outputs a full circle of half the pen width around center.
// This is what a round-capped zero-length segment draws.
func (e *Expander) emitDot(center Point) {
	r := 0.5 * e.width
	if r <= 0 {
		return
	}
	e.output.moveTo(Point{X: center.X + r, Y: center.Y})
	for i := 0; i < 4; i++ {
		a0 := float64(i) * math.Pi / 2
		e.arcSegment(e.output, center, r, a0, a0+math.Pi/2)
	}
	e.output.close()
}

// roundArc adds a round cap or join arc sweeping angle radians from norm.
func (e *Expander) roundArc(out *builder, center Point, norm Point, angle float64) {
	numSegments := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if numSegments < 1 {
		numSegments = 1
	}

	angleStep := angle / float64(numSegments)
	currentAngle := norm.Angle()
	radius := norm.Length()

	for i := 0; i < numSegments; i++ {
		e.arcSegment(out, center, radius, currentAngle, currentAngle+angleStep)
		currentAngle += angleStep
	}
}

// arcSegment adds a single arc segment (up to 90 degrees) as a cubic
// Bezier, using the standard polyline-to-Bezier arc approximation.
func (e *Expander) arcSegment(out *builder, center Point, radius, a0, a1 float64) {
	da := a1 - a0
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	out.cubicTo(c1, c2, p2)
}

// appendReversed appends the backward path in reverse order.
func (e *Expander) appendReversed(pb *builder) {
	elems := pb.elements
	for i := len(elems) - 1; i >= 1; i-- {
		endPt := endPoint(elems[i-1])
		switch el := elems[i].(type) {
		case LineTo:
			e.output.lineTo(endPt)
		case QuadTo:
			e.output.quadTo(el.Control, endPt)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, endPt)
		}
	}
}

// flattenQuad flattens a quadratic Bezier curve to line segments within
// the expander tolerance.
func (e *Expander) flattenQuad(p0, p1, p2 Point) []Point {
	points := []Point{p0}
	e.flattenQuadRec(p0, p1, p2, &points)
	return points
}

func (e *Expander) flattenQuadRec(p0, p1, p2 Point, points *[]Point) {
	if distanceToLine(p1, p0, p2) < e.tolerance {
		*points = append(*points, p2)
		return
	}

	// Subdivide at the midpoint
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	e.flattenQuadRec(p0, q0, q2, points)
	e.flattenQuadRec(q2, q1, p2, points)
}

// distanceToLine calculates the distance from point p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Sub(a).Length()
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Sub(a).Length()
	}
	if t > 1 {
		return p.Sub(b).Length()
	}

	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).Length()
}

// endPoint returns the endpoint of a path element.
func endPoint(el Element) Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case CubicTo:
		return e.Point
	default:
		return Point{}
	}
}

// builder is a helper for building outline paths.
type builder struct {
	elements []Element
}

func newBuilder() *builder {
	return &builder{
		elements: make([]Element, 0, 64),
	}
}

func (b *builder) isEmpty() bool {
	return len(b.elements) == 0
}

func (b *builder) moveTo(p Point) {
	b.elements = append(b.elements, MoveTo{Point: p})
}

func (b *builder) lineTo(p Point) {
	b.elements = append(b.elements, LineTo{Point: p})
}

func (b *builder) quadTo(c, p Point) {
	b.elements = append(b.elements, QuadTo{Control: c, Point: p})
}

func (b *builder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (b *builder) close() {
	b.elements = append(b.elements, Close{})
}

func (b *builder) appendPath(other *builder) {
	b.elements = append(b.elements, other.elements...)
}

func (b *builder) build() []Element {
	return b.elements
}
