package sigpad

// PathElement represents a single element in a signature path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new stroke at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point. A zero-length LineTo is valid and draws
// a dot under the round-cap pen model.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Path is an immutable ordered sequence of path elements.
//
// A well-formed path starts each stroke with a MoveTo; LineTo and QuadTo
// never appear before the first MoveTo. Paths handed out by [PathModel]
// and [Pad] are snapshots: they are never mutated after publication, so
// they are safe to read from any goroutine.
type Path struct {
	elements []PathElement
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// Elements returns the path elements in draw order.
// Callers must treat the returned slice as read-only.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// append returns a new Path holding the receiver's elements followed by
// elems. The receiver is left untouched; this is the snapshot-replace
// discipline that lets readers hold a Path while the writer keeps going.
func (p *Path) append(elems ...PathElement) *Path {
	next := make([]PathElement, 0, len(p.elements)+len(elems))
	next = append(next, p.elements...)
	next = append(next, elems...)
	return &Path{elements: next}
}
