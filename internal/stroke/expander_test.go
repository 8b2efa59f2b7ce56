package stroke

import (
	"math"
	"testing"
)

// outlineBounds folds every outline point into a min/max box.
func outlineBounds(t *testing.T, outline []Element) (minX, minY, maxX, maxY float64) {
	t.Helper()
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	include := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, el := range outline {
		switch e := el.(type) {
		case MoveTo:
			include(e.Point)
		case LineTo:
			include(e.Point)
		case QuadTo:
			include(e.Control)
			include(e.Point)
		case CubicTo:
			include(e.Control1)
			include(e.Control2)
			include(e.Point)
		}
	}
	return
}

func TestExpander_Empty(t *testing.T) {
	outline := NewExpander(4).Expand(nil)
	if len(outline) != 0 {
		t.Errorf("expected empty outline, got %d elements", len(outline))
	}
}

func TestExpander_LineOutlineBounds(t *testing.T) {
	// A horizontal line of width 10 expands to an outline within the
	// stroke footprint: 5 on each side plus the round caps.
	elems := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 100, Y: 0}},
	}
	outline := NewExpander(10).Expand(elems)
	if len(outline) == 0 {
		t.Fatal("expected outline geometry")
	}

	minX, minY, maxX, maxY := outlineBounds(t, outline)
	// Control points of the cap cubics may slightly overshoot the arc,
	// so allow a small epsilon.
	const eps = 0.5
	if minX < -5-eps || maxX > 105+eps || minY < -5-eps || maxY > 5+eps {
		t.Errorf("outline bounds (%v,%v)-(%v,%v) exceed stroke footprint", minX, minY, maxX, maxY)
	}
	if maxY-minY < 9 {
		t.Errorf("outline thinner than the pen: dy=%v", maxY-minY)
	}
}

func TestExpander_StartsWithMoveEndsWithClose(t *testing.T) {
	elems := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 10, Y: 0}, Point: Point{X: 10, Y: 10}},
	}
	outline := NewExpander(4).Expand(elems)
	if len(outline) < 3 {
		t.Fatalf("expected a closed outline, got %d elements", len(outline))
	}
	if _, ok := outline[0].(MoveTo); !ok {
		t.Errorf("outline must start with MoveTo, got %#v", outline[0])
	}
	if _, ok := outline[len(outline)-1].(Close); !ok {
		t.Errorf("outline must end with Close, got %#v", outline[len(outline)-1])
	}
}

func TestExpander_DegenerateSubpathDot(t *testing.T) {
	// All points coincide: the round pen still has area, so the outline
	// is a full circle of half the pen width.
	tests := []struct {
		name  string
		elems []Element
	}{
		{"BareMove", []Element{
			MoveTo{Point: Point{X: 20, Y: 30}},
		}},
		{"ZeroLine", []Element{
			MoveTo{Point: Point{X: 20, Y: 30}},
			LineTo{Point: Point{X: 20, Y: 30}},
		}},
		{"ZeroQuad", []Element{
			MoveTo{Point: Point{X: 20, Y: 30}},
			QuadTo{Control: Point{X: 20, Y: 30}, Point: Point{X: 20, Y: 30}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := NewExpander(8).Expand(tt.elems)
			if len(outline) == 0 {
				t.Fatal("degenerate subpath should produce a dot")
			}

			minX, minY, maxX, maxY := outlineBounds(t, outline)
			const eps = 0.5
			if math.Abs((minX+maxX)/2-20) > eps || math.Abs((minY+maxY)/2-30) > eps {
				t.Errorf("dot not centered on the point: bounds (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
			}
			if maxX-minX < 7 || maxX-minX > 9 {
				t.Errorf("dot diameter should be about the pen width, got %v", maxX-minX)
			}
		})
	}
}

func TestExpander_TwoSubpaths(t *testing.T) {
	// Two strokes expand independently: two MoveTo, two Close.
	elems := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 50, Y: 0}},
		MoveTo{Point: Point{X: 0, Y: 40}},
		LineTo{Point: Point{X: 50, Y: 40}},
	}
	outline := NewExpander(6).Expand(elems)

	moves, closes := 0, 0
	for _, el := range outline {
		switch el.(type) {
		case MoveTo:
			moves++
		case Close:
			closes++
		}
	}
	if moves != 2 || closes != 2 {
		t.Errorf("expected 2 subpath outlines, got %d MoveTo / %d Close", moves, closes)
	}
}

func TestExpander_SharpTurnStaysBounded(t *testing.T) {
	// A 90-degree turn with round joins must stay within the pen radius
	// of the spine; round joins cannot spike the way miters do.
	elems := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 50, Y: 0}},
		LineTo{Point: Point{X: 50, Y: 50}},
	}
	outline := NewExpander(10).Expand(elems)

	minX, minY, maxX, maxY := outlineBounds(t, outline)
	const eps = 0.5
	if minX < -5-eps || maxX > 55+eps || minY < -5-eps || maxY > 55+eps {
		t.Errorf("round join escaped the stroke footprint: (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
}

func TestExpander_QuadFlatteningTolerance(t *testing.T) {
	// A long shallow quadratic must flatten into more than one segment.
	elems := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 100, Y: 80}, Point: Point{X: 200, Y: 0}},
	}
	outline := NewExpander(4).Expand(elems)

	lines := 0
	for _, el := range outline {
		if _, ok := el.(LineTo); ok {
			lines++
		}
	}
	if lines < 8 {
		t.Errorf("expected the curve to flatten into several segments, got %d lines", lines)
	}
}
