package sigpad

import (
	"sync"

	"github.com/inkwell/sigpad/internal/parallel"
)

// BoundingBox is an inclusive pixel rectangle: both (MinX, MinY) and
// (MaxX, MaxY) are content pixels. A single matching pixel is a valid
// 1×1 box with MinX == MaxX and MinY == MaxY.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Dx returns the box width in pixels.
func (b BoundingBox) Dx() int {
	return b.MaxX - b.MinX + 1
}

// Dy returns the box height in pixels.
func (b BoundingBox) Dy() int {
	return b.MaxY - b.MinY + 1
}

// union merges two non-empty boxes.
func (b BoundingBox) union(o BoundingBox) BoundingBox {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// parallelScanThreshold is the pixel count above which ContentBounds
// splits the scan into row bands across the worker pool. Below it the
// scan runs inline; goroutine handoff would cost more than it saves.
const parallelScanThreshold = 1 << 20

// scanPool lazily creates the shared pool used for banded scans and
// background exports.
var scanPool = sync.OnceValue(func() *parallel.Pool {
	return parallel.NewPool(0)
})

// ContentBounds scans pm for the minimal rectangle enclosing every pixel
// that differs from background. The comparison is exact byte equality,
// not a tolerance. The second return value is false when no such pixel
// exists (a blank bitmap is an expected outcome, not an error).
//
// The scan visits every pixel exactly once, O(width × height). Large
// bitmaps are scanned in parallel row bands; the result is identical to
// the sequential scan.
func ContentBounds(pm *Pixmap, background RGBA) (BoundingBox, bool) {
	if pm == nil || pm.width == 0 || pm.height == 0 {
		return BoundingBox{}, false
	}

	bg := background.nrgba()
	if pm.width*pm.height >= parallelScanThreshold {
		return scanBanded(pm, bg)
	}
	return scanRows(pm, bg, 0, pm.height)
}

// scanRows scans rows [y0, y1) and folds content pixels into a box.
func scanRows(pm *Pixmap, bg [4]uint8, y0, y1 int) (BoundingBox, bool) {
	box := BoundingBox{MinX: pm.width, MinY: pm.height, MaxX: -1, MaxY: -1}
	found := false

	for y := y0; y < y1; y++ {
		row := pm.data[y*pm.width*4 : (y+1)*pm.width*4]
		for x := 0; x < pm.width; x++ {
			i := x * 4
			if row[i] == bg[0] && row[i+1] == bg[1] && row[i+2] == bg[2] && row[i+3] == bg[3] {
				continue
			}
			found = true
			if x < box.MinX {
				box.MinX = x
			}
			if x > box.MaxX {
				box.MaxX = x
			}
			if y < box.MinY {
				box.MinY = y
			}
			if y > box.MaxY {
				box.MaxY = y
			}
		}
	}
	return box, found
}

// scanBanded splits the scan into one row band per worker and merges the
// per-band boxes.
func scanBanded(pm *Pixmap, bg [4]uint8) (BoundingBox, bool) {
	pool := scanPool()
	bands := pool.Workers()
	if bands > pm.height {
		bands = pm.height
	}

	boxes := make([]BoundingBox, bands)
	founds := make([]bool, bands)
	work := make([]func(), bands)

	rowsPerBand := (pm.height + bands - 1) / bands
	for i := 0; i < bands; i++ {
		i := i
		y0 := i * rowsPerBand
		y1 := y0 + rowsPerBand
		if y1 > pm.height {
			y1 = pm.height
		}
		work[i] = func() {
			boxes[i], founds[i] = scanRows(pm, bg, y0, y1)
		}
	}
	pool.ExecuteAll(work)

	var box BoundingBox
	found := false
	for i := 0; i < bands; i++ {
		if !founds[i] {
			continue
		}
		if !found {
			box = boxes[i]
			found = true
		} else {
			box = box.union(boxes[i])
		}
	}
	return box, found
}

// Trim crops pm to the bounding box of its non-background content.
//
// The returned pixmap contains exactly the rows and columns of the box,
// pixel values copied verbatim. The input is never mutated. The second
// return value is false, and the pixmap nil, when pm has no content
// pixel. Trimming an already-trimmed bitmap returns an identical copy.
func Trim(pm *Pixmap, background RGBA) (*Pixmap, bool) {
	box, ok := ContentBounds(pm, background)
	if !ok {
		return nil, false
	}

	out := NewPixmap(box.Dx(), box.Dy())
	for y := 0; y < out.height; y++ {
		srcRow := (box.MinY+y)*pm.width + box.MinX
		copy(out.data[y*out.width*4:(y+1)*out.width*4], pm.data[srcRow*4:(srcRow+out.width)*4])
	}

	logger().Debug("sigpad: trimmed bitmap",
		"minX", box.MinX, "minY", box.MinY,
		"maxX", box.MaxX, "maxY", box.MaxY,
		"srcWidth", pm.width, "srcHeight", pm.height,
	)
	return out, true
}
