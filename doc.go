// Package sigpad implements the core of a freehand signature pad: it
// smooths raw pointer samples into a quadratic-curve path, rasterizes the
// path to an RGBA bitmap, and trims the bitmap to its content bounds.
//
// # Overview
//
// The package is deliberately UI-free. A surrounding shell (mobile view,
// desktop widget, web handler) feeds pointer events into a [Pad] and pulls
// bitmaps back out:
//
//	pad := sigpad.NewPad()
//
//	// Pointer events from the surface
//	pad.StartStroke(sigpad.Pt(12, 40))
//	pad.ExtendStroke(sigpad.Pt(60, 55))
//	pad.EndStroke()
//
//	// Rasterize and trim
//	pm, _ := pad.RenderToBitmap(400, 200)
//	signature, ok := pad.ExportTrimmed(pm, true)
//
// # Smoothing
//
// Incoming samples are not connected directly. Each drag sample appends a
// quadratic segment whose control point is the previous raw sample and
// whose endpoint is the midpoint between the previous and current samples,
// so the curve passes through sample midpoints and jitter from discrete
// sampling is visually absorbed. A gesture that never leaves the slop
// radius is a tap and draws a round dot.
//
// # Rendering
//
// Strokes are drawn with round caps and round joins at a fixed width, the
// conventional pen model for signature capture. The software renderer
// expands the stroke to a filled outline and fills it with
// golang.org/x/image/vector. Rendering is deterministic: identical inputs
// produce byte-identical pixels.
//
// # Coordinate System
//
// Standard raster coordinates: origin at top-left, X right, Y down. Path
// coordinates and stroke width share the same unit (device pixels, no DPI
// scaling).
//
// # Concurrency
//
// Path updates are published as immutable snapshots, so a renderer may
// read the current path from another goroutine without locking while the
// input goroutine keeps appending. Trimming can run synchronously or as a
// background task, see [Pad.ExportTrimmedAsync].
package sigpad
