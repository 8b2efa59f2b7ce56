package sigpad

import "sync/atomic"

// PathModel owns the accumulated signature path and publishes immutable
// snapshots of it.
//
// The model assumes a single writer: one pointer stream mutates the path
// at a time (a surface has at most one active gesture). Readers are
// unrestricted: Snapshot may be called from any goroutine at any time
// and never blocks the writer. Each Append publishes a full copy of the
// accumulated path, so a snapshot taken at time T contains every append
// completed before T and no element is ever observed half-written.
type PathModel struct {
	current atomic.Pointer[Path]
}

// NewPathModel creates a model holding an empty path.
func NewPathModel() *PathModel {
	m := &PathModel{}
	m.current.Store(NewPath())
	return m
}

// Append adds elements to the path and publishes a new snapshot.
func (m *PathModel) Append(elems ...PathElement) {
	if len(elems) == 0 {
		return
	}
	m.current.Store(m.current.Load().append(elems...))
}

// Clear discards all elements and publishes an empty path.
func (m *PathModel) Clear() {
	m.current.Store(NewPath())
}

// Snapshot returns the latest published path.
func (m *PathModel) Snapshot() *Path {
	return m.current.Load()
}
