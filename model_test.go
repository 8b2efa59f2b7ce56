package sigpad

import (
	"sync"
	"testing"
)

func TestPathModel_EmptyAtStart(t *testing.T) {
	m := NewPathModel()
	if !m.Snapshot().Empty() {
		t.Error("new model should hold an empty path")
	}
}

func TestPathModel_SnapshotStable(t *testing.T) {
	// A snapshot taken before an append must not change afterwards.
	m := NewPathModel()
	m.Append(MoveTo{Point: Pt(1, 1)})

	before := m.Snapshot()
	m.Append(LineTo{Point: Pt(2, 2)}, LineTo{Point: Pt(3, 3)})

	if before.Len() != 1 {
		t.Errorf("earlier snapshot grew: len=%d", before.Len())
	}
	if after := m.Snapshot(); after.Len() != 3 {
		t.Errorf("expected 3 elements in new snapshot, got %d", after.Len())
	}
}

func TestPathModel_Clear(t *testing.T) {
	m := NewPathModel()
	m.Append(MoveTo{Point: Pt(1, 1)}, LineTo{Point: Pt(1, 1)})

	held := m.Snapshot()
	m.Clear()

	if n := m.Snapshot().Len(); n != 0 {
		t.Errorf("expected empty path after Clear, got %d elements", n)
	}
	if held.Len() != 2 {
		t.Errorf("held snapshot should survive Clear, got %d elements", held.Len())
	}
}

func TestPathModel_AppendNothing(t *testing.T) {
	m := NewPathModel()
	before := m.Snapshot()
	m.Append()
	if m.Snapshot() != before {
		t.Error("empty append should not publish a new snapshot")
	}
}

func TestPathModel_ConcurrentReaders(t *testing.T) {
	// One writer appends while readers snapshot. Every snapshot must be
	// internally consistent: starts with MoveTo, length only grows.
	m := NewPathModel()
	const appends = 1000

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := 0
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := m.Snapshot()
				n := snap.Len()
				if n < prev {
					t.Errorf("snapshot shrank: %d -> %d", prev, n)
					return
				}
				if n > 0 {
					if _, ok := snap.Elements()[0].(MoveTo); !ok {
						t.Errorf("snapshot does not start with MoveTo")
						return
					}
				}
				prev = n
			}
		}()
	}

	m.Append(MoveTo{Point: Pt(0, 0)})
	for i := 1; i < appends; i++ {
		p := Pt(float64(i), float64(i))
		m.Append(QuadTo{Control: p, Point: p})
	}
	close(stop)
	wg.Wait()

	if n := m.Snapshot().Len(); n != appends {
		t.Errorf("expected %d elements, got %d", appends, n)
	}
}

func TestPath_Accessors(t *testing.T) {
	p := NewPath()
	if !p.Empty() || p.Len() != 0 {
		t.Error("new path should be empty")
	}

	p2 := p.append(MoveTo{Point: Pt(1, 2)}, LineTo{Point: Pt(1, 2)})
	if p2.Len() != 2 {
		t.Errorf("expected 2 elements, got %d", p2.Len())
	}
	if !p.Empty() {
		t.Error("append must not mutate the receiver")
	}
}
