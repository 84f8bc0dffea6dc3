package frame

import (
	"testing"

	"github.com/montrey/framewm/surface"
)

func TestHomogenizeHorizontalIntegerPartitionRemainderToLast(t *testing.T) {
	parent := New(surface.Invalid, Workspace, Horizontal, surface.Position{X: 0, Y: 0}, surface.Size{Width: 100, Height: 50}, "", true)
	mock := surface.NewMock(surface.Size{})

	leaves := make([]*Frame, 3)
	for i := range leaves {
		leaves[i] = newLeaf(surface.ID(i+1), "")
		parent.Append(leaves[i])
	}

	parent.Homogenize(mock)

	// 100 / 3 = 33 remainder 1; remainder goes to the last slice.
	wantWidths := []int{33, 33, 34}
	x := 0
	for i, l := range leaves {
		if l.Size().Width != wantWidths[i] {
			t.Fatalf("leaf %d width = %d, want %d", i, l.Size().Width, wantWidths[i])
		}
		if l.Position().X != x {
			t.Fatalf("leaf %d x = %d, want %d", i, l.Position().X, x)
		}
		if l.Size().Height != 50 {
			t.Fatalf("leaf %d height = %d, want 50", i, l.Size().Height)
		}
		x += wantWidths[i]
	}
}

func TestHomogenizeVertical(t *testing.T) {
	parent := New(surface.Invalid, Workspace, Vertical, surface.Position{X: 0, Y: 0}, surface.Size{Width: 40, Height: 100}, "", true)
	mock := surface.NewMock(surface.Size{})

	a := newLeaf(1, "")
	b := newLeaf(2, "")
	parent.Append(a)
	parent.Append(b)

	parent.Homogenize(mock)

	if a.Size().Height != 50 || b.Size().Height != 50 {
		t.Fatalf("expected equal halves, got %d/%d", a.Size().Height, b.Size().Height)
	}
	if a.Position().Y != 0 || b.Position().Y != 50 {
		t.Fatalf("expected stacked y offsets, got %d/%d", a.Position().Y, b.Position().Y)
	}
}

func TestHomogenizeStackedSharesRectangle(t *testing.T) {
	parent := New(surface.Invalid, Workspace, Stacked, surface.Position{X: 5, Y: 5}, surface.Size{Width: 40, Height: 40}, "", true)
	mock := surface.NewMock(surface.Size{})

	a := newLeaf(1, "")
	b := newLeaf(2, "")
	parent.Append(a)
	parent.Append(b)

	parent.Homogenize(mock)

	for _, l := range []*Frame{a, b} {
		if l.Position() != parent.Position() || l.Size() != parent.Size() {
			t.Fatalf("stacked child should share parent rect, got pos=%+v size=%+v", l.Position(), l.Size())
		}
	}
}

func TestHomogenizeSkipsFloatingChildren(t *testing.T) {
	parent := New(surface.Invalid, Workspace, Horizontal, surface.Position{}, surface.Size{Width: 100, Height: 50}, "", true)
	mock := surface.NewMock(surface.Size{})

	anchored := newLeaf(1, "")
	parent.Append(anchored)

	floating := newLeaf(2, "")
	floating.SetAnchored(false)
	floating.SetPlumbingPosition(surface.Position{X: 10, Y: 10})
	floating.size = surface.Size{Width: 20, Height: 20}
	parent.Append(floating)

	parent.Homogenize(mock)

	if anchored.Size().Width != 100 {
		t.Fatalf("anchored-only child should take full width, got %d", anchored.Size().Width)
	}
	if floating.Position() != (surface.Position{X: 10, Y: 10}) || floating.Size() != (surface.Size{Width: 20, Height: 20}) {
		t.Fatalf("floating child must be untouched by Homogenize, got pos=%+v size=%+v", floating.Position(), floating.Size())
	}
}

func TestHomogenizeOnlyReconfiguresChangedLeaves(t *testing.T) {
	parent := New(surface.Invalid, Workspace, Stacked, surface.Position{}, surface.Size{Width: 50, Height: 50}, "", true)
	mock := surface.NewMock(surface.Size{})

	a := newLeaf(1, "")
	parent.Append(a)

	parent.Homogenize(mock)
	if len(mock.Calls()) != 1 {
		t.Fatalf("expected 1 reconfigure on first homogenize, got %d", len(mock.Calls()))
	}

	mock.Reset()
	parent.Homogenize(mock)
	if len(mock.Calls()) != 0 {
		t.Fatalf("expected no reconfigure on idempotent homogenize, got %d", len(mock.Calls()))
	}
}

func TestRelaxIsIdempotentAndRecursesAnchoredChildren(t *testing.T) {
	ws := New(surface.Invalid, Workspace, Horizontal, surface.Position{}, surface.Size{Width: 100, Height: 100}, "", true)
	mock := surface.NewMock(surface.Size{})

	container := New(surface.Invalid, Container, Vertical, surface.Position{}, surface.Size{}, "", true)
	ws.Append(container)
	leaf := newLeaf(1, "")
	container.Append(leaf)

	ws.Relax(mock)
	firstCalls := len(mock.Calls())
	if container.Size().Width != 100 {
		t.Fatalf("container should be homogenized to full width, got %d", container.Size().Width)
	}
	if leaf.Size().Height != container.Size().Height {
		t.Fatalf("leaf should be relaxed against the container's new size, got %d vs %d", leaf.Size().Height, container.Size().Height)
	}

	mock.Reset()
	ws.Relax(mock)
	if len(mock.Calls()) != 0 {
		t.Fatalf("second relax pass should be a no-op, emitted %d calls (first pass had %d)", len(mock.Calls()), firstCalls)
	}
}

func TestRelaxSpatialOrderTraversal(t *testing.T) {
	ws := New(surface.Invalid, Workspace, Horizontal, surface.Position{}, surface.Size{Width: 100, Height: 100}, "", true)
	mock := surface.NewMock(surface.Size{})

	first := newLeaf(1, "")
	second := newLeaf(2, "")
	ws.Append(first)
	ws.Append(second)
	// Make second temporally most-recent without touching spatial order.
	second.Pop()

	ws.Relax(mock)

	calls := mock.Calls()
	if len(calls) != 2 || calls[0].ID != 1 || calls[1].ID != 2 {
		t.Fatalf("expected reconfigure calls in spatial order [1 2], got %+v", calls)
	}
}
