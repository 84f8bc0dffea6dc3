package frame

import "github.com/montrey/framewm/surface"

// anchoredSpatialChildren returns f's spatial children that are anchored,
// preserving spatial order. Floating children are skipped entirely by
// Homogenize: their rectangle is owned by whoever placed them (settle.Settle
// with an explicit area, or a later Deanchorize/Jump), never by their
// parent's geometry.
func (f *Frame) anchoredSpatialChildren() []*Frame {
	var out []*Frame
	for _, c := range f.spatial {
		if c.anchored {
			out = append(out, c)
		}
	}
	return out
}

// placeRect assigns child's position/size, emitting Reconfigure to sa only
// when the rectangle actually changed and only for leaves (non-leaves have no
// backing surface to reconfigure).
func placeRect(child *Frame, pos surface.Position, size surface.Size, sa surface.Access) {
	changed := child.position != pos || child.size != size
	child.position = pos
	child.size = size
	if changed && child.IsLeaf() && sa != nil {
		sa.Reconfigure(child.sid, size)
	}
}

// Homogenize recomputes each anchored child's rectangle from f's geometry:
//
//   - Horizontal: partitions f.size.Width into len(children) equal integer
//     slices, full height each; the remainder of the division goes to the
//     last slice in spatial order.
//   - Vertical: the symmetric partition of f.size.Height.
//   - Stacked: every anchored child gets f's full rectangle.
//
// Floating (unanchored) children are left untouched.
func (f *Frame) Homogenize(sa surface.Access) {
	children := f.anchoredSpatialChildren()
	n := len(children)
	if n == 0 {
		return
	}

	switch f.geometry {
	case Stacked:
		for _, c := range children {
			placeRect(c, f.position, f.size, sa)
		}

	case Horizontal:
		base := f.size.Width / n
		rem := f.size.Width % n
		x := f.position.X
		for i, c := range children {
			w := base
			if i == n-1 {
				w += rem
			}
			placeRect(c, surface.Position{X: x, Y: f.position.Y}, surface.Size{Width: w, Height: f.size.Height}, sa)
			x += w
		}

	case Vertical:
		base := f.size.Height / n
		rem := f.size.Height % n
		y := f.position.Y
		for i, c := range children {
			h := base
			if i == n-1 {
				h += rem
			}
			placeRect(c, surface.Position{X: f.position.X, Y: y}, surface.Size{Width: f.size.Width, Height: h}, sa)
			y += h
		}
	}
}

// Relax homogenizes f and recurses into its anchored children, in spatial
// order, so that every Reconfigure call this pass emits happens in a stable
// spatial-order pre-order traversal. Relax is idempotent: since Homogenize
// derives every child rectangle purely from f's current geometry/size, a
// second call with no intervening structural change recomputes exactly the
// same rectangles and emits no further Reconfigure calls.
func (f *Frame) Relax(sa surface.Access) {
	f.Homogenize(sa)
	for _, c := range f.anchoredSpatialChildren() {
		c.Relax(sa)
	}
}
