package exhibitor

import (
	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

// findAxisSibling ascends from self until it reaches an ancestor whose
// parent's geometry matches axis AND has a viable spatial sibling one step
// over in the requested side; frames at a matching-geometry level with no
// such sibling are skipped, ascent continuing past them. Returns nil if no
// such ancestor exists up to the root.
func findAxisSibling(self *frame.Frame, axis frame.Geometry, side frame.Side) *frame.Frame {
	cur := self
	for cur != nil {
		p := cur.Parent()
		if p == nil {
			return nil
		}
		if p.Geometry() == axis {
			idx := p.SpatialIndex(cur)
			switch side {
			case frame.Before:
				if idx > 0 {
					return p.SpatialAt(idx - 1)
				}
			case frame.After:
				if idx >= 0 && idx+1 < p.CountChildren() {
					return p.SpatialAt(idx + 1)
				}
			}
		}
		cur = p
	}
	return nil
}

// resolveDropTarget descends from s, the adjacent subtree findAxisSibling
// found, to the specific leaf a dive should land next to: through a Stacked
// container it follows the temporally most-recent child (the one currently
// shown); through a Horizontal/Vertical container it picks the child whose
// rectangle best overlaps selfRect along that container's own partition
// axis, so diving up/down/left/right lands beside whichever sibling is
// actually adjacent on screen, not an arbitrary one.
func resolveDropTarget(s *frame.Frame, selfRect surface.Area) *frame.Frame {
	for {
		if s.IsLeaf() || s.CountChildren() == 0 {
			return s
		}
		if s.Geometry() == frame.Stacked {
			head := s.FirstTemporal()
			if head == nil {
				return s
			}
			s = head
			continue
		}
		s = bestAligned(s.SpaceIter(), s.Geometry(), selfRect)
	}
}

func bestAligned(children []*frame.Frame, geo frame.Geometry, selfRect surface.Area) *frame.Frame {
	lo, hi := axisRange(selfRect, geo)
	best := children[0]
	bestScore := -1 << 31
	for _, c := range children {
		cLo, cHi := axisRange(c.Area(), geo)
		score := overlapLen(lo, hi, cLo, cHi)
		if score == 0 {
			score = -gapBetween(lo, hi, cLo, cHi)
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

func axisRange(r surface.Area, geo frame.Geometry) (int, int) {
	switch geo {
	case frame.Horizontal:
		return r.Pos.X, r.Pos.X + r.Size.Width
	case frame.Vertical:
		return r.Pos.Y, r.Pos.Y + r.Size.Height
	default:
		return 0, 0
	}
}

func overlapLen(aLo, aHi, bLo, bHi int) int {
	lo, hi := aLo, aHi
	if bLo > lo {
		lo = bLo
	}
	if bHi < hi {
		hi = bHi
	}
	if hi > lo {
		return hi - lo
	}
	return 0
}

func gapBetween(aLo, aHi, bLo, bHi int) int {
	if aHi <= bLo {
		return bLo - aHi
	}
	if bHi <= aLo {
		return aLo - bHi
	}
	return 0
}
