package exhibitor

import (
	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/settle"
	"github.com/montrey/framewm/surface"
)

// focus moves the selection to its spatial neighbour along axis/side,
// resolved by ascending until an ancestor's parent has a matching geometry
// and a viable sibling. It reports whether the selection moved; a boundary
// (no such ancestor) is a no-op.
func (e *Exhibitor) focus(axis frame.Geometry, side frame.Side) bool {
	if e.selection == nil {
		return false
	}
	next := findAxisSibling(e.selection, axis, side)
	if next == nil {
		return false
	}
	e.selection = next
	return true
}

func (e *Exhibitor) FocusLeft() bool  { return e.focus(frame.Horizontal, frame.Before) }
func (e *Exhibitor) FocusRight() bool { return e.focus(frame.Horizontal, frame.After) }
func (e *Exhibitor) FocusUp() bool    { return e.focus(frame.Vertical, frame.Before) }
func (e *Exhibitor) FocusDown() bool  { return e.focus(frame.Vertical, frame.After) }

// Exalt moves the selection one level up the tree, reparenting it to its
// grandparent positioned immediately after its former parent. Bounded at the
// workspace: if the selection's parent is already a Workspace, Exalt is a
// no-op (there is nowhere higher to exalt to).
func (e *Exhibitor) Exalt() bool {
	if e.selection == nil {
		return false
	}
	parent := e.selection.Parent()
	if parent == nil || parent.IsWorkspace() {
		return false
	}
	settle.Jump(e.selection, frame.After, parent, e.sa)
	return true
}

// Ramify wraps the selection in a new Stacked container (synthesizing one
// unless the ramify precondition already finds a suitable host) and selects
// the container.
func (e *Exhibitor) Ramify() bool {
	if e.selection == nil || e.selection.Parent() == nil {
		return false
	}
	e.selection = settle.Ramify(e.selection, frame.Stacked)
	return true
}

// dive moves the selection into the subtree adjacent to it along axis/side,
// creating a container around the landing leaf first if necessary. It is the
// inverse of Exalt: where Exalt pulls a frame up a level, dive pushes it down
// into a neighbour. A boundary (no adjacent subtree) is a no-op.
func (e *Exhibitor) dive(axis frame.Geometry, side frame.Side) bool {
	if e.selection == nil {
		return false
	}
	sibling := findAxisSibling(e.selection, axis, side)
	if sibling == nil {
		return false
	}
	selfRect := e.selection.Area()
	target := resolveDropTarget(sibling, selfRect)
	if frame.EqualsExact(target, e.selection) {
		return false
	}
	settle.Jump(e.selection, frame.On, target, e.sa)
	return true
}

func (e *Exhibitor) DiveLeft() bool  { return e.dive(frame.Horizontal, frame.Before) }
func (e *Exhibitor) DiveRight() bool { return e.dive(frame.Horizontal, frame.After) }
func (e *Exhibitor) DiveUp() bool    { return e.dive(frame.Vertical, frame.Before) }
func (e *Exhibitor) DiveDown() bool  { return e.dive(frame.Vertical, frame.After) }

// changeGeometry re-tiles the selection's buildable ancestor under geometry.
func (e *Exhibitor) changeGeometry(geometry frame.Geometry) bool {
	if e.selection == nil {
		return false
	}
	b := e.selection.FindBuildable()
	if b == nil {
		return false
	}
	settle.ChangeGeometry(b, geometry, e.sa)
	return true
}

func (e *Exhibitor) Horizontalize() bool { return e.changeGeometry(frame.Horizontal) }
func (e *Exhibitor) Verticalize() bool   { return e.changeGeometry(frame.Vertical) }
func (e *Exhibitor) Stackize() bool      { return e.changeGeometry(frame.Stacked) }

// Anchorize re-tiles the selection if it is a floating leaf.
func (e *Exhibitor) Anchorize() bool {
	if e.selection == nil || !e.selection.IsReanchorizable() || e.selection.Anchored() {
		return false
	}
	settle.Anchorize(e.selection, e.sa)
	return true
}

// Deanchorize lifts the selection out to floating at area, if it is an
// anchored leaf.
func (e *Exhibitor) Deanchorize(area surface.Area) bool {
	if e.selection == nil || !e.selection.IsReanchorizable() || !e.selection.Anchored() {
		return false
	}
	settle.Deanchorize(e.selection, area, e.sa)
	return true
}
