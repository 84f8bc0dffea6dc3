// Package settle implements the compound, invariant-preserving tree
// mutations built on top of package frame's structural primitives: settle,
// resettle, ramify, deramify, jump(in), pop_recursively, anchorize,
// deanchorize and their small helpers. This is a close port of
// perceptia's frames::settling module, restructured as free functions over
// *frame.Frame since Go has no trait-on-foreign-type mechanism.
package settle

import (
	"fmt"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("settle: precondition violated: "+format, args...))
	}
}

// Settle places self under target's buildable frame. If the buildable is
// Stacked, self is prepended (made most-recent); otherwise it is appended and
// always anchored. An explicit area marks self as floating at that rectangle
// instead. If target has no buildable ancestor, Settle is a silent no-op.
func Settle(self, target *frame.Frame, area *surface.Area, sa surface.Access) {
	b := target.FindBuildable()
	if b == nil {
		return
	}

	if b.Geometry() == frame.Stacked {
		b.Prepend(self)
		if area != nil {
			self.SetSize(area.Size, sa)
			SetPosition(self, area.Pos)
			self.SetAnchored(false)
		} else {
			self.SetAnchored(true)
		}
	} else {
		b.Append(self)
		self.SetAnchored(true)
	}

	b.Relax(sa)
}

// Resettle detaches self (relaxing its old parent) and settles it anchored
// under target.
func Resettle(self, target *frame.Frame, sa surface.Access) {
	RemoveSelf(self, sa)
	Settle(self, target, nil, sa)
}

// RemoveSelf detaches self from its current parent, if any, and relaxes that
// former parent so its remaining children re-homogenize.
func RemoveSelf(self *frame.Frame, sa surface.Access) {
	p := self.Parent()
	self.Remove()
	if p != nil {
		p.Relax(sa)
	}
}

// PopRecursively makes pop (and the spine from pop up to host) most-recent,
// both temporally always and spatially whenever a Stacked container is
// crossed.
func PopRecursively(host, pop *frame.Frame) {
	if frame.EqualsExact(host, pop) {
		return
	}
	p := pop.Parent()
	if p == nil {
		return
	}
	if p.Geometry() == frame.Stacked {
		pop.Remove()
		p.Prepend(pop)
	}
	pop.Pop()
	PopRecursively(host, p)
}

// ChangeGeometry sets self's geometry and re-homogenizes its immediate
// children (it does not recurse: callers that need the whole subtree to
// follow call Relax separately, mirroring the original's
// homogenize-not-relax choice for this one operation).
func ChangeGeometry(self *frame.Frame, geometry frame.Geometry, sa surface.Access) {
	self.SetGeometry(geometry)
	self.Homogenize(sa)
}

// Ramify ensures a dedicated container exists around self, returning it:
//
//   - if self already has exactly one child, self itself is returned
//     (already a suitable host);
//   - if self's parent has exactly one child (self), the parent is returned;
//   - otherwise a new Container is synthesized in self's former spot, self is
//     demoted to Container (unless it was a leaf, which keeps its leaf mode)
//     and becomes the new container's sole child, translated to (0,0)
//     relative to it.
//
// self must already have a parent; calling Ramify on a rootless frame is a
// precondition violation.
func Ramify(self *frame.Frame, geometry frame.Geometry) *frame.Frame {
	parent := self.Parent()
	assertf(parent != nil, "ramify called on a frame with no parent")

	if self.CountChildren() == 1 {
		return self
	}
	if parent.CountChildren() == 1 {
		return parent
	}

	distancerMode := frame.Container
	if self.IsTop() {
		distancerMode = self.Mode()
	}
	frameMode := frame.Container
	if self.IsLeaf() {
		frameMode = self.Mode()
	}

	distancer := frame.New(surface.Invalid, distancerMode, geometry, self.Position(), self.Size(), self.Title(), true)

	self.Prejoin(distancer) // distancer takes self's old spot, just before self
	self.Remove()
	self.SetMode(frameMode)
	MoveWithContents(self, self.Position().Opposite())
	distancer.Prepend(self)

	return distancer
}

// Deramify removes a redundant single-child container: if self's only child
// c has exactly one grandchild g, g is promoted to be self's child in c's
// place and c is destroyed; if c has no grandchildren and is itself a leaf,
// c's mode and surface are absorbed directly into self and c is destroyed.
func Deramify(self *frame.Frame) {
	if self.CountChildren() != 1 {
		return
	}
	c := self.FirstSpatial()

	switch c.CountChildren() {
	case 1:
		g := c.FirstSpatial()
		c.Remove()
		g.Remove()
		self.Prepend(g)
		c.Destroy()
	case 0:
		if c.IsLeaf() {
			self.SetMode(c.Mode())
			self.SetSid(c.Sid())
			c.Remove()
			c.Destroy()
		}
	}
}

// Jumpin inserts self relative to target: Before/After place self as
// target's immediate spatial neighbour (without creating containers); On
// settles self alongside target, ramifying a Stacked container around target
// first if target is a leaf. If target is rootless, Jumpin is a silent
// no-op.
func Jumpin(self *frame.Frame, side frame.Side, target *frame.Frame, sa surface.Access) {
	tp := target.Parent()
	if tp == nil {
		return
	}

	switch side {
	case frame.Before:
		target.Prejoin(self)
		tp.Relax(sa)
	case frame.After:
		target.Adjoin(self)
		tp.Relax(sa)
	case frame.On:
		var host *frame.Frame
		switch {
		case !tp.IsTop() && tp.CountChildren() == 1:
			host = tp
		case target.IsLeaf():
			host = Ramify(target, frame.Stacked)
		default:
			host = target
		}
		Settle(self, host, nil, sa)
	}
}

// Jump detaches self (relaxing its old parent) and then performs Jumpin.
func Jump(self *frame.Frame, side frame.Side, target *frame.Frame, sa surface.Access) {
	RemoveSelf(self, sa)
	Jumpin(self, side, target, sa)
}

// Anchorize re-tiles a floating leaf: its rectangle becomes its parent's full
// rectangle, positioned at the parent's origin, and it is marked anchored.
// self must already be a leaf and a direct child of its workspace (a
// floating leaf's parent is always a Workspace, per the tree invariants); a
// leaf with no parent is a precondition violation. Frames that are not
// reanchorizable, or already anchored, are left untouched.
func Anchorize(self *frame.Frame, sa surface.Access) {
	if !self.IsReanchorizable() || self.Anchored() {
		return
	}
	parent := self.Parent()
	assertf(parent != nil, "anchorize called on a frame with no parent")

	self.SetSize(parent.Size(), sa)
	SetPosition(self, surface.Position{})
	self.SetAnchored(true)
}

// Deanchorize lifts an anchored leaf out to its enclosing workspace (if it
// is not already a direct child of it) and marks it floating at area.
// Frames that are not reanchorizable, already floating, or whose top is not
// a Workspace are left untouched.
func Deanchorize(self *frame.Frame, area surface.Area, sa surface.Access) {
	if !self.IsReanchorizable() || !self.Anchored() {
		return
	}
	workspace := self.FindTop()
	if workspace == nil || !workspace.IsWorkspace() {
		return
	}

	parent := self.Parent()
	if parent != nil && !frame.EqualsExact(parent, workspace) {
		RemoveSelf(self, sa)
		workspace.Prepend(self)
	}

	self.SetSize(area.Size, sa)
	SetPosition(self, area.Pos)
	self.SetAnchored(false)
}

// SetPosition moves self to pos, translating every subframe by the same
// vector so the whole subtree keeps its relative shape.
func SetPosition(self *frame.Frame, pos surface.Position) {
	vector := pos.Sub(self.Position())
	MoveWithContents(self, vector)
}

// MoveWithContents translates self's position, and recursively every
// subframe's position, by vector.
func MoveWithContents(self *frame.Frame, vector surface.Position) {
	self.SetPlumbingPosition(self.Position().Add(vector))
	for _, c := range self.SpaceIter() {
		MoveWithContents(c, vector)
	}
}

// DestroySelf detaches self from its parent (relaxing it) and destroys self.
func DestroySelf(self *frame.Frame, sa surface.Access) {
	RemoveSelf(self, sa)
	self.Destroy()
}
