// Package frame implements the frame-tree layout core: the universal tree
// cell (Frame), its spatial/temporal sibling orders, and the pure structural
// and geometric queries over it (homogenize, relax, find_buildable,
// find_top, the space/time iterators). The compound, invariant-preserving
// mutations (settle, ramify, jump, ...) live one layer up in package settle.
package frame

import (
	"fmt"
	"strings"

	"github.com/montrey/framewm/surface"
)

// Frame is the single tree entity: root, output, workspace, container, and
// window leaf are all Frames distinguished by Mode.
type Frame struct {
	sid      surface.ID
	mode     Mode
	geometry Geometry
	position surface.Position
	size     surface.Size
	title    string
	anchored bool

	parent   *Frame
	spatial  []*Frame // z/layout order
	temporal []*Frame // most-recently-used order
}

// New constructs a detached Frame. sid should be surface.Invalid for any
// non-leaf mode.
func New(sid surface.ID, mode Mode, geometry Geometry, pos surface.Position, size surface.Size, title string, anchored bool) *Frame {
	return &Frame{
		sid:      sid,
		mode:     mode,
		geometry: geometry,
		position: pos,
		size:     size,
		title:    title,
		anchored: anchored,
	}
}

// --- accessors -------------------------------------------------------------

func (f *Frame) Sid() surface.ID           { return f.sid }
func (f *Frame) Mode() Mode                { return f.mode }
func (f *Frame) Geometry() Geometry        { return f.geometry }
func (f *Frame) Position() surface.Position { return f.position }
func (f *Frame) Size() surface.Size        { return f.size }
func (f *Frame) Title() string             { return f.title }
func (f *Frame) Anchored() bool            { return f.anchored }
func (f *Frame) Parent() *Frame            { return f.parent }

func (f *Frame) Area() surface.Area {
	return surface.Area{Pos: f.position, Size: f.size}
}

func (f *Frame) IsTop() bool            { return f.mode.IsTop() }
func (f *Frame) IsLeaf() bool           { return f.mode.IsLeaf() }
func (f *Frame) IsWorkspace() bool      { return f.mode.IsWorkspace() }
func (f *Frame) IsReanchorizable() bool { return f.mode.IsReanchorizable() }

func (f *Frame) CountChildren() int { return len(f.spatial) }

// --- plumbing setters --------------------------------------------------------
//
// These mutate a single frame's own fields without touching the tree shape;
// they are the primitives the settle package composes into invariant-
// preserving operations. Named "Set*" rather than "SetPlumbing*" (the
// original's naming for the same escape hatch) since Go has no trait/impl
// split to hide them behind.

func (f *Frame) SetMode(m Mode)           { f.mode = m }
func (f *Frame) SetSid(sid surface.ID)    { f.sid = sid }
func (f *Frame) SetGeometry(g Geometry)   { f.geometry = g }
func (f *Frame) SetTitle(title string)    { f.title = title }
func (f *Frame) SetAnchored(a bool)       { f.anchored = a }

// SetSize sets the frame's size and, when it is a leaf, asks sa to
// reconfigure the backing surface. SetSize never recurses into children;
// callers that need the subtree to follow use Relax.
func (f *Frame) SetSize(size surface.Size, sa surface.Access) {
	f.size = size
	if f.IsLeaf() && sa != nil {
		sa.Reconfigure(f.sid, size)
	}
}

// SetPlumbingPosition sets position without moving subframes; used by
// move_with_contents, which handles the recursive translation itself.
func (f *Frame) SetPlumbingPosition(pos surface.Position) {
	f.position = pos
}

// --- structural primitives ---------------------------------------------------

// Prepend inserts child as the spatial head and makes it the temporal head.
func (f *Frame) Prepend(child *Frame) {
	child.detachFromParent()
	child.parent = f
	f.spatial = append([]*Frame{child}, f.spatial...)
	f.temporal = append([]*Frame{child}, f.temporal...)
}

// Append inserts child as the spatial tail; temporally it also becomes the
// least-recent entry (temporal tail), consistent with "just arrived, not yet
// focused".
func (f *Frame) Append(child *Frame) {
	child.detachFromParent()
	child.parent = f
	f.spatial = append(f.spatial, child)
	f.temporal = append(f.temporal, child)
}

// Prejoin inserts newNode immediately before f among f's siblings (in f's
// parent's spatial order), and at the temporal head. f itself does not move.
func (f *Frame) Prejoin(newNode *Frame) {
	p := f.parent
	if p == nil {
		return
	}
	newNode.detachFromParent()
	newNode.parent = p
	idx := indexOf(p.spatial, f)
	p.spatial = insertAt(p.spatial, idx, newNode)
	p.temporal = append([]*Frame{newNode}, p.temporal...)
}

// Adjoin inserts newNode immediately after f among f's siblings (in f's
// parent's spatial order), and at the temporal head. f itself does not move.
func (f *Frame) Adjoin(newNode *Frame) {
	p := f.parent
	if p == nil {
		return
	}
	newNode.detachFromParent()
	newNode.parent = p
	idx := indexOf(p.spatial, f)
	p.spatial = insertAt(p.spatial, idx+1, newNode)
	p.temporal = append([]*Frame{newNode}, p.temporal...)
}

// Remove detaches f from its parent without destroying it. f's own children
// are untouched.
func (f *Frame) Remove() {
	f.detachFromParent()
}

// Destroy releases f. f must already be unlinked from any parent.
func (f *Frame) Destroy() {
	f.parent = nil
	f.spatial = nil
	f.temporal = nil
}

// Pop moves f to the front of its parent's temporal list, leaving the
// spatial order untouched.
func (f *Frame) Pop() {
	p := f.parent
	if p == nil {
		return
	}
	idx := indexOf(p.temporal, f)
	if idx < 0 {
		return
	}
	p.temporal = append(p.temporal[:idx], p.temporal[idx+1:]...)
	p.temporal = append([]*Frame{f}, p.temporal...)
}

func (f *Frame) detachFromParent() {
	p := f.parent
	if p == nil {
		return
	}
	if idx := indexOf(p.spatial, f); idx >= 0 {
		p.spatial = append(p.spatial[:idx], p.spatial[idx+1:]...)
	}
	if idx := indexOf(p.temporal, f); idx >= 0 {
		p.temporal = append(p.temporal[:idx], p.temporal[idx+1:]...)
	}
	f.parent = nil
}

func indexOf(list []*Frame, target *Frame) int {
	for i, n := range list {
		if n == target {
			return i
		}
	}
	return -1
}

func insertAt(list []*Frame, idx int, f *Frame) []*Frame {
	if idx < 0 {
		idx = 0
	}
	if idx > len(list) {
		idx = len(list)
	}
	out := make([]*Frame, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, f)
	out = append(out, list[idx:]...)
	return out
}

// --- iteration ---------------------------------------------------------------

// SpaceIter returns a snapshot of f's children in spatial order. The slice is
// copied before any caller mutation can invalidate it, per the "iterators
// during mutation" design note: it is finite and not restartable (a second
// call re-snapshots the then-current state).
func (f *Frame) SpaceIter() []*Frame {
	out := make([]*Frame, len(f.spatial))
	copy(out, f.spatial)
	return out
}

// TimeIter returns a snapshot of f's children in temporal (most-recently-used
// first) order.
func (f *Frame) TimeIter() []*Frame {
	out := make([]*Frame, len(f.temporal))
	copy(out, f.temporal)
	return out
}

// FirstSpatial returns f's spatially-first child, or nil if f has none.
func (f *Frame) FirstSpatial() *Frame {
	if len(f.spatial) == 0 {
		return nil
	}
	return f.spatial[0]
}

// FirstTemporal returns f's temporally-most-recent child, or nil if f has
// none.
func (f *Frame) FirstTemporal() *Frame {
	if len(f.temporal) == 0 {
		return nil
	}
	return f.temporal[0]
}

// SpatialIndex returns the index of child within f's spatial order, or -1.
func (f *Frame) SpatialIndex(child *Frame) int {
	return indexOf(f.spatial, child)
}

// TemporalIndex returns the index of child within f's temporal order, or -1.
func (f *Frame) TemporalIndex(child *Frame) int {
	return indexOf(f.temporal, child)
}

// SpatialAt returns the child at index i of f's spatial order, or nil if out
// of range.
func (f *Frame) SpatialAt(i int) *Frame {
	if i < 0 || i >= len(f.spatial) {
		return nil
	}
	return f.spatial[i]
}

// --- queries -----------------------------------------------------------------

// FindBuildable ascends from f to the nearest ancestor able to host new
// children: the nearest Container, or the enclosing Workspace. Returns f
// itself if f is already a Container or Workspace.
func (f *Frame) FindBuildable() *Frame {
	cur := f
	for cur != nil {
		if cur.mode == Container || cur.mode == Workspace {
			return cur
		}
		cur = cur.parent
	}
	return nil
}

// FindTop returns the nearest ancestor (including f) with IsTop() true.
func (f *Frame) FindTop() *Frame {
	cur := f
	for cur != nil {
		if cur.IsTop() {
			return cur
		}
		cur = cur.parent
	}
	return nil
}

// EqualsExact reports whether a and b are the same node (identity, not
// structural equality). Either may be nil.
func EqualsExact(a, b *Frame) bool {
	return a == b
}

// --- debugging ---------------------------------------------------------------

// DebugTree renders an indented structural dump of the subtree rooted at f,
// useful in test failures; it carries no invariant meaning.
func (f *Frame) DebugTree() string {
	var b strings.Builder
	f.debugTree(&b, 0)
	return b.String()
}

func (f *Frame) debugTree(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s geometry=%s anchored=%v pos=%+v size=%+v", f.mode, f.geometry, f.anchored, f.position, f.size)
	if f.IsLeaf() {
		fmt.Fprintf(b, " sid=%s title=%q", f.sid, f.title)
	}
	b.WriteByte('\n')
	for _, c := range f.spatial {
		c.debugTree(b, depth+1)
	}
}
