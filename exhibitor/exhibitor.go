// Package exhibitor implements the façade that coordinates outputs,
// workspaces, selection, and command dispatch over the frame tree: the
// world-event handlers (on_output_found, on_surface_ready,
// on_surface_destroyed) and the user-command shorthands built on package
// settle. The core stays logger-agnostic; callers that want surface-lookup
// misses and structural no-ops surfaced (§7) wrap these calls and log the
// returned bool/ok values themselves (see cmd/framewm-demo).
package exhibitor

import (
	"fmt"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/output"
	"github.com/montrey/framewm/search"
	"github.com/montrey/framewm/settle"
	"github.com/montrey/framewm/strategist"
	"github.com/montrey/framewm/surface"
)

// CompositorConfig supplies the defaults Exhibitor uses when it has no
// richer configuration source: the geometry newly-created workspaces start
// with, and the template used to name them (via fmt.Sprintf with the 0-based
// index of the output the workspace was created for).
type CompositorConfig struct {
	WorkspaceGeometry     frame.Geometry
	WorkspaceNameTemplate string
}

// DefaultCompositorConfig mirrors the teacher's defaultConfig fallback
// pattern: usable out of the box, overridable via config/store.
func DefaultCompositorConfig() CompositorConfig {
	return CompositorConfig{
		WorkspaceGeometry:     frame.Stacked,
		WorkspaceNameTemplate: "workspace-%d",
	}
}

// Exhibitor is the sole mutator of its frame tree. It is not safe for
// concurrent use from multiple goroutines, matching the single-threaded,
// single-owner concurrency model of the core.
type Exhibitor struct {
	root      *frame.Frame // Root
	selection *frame.Frame
	sa        surface.Access
	strat     *strategist.Strategist
	cfg       CompositorConfig
	leaves    map[surface.ID]*frame.Frame
}

// New constructs an Exhibitor with an empty Root and no selection.
func New(sa surface.Access, strat *strategist.Strategist, cfg CompositorConfig) *Exhibitor {
	return &Exhibitor{
		root:   frame.New(surface.Invalid, frame.Root, frame.Stacked, surface.Position{}, surface.Size{}, "", true),
		sa:     sa,
		strat:  strat,
		cfg:    cfg,
		leaves: make(map[surface.ID]*frame.Frame),
	}
}

// Root returns the tree's single Root frame.
func (e *Exhibitor) Root() *frame.Frame { return e.root }

// Selection returns the currently focused frame, or nil if the tree has no
// output yet.
func (e *Exhibitor) Selection() *frame.Frame { return e.selection }

// --- world events ------------------------------------------------------------

// OnOutputFound creates a Display for info covering its area, containing one
// empty Workspace. If this is the first output, the new workspace becomes
// selected.
func (e *Exhibitor) OnOutputFound(info output.Info) *frame.Frame {
	index := e.root.CountChildren()
	display := frame.New(surface.Invalid, frame.Display, frame.Stacked, info.Area.Pos, info.Area.Size, "", true)
	e.root.Append(display)

	name := fmt.Sprintf(e.cfg.WorkspaceNameTemplate, index)
	workspace := frame.New(surface.Invalid, frame.Workspace, e.cfg.WorkspaceGeometry, info.Area.Pos, info.Area.Size, name, true)
	display.Append(workspace)

	if e.selection == nil {
		e.selection = workspace
	}
	return display
}

// OnSurfaceReady creates a Leaf for sid, asks the strategist for its target
// and floating area, settles it, selects it, and makes its whole spine
// most-recent.
func (e *Exhibitor) OnSurfaceReady(sid surface.ID, title string, isPopup bool) *frame.Frame {
	leaf := frame.New(sid, frame.Leaf, frame.Stacked, surface.Position{}, surface.Size{}, title, true)

	display := findDisplay(e.selection)
	size := e.sa.GetSize(sid)
	target, area := e.strat.ChooseTarget(display, e.selection, hint(title, isPopup), isPopup, size)

	settle.Settle(leaf, target, area, e.sa)
	e.selection = leaf
	settle.PopRecursively(e.root, leaf)
	e.leaves[sid] = leaf
	return leaf
}

// OnSurfaceDestroyed locates sid's leaf and unmanages it per §4.3.1. It
// reports whether sid was known (a surface lookup miss is a caller-visible
// condition the façade may choose to log, per §7).
func (e *Exhibitor) OnSurfaceDestroyed(sid surface.ID) bool {
	leaf, ok := e.leaves[sid]
	if !ok {
		return false
	}
	delete(e.leaves, sid)
	e.unmanage(leaf)
	return true
}

// unmanage implements §4.3.1's selection-on-unmanage algorithm.
func (e *Exhibitor) unmanage(leaf *frame.Frame) {
	cur := leaf
	var predecessor *frame.Frame
	var survivor *frame.Frame

	for {
		p := cur.Parent()
		if p == nil {
			break
		}

		temporal := p.TimeIter()
		predecessor = nil
		for i, f := range temporal {
			if f == cur {
				if i+1 < len(temporal) {
					predecessor = temporal[i+1]
				}
				break
			}
		}

		settle.DestroySelf(cur, e.sa)

		if p.IsWorkspace() || p.CountChildren() != 0 {
			survivor = p
			break
		}
		cur = p
	}

	switch {
	case predecessor != nil:
		e.selection = predecessor
	case survivor != nil:
		if head := survivor.FirstTemporal(); head != nil {
			e.selection = head
		} else {
			e.selection = survivor
		}
	default:
		e.selection = e.root
	}
}

// findLeaf returns the frame registered under sid, or nil.
func (e *Exhibitor) findLeaf(sid surface.ID) *frame.Frame {
	return e.leaves[sid]
}

func findDisplay(f *frame.Frame) *frame.Frame {
	cur := f
	for cur != nil {
		if cur.Mode() == frame.Display {
			return cur
		}
		cur = cur.Parent()
	}
	return nil
}

// hint builds the "title:class" string strategist.FloatRules matches
// against. The demo binary has no real window-class metadata to offer, so a
// popup surface is hinted as its own pseudo-class.
func hint(title string, isPopup bool) string {
	class := "Normal"
	if isPopup {
		class = "Popup"
	}
	return title + ":" + class
}

// --- domain enrichment: jump to window by fuzzy title -----------------------

// JumpToTitle fuzzy-matches query against every known leaf's title and, on a
// match, jumps the current selection onto the matched leaf (On). frecency
// may be nil to disable recency biasing. It returns the best-matching title
// ("" when nothing matches) and whether the selection was jumped; a match
// that is already the selection returns its title and false.
func (e *Exhibitor) JumpToTitle(query string, frecency search.Frecency) (string, bool) {
	if e.selection == nil {
		return "", false
	}

	candidates := make([]search.Candidate, 0, len(e.leaves))
	for sid, leaf := range e.leaves {
		candidates = append(candidates, search.Candidate{Key: sid, Title: leaf.Title()})
	}

	matches := search.Titles(candidates, query, frecency)
	if len(matches) == 0 {
		return "", false
	}

	target := e.findLeaf(matches[0].Key.(surface.ID))
	if target == nil || frame.EqualsExact(target, e.selection) {
		return matches[0].Title, false
	}

	settle.Jump(e.selection, frame.On, target, e.sa)
	return matches[0].Title, true
}
