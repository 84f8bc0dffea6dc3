// Package strategist implements the policy object that decides, for a new
// surface, which existing frame is the settling target and whether the
// surface floats. It carries no tree-mutating logic of its own (that is
// settle's job) and holds no state beyond its configuration.
package strategist

import (
	"fmt"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

// Mode selects how ChooseTarget treats incoming surfaces.
type Mode int

const (
	// Anchored always settles next to the current selection, tiled.
	Anchored Mode = iota
	// AnchoredButPopups tiles top-level surfaces but floats popups at a
	// provider-supplied area.
	AnchoredButPopups
)

func (m Mode) String() string {
	switch m {
	case Anchored:
		return "anchored"
	case AnchoredButPopups:
		return "anchored_but_popups"
	default:
		return fmt.Sprintf("strategist.Mode(%d)", int(m))
	}
}

// Config configures a Strategist. FloatRulesPath is empty to disable
// float-rule matching entirely.
type Config struct {
	ChooseTarget   Mode
	FloatRulesPath string
}

// Strategist is deterministic given its configuration and the current tree;
// it never mutates the tree itself.
type Strategist struct {
	cfg   Config
	rules *FloatRules
}

// New builds a Strategist, loading the float-rule file named by
// cfg.FloatRulesPath if one is set.
func New(cfg Config) (*Strategist, error) {
	var rules *FloatRules
	if cfg.FloatRulesPath != "" {
		r, err := LoadFloatRules(cfg.FloatRulesPath)
		if err != nil {
			return nil, err
		}
		rules = r
	}
	return &Strategist{cfg: cfg, rules: rules}, nil
}

// ChooseTarget decides where a new surface settles: the frame it should be
// placed against, and, when it floats, the area to float it at. root is the
// Display the surface is arriving on (used to center default floating
// placement); selection is the exhibitor's current selection;
// titleClassHint is a "title:class" string used for float-rule matching;
// isPopup distinguishes a popup surface from a top-level one under the
// AnchoredButPopups mode.
func (s *Strategist) ChooseTarget(root, selection *frame.Frame, titleClassHint string, isPopup bool, size surface.Size) (*frame.Frame, *surface.Area) {
	if s.rules != nil && s.rules.Match(titleClassHint) {
		area := s.ChooseFloating(size, root)
		return selection, &area
	}

	switch s.cfg.ChooseTarget {
	case AnchoredButPopups:
		if isPopup {
			area := s.ChooseFloating(size, root)
			return selection, &area
		}
		return selection, nil
	default: // Anchored
		return selection, nil
	}
}

// ChooseFloating returns the default placement for a floating surface of the
// given size: centered on output's area.
func (s *Strategist) ChooseFloating(size surface.Size, output *frame.Frame) surface.Area {
	oa := output.Area()
	x := oa.Pos.X + (oa.Size.Width-size.Width)/2
	y := oa.Pos.Y + (oa.Size.Height-size.Height)/2
	return surface.Area{Pos: surface.Position{X: x, Y: y}, Size: size}
}
