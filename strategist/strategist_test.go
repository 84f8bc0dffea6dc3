package strategist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

func newDisplay() *frame.Frame {
	return frame.New(surface.Invalid, frame.Display, frame.Stacked, surface.Position{}, surface.Size{Width: 200, Height: 100}, "", true)
}

func newSelection() *frame.Frame {
	return frame.New(surface.ID(1), frame.Leaf, frame.Stacked, surface.Position{}, surface.Size{}, "term", true)
}

func TestChooseTargetAnchoredAlwaysTiles(t *testing.T) {
	s, err := New(Config{ChooseTarget: Anchored})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := newDisplay()
	sel := newSelection()

	target, area := s.ChooseTarget(root, sel, "dialog:Dialog", true, surface.Size{Width: 40, Height: 30})
	if target != sel {
		t.Fatalf("expected target == selection under Anchored mode")
	}
	if area != nil {
		t.Fatalf("expected no floating area under Anchored mode, got %+v", area)
	}
}

func TestChooseTargetAnchoredButPopupsFloatsPopups(t *testing.T) {
	s, err := New(Config{ChooseTarget: AnchoredButPopups})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := newDisplay()
	sel := newSelection()

	target, area := s.ChooseTarget(root, sel, "popup:Menu", true, surface.Size{Width: 40, Height: 30})
	if target != sel {
		t.Fatalf("expected target == selection")
	}
	if area == nil {
		t.Fatalf("expected a floating area for a popup under AnchoredButPopups")
	}

	_, area2 := s.ChooseTarget(root, sel, "editor:Editor", false, surface.Size{Width: 40, Height: 30})
	if area2 != nil {
		t.Fatalf("expected no floating area for a non-popup under AnchoredButPopups, got %+v", area2)
	}
}

func TestChooseFloatingCentersOnOutput(t *testing.T) {
	s, _ := New(Config{})
	root := newDisplay() // 200x100 at origin

	area := s.ChooseFloating(surface.Size{Width: 40, Height: 20}, root)
	if area.Pos.X != 80 || area.Pos.Y != 40 {
		t.Fatalf("expected centered at (80,40), got %+v", area.Pos)
	}
	if area.Size != (surface.Size{Width: 40, Height: 20}) {
		t.Fatalf("expected size unchanged, got %+v", area.Size)
	}
}

func TestFloatRuleForcesFloatingRegardlessOfMode(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "floatrules")
	if err := os.WriteFile(rulesPath, []byte("*:Dialog\n*:PictureInPicture\n"), 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}

	s, err := New(Config{ChooseTarget: Anchored, FloatRulesPath: rulesPath})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := newDisplay()
	sel := newSelection()

	_, area := s.ChooseTarget(root, sel, "Preferences:Dialog", false, surface.Size{Width: 40, Height: 30})
	if area == nil {
		t.Fatalf("expected a float-rule match to float even under Anchored mode")
	}

	_, area2 := s.ChooseTarget(root, sel, "main:Editor", false, surface.Size{Width: 40, Height: 30})
	if area2 != nil {
		t.Fatalf("expected a non-matching hint to stay tiled, got %+v", area2)
	}
}
