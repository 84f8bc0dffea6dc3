package render

import (
	"strings"
	"testing"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

func TestPaintDrawsLeafTitles(t *testing.T) {
	display := frame.New(surface.Invalid, frame.Display, frame.Stacked, surface.Position{}, surface.Size{Width: 100, Height: 100}, "", true)
	workspace := frame.New(surface.Invalid, frame.Workspace, frame.Horizontal, surface.Position{}, surface.Size{Width: 100, Height: 100}, "main", true)
	display.Append(workspace)

	left := frame.New(surface.ID(1), frame.Leaf, frame.Stacked, surface.Position{}, surface.Size{}, "alpha", true)
	right := frame.New(surface.ID(2), frame.Leaf, frame.Stacked, surface.Position{}, surface.Size{}, "beta", true)
	workspace.Append(left)
	workspace.Append(right)
	workspace.Homogenize(nil)

	out := Paint(display, 40, 10, left)
	if !strings.Contains(out, "alpha") {
		t.Errorf("expected output to contain leaf title alpha, got:\n%s", out)
	}
	if !strings.Contains(out, "beta") {
		t.Errorf("expected output to contain leaf title beta, got:\n%s", out)
	}
}

func TestPaintEmptyDisplayReturnsBlankCanvas(t *testing.T) {
	out := Paint(nil, 10, 3, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			t.Errorf("expected blank line, got %q", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("expected no truncation, got %q", got)
	}
	if got := truncate("hello world", 5); got != "hell…" {
		t.Errorf("expected hell…, got %q", got)
	}
}
