// Package render paints a frame tree onto a text canvas for the demo binary.
// Adapted from the teacher's ui.TreeModel.View canvas/drawString technique:
// instead of laying out Miller columns by depth, each leaf's cell is its
// actual pixel rectangle (already computed by frame.Frame.Homogenize), scaled
// down to terminal cells.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/montrey/framewm/frame"
	"github.com/montrey/framewm/surface"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	floatingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle   = lipgloss.NewStyle().Faint(true)
)

// Paint renders display, a Display-mode frame whose descendants already
// carry pixel geometry, as a w-by-h text canvas. selection, if non-nil and a
// descendant leaf, is drawn in a distinct style.
func Paint(display *frame.Frame, w, h int, selection *frame.Frame) string {
	canvas := newCanvas(w, h)
	if display == nil || display.Size().Width == 0 || display.Size().Height == 0 {
		return canvas.render()
	}

	scaleX := float64(w) / float64(display.Size().Width)
	scaleY := float64(h) / float64(display.Size().Height)

	paintNode(canvas, display, display.Position(), scaleX, scaleY, selection)
	return canvas.render()
}

func paintNode(c *canvas, f *frame.Frame, origin surface.Position, scaleX, scaleY float64, selection *frame.Frame) {
	if f.IsLeaf() {
		paintLeaf(c, f, origin, scaleX, scaleY, selection)
		return
	}
	for _, child := range f.SpaceIter() {
		paintNode(c, child, origin, scaleX, scaleY, selection)
	}
}

func paintLeaf(c *canvas, f *frame.Frame, origin surface.Position, scaleX, scaleY float64, selection *frame.Frame) {
	area := f.Area()
	x0 := int(float64(area.Pos.X-origin.X) * scaleX)
	y0 := int(float64(area.Pos.Y-origin.Y) * scaleY)
	x1 := x0 + maxInt(1, int(float64(area.Size.Width)*scaleX))
	y1 := y0 + maxInt(1, int(float64(area.Size.Height)*scaleY))

	style := normalStyle
	switch {
	case selection != nil && frame.EqualsExact(f, selection):
		style = selectedStyle
	case !f.Anchored():
		style = floatingStyle
	}

	c.box(x0, y0, x1, y1, style)

	label := f.Title()
	if label == "" {
		label = f.Sid().String()
	}
	c.text(x0+1, y0, truncate(label, x1-x0-2), style)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type canvas struct {
	w, h  int
	cells [][]string
}

func newCanvas(w, h int) *canvas {
	cells := make([][]string, h)
	for y := range cells {
		row := make([]string, w)
		for x := range row {
			row[x] = " "
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, s string, style lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = style.Render(s)
}

func (c *canvas) text(x, y int, s string, style lipgloss.Style) {
	for i, r := range []rune(s) {
		c.set(x+i, y, string(r), style)
	}
}

func (c *canvas) box(x0, y0, x1, y1 int, style lipgloss.Style) {
	for x := x0; x < x1; x++ {
		c.set(x, y0, "─", borderStyle)
		c.set(x, y1-1, "─", borderStyle)
	}
	for y := y0; y < y1; y++ {
		c.set(x0, y, "│", borderStyle)
		c.set(x1-1, y, "│", borderStyle)
	}
	c.set(x0, y0, "┌", style)
	c.set(x1-1, y0, "┐", style)
	c.set(x0, y1-1, "└", style)
	c.set(x1-1, y1-1, "┘", style)
}

func (c *canvas) render() string {
	var b strings.Builder
	for y, row := range c.cells {
		b.WriteString(strings.Join(row, ""))
		if y < c.h-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
