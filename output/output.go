// Package output models the display outputs the exhibitor creates Displays
// for, and a trivial static provider that feeds the demo binary a fixed
// output list instead of a real display backend.
package output

import "github.com/montrey/framewm/surface"

// ID identifies a physical output.
type ID uint32

// Info describes one output, as reported by on_output_found.
type Info struct {
	ID           ID
	Area         surface.Area
	PhysicalSize surface.Size // in millimeters, advisory only
	RefreshHz    int
	Make         string
	Model        string
}

// Provider enumerates the outputs currently available.
type Provider interface {
	Outputs() []Info
}

// StaticProvider is a fixed list of outputs given at construction (the demo
// passes one hard-coded 1280x720 output); it never changes after
// construction. Grounded on the demo's need for
// "an output provider with no real display backend to talk to" — the same
// shape the teacher's config-driven defaults take for values that would
// otherwise come from the environment.
type StaticProvider struct {
	infos []Info
}

// NewStaticProvider returns a StaticProvider reporting exactly infos.
func NewStaticProvider(infos ...Info) *StaticProvider {
	return &StaticProvider{infos: infos}
}

func (p *StaticProvider) Outputs() []Info {
	out := make([]Info, len(p.infos))
	copy(out, p.infos)
	return out
}
