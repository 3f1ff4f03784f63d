// Package styles defines the visual appearance of rendered sunburst charts.
//
// A [Style] turns pre-computed sector geometry into SVG fragments. The
// rendering sink in pkg/render/sink resolves layout arcs into [Sector]
// values and hands them to the configured style, so styles never depend on
// the layout engine.
package styles

import "bytes"

// Style defines the visual appearance for sunburst rendering.
// Implementations control how sectors and their labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderSector writes the SVG for a single annular sector.
	RenderSector(buf *bytes.Buffer, s Sector)
	// RenderLabel writes the SVG for a sector's label text.
	RenderLabel(buf *bytes.Buffer, s Sector)
}

// Sector contains all data needed to render a single annular sector.
type Sector struct {
	ID         string  // Stable path identifier (e.g. "0.1")
	Name       string  // Node name
	Value      float64 // Effective weight
	Label      string  // Hover label text ("name: value")
	PathD      string  // SVG path data for the sector outline
	Color      string  // Fill color
	LX, LY     float64 // Label anchor (band midpoint at the bisecting angle)
	Span       float64 // Angular width in degrees
	FullCircle bool    // Sector covers the complete ring
}
