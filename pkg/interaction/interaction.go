// Package interaction maps pointer events on a rendered sunburst back to
// tree nodes.
//
// The package holds the only mutable state in the chart: a single optional
// hover selection, modeled as the explicit two-state value [Hover] and
// transitioned exclusively by [Layer.PointerEnter] and [Layer.PointerLeave].
// Everything else is a read-only view over the arcs produced by the layout.
// A Layer is meant for a single event-processing goroutine; it performs no
// locking.
package interaction

import (
	"math"
	"strconv"

	"github.com/helioviz/sunburst/pkg/sunburst"
	"github.com/helioviz/sunburst/pkg/tree"
)

// Hover is the hover selection: either nothing, or exactly one arc
// identified by its path ID. The zero value is the no-hover state.
type Hover struct {
	id     string
	active bool
}

// NoHover returns the empty selection.
func NoHover() Hover { return Hover{} }

// Hovered returns a selection of the arc with the given path ID.
func Hovered(id string) Hover { return Hover{id: id, active: true} }

// Active reports whether an arc is hovered.
func (h Hover) Active() bool { return h.active }

// ID returns the hovered arc's path ID, or "" when nothing is hovered.
func (h Hover) ID() string { return h.id }

// ClickFunc receives the tree node behind a clicked arc. Callers act on the
// node's domain meaning (navigate, filter); the geometry stays internal.
type ClickFunc func(*tree.Node)

// Layer tracks hover state over a computed layout and dispatches clicks.
type Layer struct {
	arcs      []sunburst.Arc
	rootLabel string
	cx, cy    float64
	hover     Hover
	onClick   ClickFunc
}

// NewLayer creates an interaction layer over arcs centered at (cx, cy).
// rootLabel is the label displayed when nothing is hovered, typically the
// root node's name.
func NewLayer(rootLabel string, arcs []sunburst.Arc, cx, cy float64) *Layer {
	return &Layer{arcs: arcs, rootLabel: rootLabel, cx: cx, cy: cy}
}

// OnClick registers the click callback. A nil handler disables clicks.
func (l *Layer) OnClick(fn ClickFunc) { l.onClick = fn }

// PointerEnter moves the hover selection to the given arc.
func (l *Layer) PointerEnter(a sunburst.Arc) {
	l.hover = Hovered(a.ID())
}

// PointerLeave clears the hover selection; Label reverts to the root label.
func (l *Layer) PointerLeave() {
	l.hover = NoHover()
}

// Hover returns the current selection.
func (l *Layer) Hover() Hover { return l.hover }

// Label returns the center label: "{name}: {value}" for the hovered arc, or
// the root label when nothing is hovered.
func (l *Layer) Label() string {
	if !l.hover.active {
		return l.rootLabel
	}
	for _, a := range l.arcs {
		if a.ID() == l.hover.id {
			return ArcLabel(a)
		}
	}
	// Stale selection (e.g. layout replaced); fall back to the root label.
	return l.rootLabel
}

// Click dispatches the arc's source node to the registered callback.
// The callback is invoked exactly once per call.
func (l *Layer) Click(a sunburst.Arc) {
	if l.onClick != nil {
		l.onClick(a.Node)
	}
}

// HitTest maps a pointer position to the arc containing it. It reports
// false when the position falls outside every arc (including the center
// disc and zero-width arcs, which occupy no angular space).
func (l *Layer) HitTest(x, y float64) (sunburst.Arc, bool) {
	dx, dy := x-l.cx, y-l.cy
	r := math.Hypot(dx, dy)

	// Same convention as the layout: degrees clockwise from 12 o'clock.
	angle := math.Atan2(dy, dx)*180/math.Pi + 90
	if angle < 0 {
		angle += 360
	}

	for _, a := range l.arcs {
		if r >= a.InnerRadius && r < a.OuterRadius &&
			angle >= a.StartAngle && angle < a.EndAngle {
			return a, true
		}
	}
	return sunburst.Arc{}, false
}

// ArcLabel formats the hover label for an arc as "{name}: {value}".
// Integral weights print without a fractional part.
func ArcLabel(a sunburst.Arc) string {
	return a.Node.Name + ": " + strconv.FormatFloat(a.Node.Weight(), 'f', -1, 64)
}
