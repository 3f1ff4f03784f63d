package sunburst

import (
	"fmt"
	"math"
)

// Point is a cartesian coordinate in the SVG user space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathDescriptor is the closed outline of an annular sector.
//
// D is the SVG path data. The four corner points are kept so hit regions and
// labels can be derived without re-parsing the path. FullCircle marks the
// degenerate 360° case: the start and end points of each sweep coincide, so
// a two-point arc primitive renders D as empty. Callers that need a visible
// fill for such a sector must use [BuildFullCirclePath] instead; plain
// BuildArcPath deliberately does not substitute it (see the package notes on
// degenerate spans).
type PathDescriptor struct {
	D          string  `json:"d"`
	OuterStart Point   `json:"outer_start"`
	OuterEnd   Point   `json:"outer_end"`
	InnerStart Point   `json:"inner_start"`
	InnerEnd   Point   `json:"inner_end"`
	Span       float64 `json:"span"`
	FullCircle bool    `json:"full_circle,omitempty"`
}

// polarToCartesian converts an angle in chart degrees (0° at 12 o'clock,
// clockwise) to a point on the circle of radius r around (cx, cy). The −90°
// shift moves the SVG zero angle from 3 o'clock up to 12 o'clock.
func polarToCartesian(cx, cy, r, angle float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// BuildArcPath constructs the annular-sector outline for the angle range
// [start, end) between innerR and outerR, centered at (cx, cy).
//
// The outline runs: outer sweep from end back to start, a radial segment
// inward at start, inner sweep from start forward to end, and an implicit
// closing segment. Both sweeps use the counter-clockwise SVG sweep flag,
// which draws the visually clockwise layout because the endpoints are
// ordered end-to-start on the outer rim. The large-arc flag is set when the
// span exceeds 180°.
//
// Degenerate inputs never panic: start == end yields a zero-width (point)
// outline, and a full 360° span yields a path whose sweeps collapse (the
// descriptor's FullCircle flag is set so callers can detect it).
func BuildArcPath(cx, cy, outerR, innerR, start, end float64) PathDescriptor {
	span := end - start

	outerEnd := polarToCartesian(cx, cy, outerR, end)
	outerStart := polarToCartesian(cx, cy, outerR, start)
	innerEnd := polarToCartesian(cx, cy, innerR, end)
	innerStart := polarToCartesian(cx, cy, innerR, start)

	largeArc := 0
	if span > 180 {
		largeArc = 1
	}

	d := fmt.Sprintf(
		"M %s A %s 0 %d 0 %s L %s A %s 0 %d 1 %s Z",
		fmtPoint(outerEnd),
		fmtRadii(outerR), largeArc, fmtPoint(outerStart),
		fmtPoint(innerStart),
		fmtRadii(innerR), largeArc, fmtPoint(innerEnd),
	)

	return PathDescriptor{
		D:          d,
		OuterStart: outerStart,
		OuterEnd:   outerEnd,
		InnerStart: innerStart,
		InnerEnd:   innerEnd,
		Span:       span,
		FullCircle: span >= FullCircle,
	}
}

// BuildFullCirclePath constructs a complete annular ring as two 180° halves.
//
// A single 360° sector degenerates with two-point arc primitives because the
// sweep's endpoints coincide. Splitting at the 180° meridian keeps every
// sweep well-defined. This is the explicit opt-in for callers that want a
// rendered fill for a full-circle arc; the layout itself never performs the
// split.
func BuildFullCirclePath(cx, cy, outerR, innerR, start float64) PathDescriptor {
	mid := start + 180

	top := polarToCartesian(cx, cy, outerR, start)
	bottom := polarToCartesian(cx, cy, outerR, mid)
	innerTop := polarToCartesian(cx, cy, innerR, start)
	innerBottom := polarToCartesian(cx, cy, innerR, mid)

	d := fmt.Sprintf(
		"M %s A %s 0 0 0 %s A %s 0 0 0 %s L %s A %s 0 0 1 %s A %s 0 0 1 %s Z",
		fmtPoint(top),
		fmtRadii(outerR), fmtPoint(bottom),
		fmtRadii(outerR), fmtPoint(top),
		fmtPoint(innerTop),
		fmtRadii(innerR), fmtPoint(innerBottom),
		fmtRadii(innerR), fmtPoint(innerTop),
	)

	return PathDescriptor{
		D:          d,
		OuterStart: top,
		OuterEnd:   top,
		InnerStart: innerTop,
		InnerEnd:   innerTop,
		Span:       FullCircle,
		FullCircle: true,
	}
}

// Centroid returns the midpoint of an arc's radius band at its bisecting
// angle, the natural anchor for a label.
func Centroid(a Arc, cx, cy float64) Point {
	mid := (a.StartAngle + a.EndAngle) / 2
	r := (a.InnerRadius + a.OuterRadius) / 2
	return polarToCartesian(cx, cy, r, mid)
}

// ArcPath builds the path descriptor for a layout arc around (cx, cy).
func ArcPath(a Arc, cx, cy float64) PathDescriptor {
	return BuildArcPath(cx, cy, a.OuterRadius, a.InnerRadius, a.StartAngle, a.EndAngle)
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("%.3f %.3f", p.X, p.Y)
}

func fmtRadii(r float64) string {
	return fmt.Sprintf("%.3f %.3f", r, r)
}
