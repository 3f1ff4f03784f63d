package sunburst

import (
	"strconv"
	"strings"

	"github.com/helioviz/sunburst/pkg/tree"
)

// FullCircle is the angular span of a complete ring, in degrees.
const FullCircle = 360.0

// Arc is one annular sector of a computed layout.
//
// Angles are degrees in [0, 360), clockwise from 12 o'clock; the radius band
// is [InnerRadius, OuterRadius). Node points into the tree the layout was
// computed from, so callers can act on domain semantics rather than geometry.
// Path is the stable structural identifier of the node: the chain of child
// indices from the root (the root itself has the empty path and emits no arc).
type Arc struct {
	InnerRadius float64    `json:"inner_radius"`
	OuterRadius float64    `json:"outer_radius"`
	StartAngle  float64    `json:"start_angle"`
	EndAngle    float64    `json:"end_angle"`
	Color       string     `json:"color"`
	Node        *tree.Node `json:"-"`
	Path        []int      `json:"path"`
}

// Span returns the angular width of the arc in degrees.
func (a Arc) Span() float64 { return a.EndAngle - a.StartAngle }

// Level returns the depth of the arc's node, where direct children of the
// root are level 1.
func (a Arc) Level() int { return len(a.Path) }

// Visible reports whether the arc has positive angular width. Zero-weight
// nodes produce arcs of zero span which renderers skip.
func (a Arc) Visible() bool { return a.Span() > 0 }

// ID returns the path identifier as a dot-joined string (e.g. "0.1").
// It is stable across layout calls for an unmodified tree and is used to
// correlate rendered elements with arcs.
func (a Arc) ID() string {
	parts := make([]string, len(a.Path))
	for i, p := range a.Path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}

// Layout partitions the full circle among the descendants of root and
// returns one arc per node that carries positive weight.
//
// maxLevels is the number of radius bands; the ring for depth L spans
// [(L-1)/maxLevels*R, L/maxLevels*R]. Callers typically pass
// tree.Depth(root) so the outermost ring matches the deepest level present.
// maxLevels below 1 is clamped to 1.
//
// The traversal is depth-first in input order: children are never reordered,
// siblings split their parent's span proportionally to Weight, and a
// zero-weight node still propagates a zero-width range to its children so
// the arc list's ordering is independent of weights. The root never emits
// an arc. Layout never fails on malformed input; negative and NaN weights
// count as zero.
func Layout(root *tree.Node, maxLevels int, radius float64) []Arc {
	if root == nil || radius <= 0 {
		return nil
	}
	if maxLevels < 1 {
		maxLevels = 1
	}
	var arcs []Arc
	walk(root, nil, 0, FullCircle, maxLevels, radius, &arcs)
	return arcs
}

// walk assigns [start, end) to node at the level implied by len(path) and
// recurses into its children with proportional sub-ranges.
func walk(node *tree.Node, path []int, start, end float64, maxLevels int, radius float64, arcs *[]Arc) {
	level := len(path)
	if level > 0 && node.Weight() > 0 {
		*arcs = append(*arcs, Arc{
			InnerRadius: float64(level-1) / float64(maxLevels) * radius,
			OuterRadius: float64(level) / float64(maxLevels) * radius,
			StartAngle:  start,
			EndAngle:    end,
			Color:       nodeColor(node),
			Node:        node,
			Path:        path,
		})
	}

	if len(node.Children) == 0 {
		return
	}

	var total float64
	for _, c := range node.Children {
		total += c.Weight()
	}
	if total == 0 {
		// All-zero siblings still get deterministic (zero-width) ranges.
		total = 1
	}

	cursor := start
	for i, c := range node.Children {
		width := (end - start) * (c.Weight() / total)
		childPath := append(append(make([]int, 0, level+1), path...), i)
		walk(c, childPath, cursor, cursor+width, maxLevels, radius, arcs)
		cursor += width
	}
}

func nodeColor(n *tree.Node) string {
	if n.Color != "" {
		return n.Color
	}
	return tree.DefaultColor
}
