// Package sunburst computes radial hierarchy layouts.
//
// A sunburst maps tree depth to radius and sibling weight to angular width:
// the root occupies the (invisible) center, and each descendant at depth L
// occupies an annular sector in the ring [(L-1)/maxLevels*R, L/maxLevels*R].
// Angles are degrees in [0, 360), measured clockwise from 12 o'clock.
//
// The layout is a pure function: the input tree is never mutated, and
// identical inputs produce bit-identical arc lists. Layout reads weights
// through [github.com/helioviz/sunburst/pkg/tree.Node.Weight], so raw trees
// with missing or malformed values work directly; running
// [github.com/helioviz/sunburst/pkg/tree.Normalize] first is optional and
// only changes which Node pointers the arcs reference.
//
// # Usage
//
//	arcs := sunburst.Layout(root, tree.Depth(root), 200)
//	for _, a := range arcs {
//	    path := sunburst.BuildArcPath(cx, cy, a.OuterRadius, a.InnerRadius, a.StartAngle, a.EndAngle)
//	    fmt.Println(path.D)
//	}
package sunburst
