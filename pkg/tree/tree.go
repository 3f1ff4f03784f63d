// Package tree defines the weighted hierarchy consumed by the sunburst
// layout engine and its normalization rules.
//
// A [Node] is either a container (has children) or a leaf (carries a value).
// Raw trees arrive from callers or from JSON files and may contain missing,
// negative, or NaN values and absent colors. [Normalize] converts such a tree
// into the canonical form the layout engine expects without mutating the
// caller's structures.
//
// # Weight semantics
//
//   - A leaf's weight is its clamped value (negative and NaN become 0).
//   - A container without an explicit value weighs the sum of its descendant
//     leaf weights.
//   - A container with an explicit value keeps that value as its weight.
//
// # Usage
//
//	root, err := tree.ReadFile("issues.json")
//	if err != nil {
//	    return err
//	}
//	norm := tree.Normalize(root)
//	levels := tree.Depth(norm)
package tree

import (
	"math"
)

// DefaultColor is the neutral fill assigned to nodes without an explicit color.
const DefaultColor = "#9ca3af"

// Node is one element of a weighted hierarchy.
//
// Value is meaningful only when HasValue is true; JSON decoding sets HasValue
// for nodes whose "value" field is present. A node with children is a
// container, and its angular weight defaults to the sum of its descendant
// leaves when no explicit value is given.
type Node struct {
	Name     string  `json:"name"`
	Value    float64 `json:"-"`
	HasValue bool    `json:"-"`
	Color    string  `json:"color,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsContainer reports whether the node has children.
func (n *Node) IsContainer() bool { return len(n.Children) > 0 }

// Weight returns the node's effective angular weight.
//
// The result is always finite and non-negative: explicit values are clamped,
// and containers without a value aggregate their descendant leaf weights.
func (n *Node) Weight() float64 {
	if n == nil {
		return 0
	}
	if n.HasValue {
		return clamp(n.Value)
	}
	var sum float64
	for _, c := range n.Children {
		sum += c.Weight()
	}
	return sum
}

// Normalize returns a canonical deep copy of root.
//
// In the returned tree every node has a finite non-negative Value with
// HasValue set, and a non-empty Color (defaulting to [DefaultColor]).
// The input tree is never modified; callers may reuse it across calls.
// Normalize(nil) returns nil.
func Normalize(root *Node) *Node {
	if root == nil {
		return nil
	}
	out := &Node{
		Name:     root.Name,
		Value:    root.Weight(),
		HasValue: true,
		Color:    root.Color,
	}
	if out.Color == "" {
		out.Color = DefaultColor
	}
	if len(root.Children) > 0 {
		out.Children = make([]*Node, len(root.Children))
		for i, c := range root.Children {
			out.Children[i] = Normalize(c)
		}
	}
	return out
}

// Depth returns the deepest level present in the tree, counting the root as
// level 0. A leaf root has depth 0; a root with only leaf children has depth 1.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	max := 0
	for _, c := range root.Children {
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}
	return max
}

// Count returns the total number of nodes in the tree, including the root.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	n := 1
	for _, c := range root.Children {
		n += Count(c)
	}
	return n
}

// clamp maps negative, NaN, and infinite values to 0 so that sibling totals
// and span fractions stay finite.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
