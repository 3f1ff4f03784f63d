package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// jsonNode is the wire form of a Node. Value is a pointer so that an absent
// "value" field can be told apart from an explicit 0.
type jsonNode struct {
	Name     string      `json:"name"`
	Value    *float64    `json:"value,omitempty"`
	Color    string      `json:"color,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// MarshalJSON encodes the node, omitting "value" when HasValue is false.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(n))
}

// UnmarshalJSON decodes the node, setting HasValue only when the "value"
// field was present.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w jsonNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = *fromWire(&w)
	return nil
}

func toWire(n *Node) *jsonNode {
	w := &jsonNode{Name: n.Name, Color: n.Color}
	if n.HasValue {
		v := n.Value
		w.Value = &v
	}
	if len(n.Children) > 0 {
		w.Children = make([]*jsonNode, len(n.Children))
		for i, c := range n.Children {
			w.Children[i] = toWire(c)
		}
	}
	return w
}

func fromWire(w *jsonNode) *Node {
	n := &Node{Name: w.Name, Color: w.Color}
	if w.Value != nil {
		n.Value = *w.Value
		n.HasValue = true
	}
	if len(w.Children) > 0 {
		n.Children = make([]*Node, len(w.Children))
		for i, c := range w.Children {
			n.Children[i] = fromWire(c)
		}
	}
	return n
}

// Read decodes a tree from r.
func Read(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &n, nil
}

// ReadFile loads a tree from a JSON file.
func ReadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes the tree as indented JSON to w.
// The output round-trips through [Read] without loss.
func Write(root *Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}
