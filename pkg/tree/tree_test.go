package tree

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func leaf(name string, value float64) *Node {
	return &Node{Name: name, Value: value, HasValue: true}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want float64
	}{
		{
			name: "leaf value",
			node: leaf("a", 3),
			want: 3,
		},
		{
			name: "negative clamps to zero",
			node: leaf("a", -5),
			want: 0,
		},
		{
			name: "NaN clamps to zero",
			node: leaf("a", math.NaN()),
			want: 0,
		},
		{
			name: "infinity clamps to zero",
			node: leaf("a", math.Inf(1)),
			want: 0,
		},
		{
			name: "container sums leaves",
			node: &Node{Name: "c", Children: []*Node{leaf("a", 1), leaf("b", 2)}},
			want: 3,
		},
		{
			name: "nested containers aggregate",
			node: &Node{Name: "root", Children: []*Node{
				{Name: "c", Children: []*Node{leaf("a", 1), leaf("b", 2)}},
				leaf("d", 4),
			}},
			want: 7,
		},
		{
			name: "explicit container value wins",
			node: &Node{Name: "c", Value: 10, HasValue: true, Children: []*Node{leaf("a", 1)}},
			want: 10,
		},
		{
			name: "missing value leaf weighs zero",
			node: &Node{Name: "a"},
			want: 0,
		},
		{
			name: "nil node",
			node: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Weight(); got != tt.want {
				t.Errorf("Weight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		root := &Node{Name: "root", Children: []*Node{
			{Name: "a", Value: 2, HasValue: true, Color: "#e11d48"},
			{Name: "b"},
		}}

		got := Normalize(root)

		if !got.HasValue || got.Value != 2 {
			t.Errorf("root value = (%v, %v), want (2, true)", got.Value, got.HasValue)
		}
		if got.Color != DefaultColor {
			t.Errorf("root color = %q, want %q", got.Color, DefaultColor)
		}
		if got.Children[0].Color != "#e11d48" {
			t.Errorf("explicit color overwritten: %q", got.Children[0].Color)
		}
		if !got.Children[1].HasValue || got.Children[1].Value != 0 {
			t.Errorf("valueless leaf = (%v, %v), want (0, true)", got.Children[1].Value, got.Children[1].HasValue)
		}
	})

	t.Run("clamps malformed values", func(t *testing.T) {
		root := &Node{Name: "root", Children: []*Node{
			leaf("neg", -1),
			leaf("nan", math.NaN()),
			leaf("ok", 5),
		}}

		got := Normalize(root)

		if got.Value != 5 {
			t.Errorf("root weight = %v, want 5", got.Value)
		}
		if got.Children[0].Value != 0 || got.Children[1].Value != 0 {
			t.Errorf("clamped children = %v, %v, want 0, 0", got.Children[0].Value, got.Children[1].Value)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		root := &Node{Name: "root", Children: []*Node{{Name: "a"}}}
		_ = Normalize(root)

		if root.HasValue || root.Color != "" || root.Children[0].Color != "" {
			t.Error("Normalize mutated its input")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		root := &Node{Name: "root", Children: []*Node{leaf("a", 1), leaf("b", 2)}}
		once := Normalize(root)
		twice := Normalize(once)

		var b1, b2 bytes.Buffer
		if err := Write(once, &b1); err != nil {
			t.Fatal(err)
		}
		if err := Write(twice, &b2); err != nil {
			t.Fatal(err)
		}
		if b1.String() != b2.String() {
			t.Error("Normalize(Normalize(x)) != Normalize(x)")
		}
	})

	t.Run("nil root", func(t *testing.T) {
		if got := Normalize(nil); got != nil {
			t.Errorf("Normalize(nil) = %v, want nil", got)
		}
	})
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"nil", nil, 0},
		{"leaf root", leaf("a", 1), 0},
		{"one level", &Node{Name: "r", Children: []*Node{leaf("a", 1)}}, 1},
		{"uneven branches", &Node{Name: "r", Children: []*Node{
			leaf("a", 1),
			{Name: "b", Children: []*Node{{Name: "c", Children: []*Node{leaf("d", 1)}}}},
		}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.node); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	root := &Node{Name: "r", Children: []*Node{
		leaf("a", 1),
		{Name: "b", Children: []*Node{leaf("c", 1)}},
	}}
	if got := Count(root); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	input := `{
  "name": "3 Issues",
  "children": [
    {"name": "High", "value": 1, "color": "#e11d48"},
    {"name": "Medium", "value": 2, "color": "#f59e0b"},
    {"name": "Open"}
  ]
}`

	root, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if root.HasValue {
		t.Error("container without value field should have HasValue=false")
	}
	if !root.Children[0].HasValue || root.Children[0].Value != 1 {
		t.Errorf("High = (%v, %v), want (1, true)", root.Children[0].Value, root.Children[0].HasValue)
	}
	if root.Children[2].HasValue {
		t.Error("absent value decoded as present")
	}

	var buf bytes.Buffer
	if err := Write(root, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// An absent value must stay absent on the wire: only High and Medium
	// carry one.
	if got := strings.Count(buf.String(), `"value"`); got != 2 {
		t.Errorf("serialized %d value fields, want 2:\n%s", got, buf.String())
	}

	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("re-Read: %v", err)
	}
	if again.Children[2].HasValue {
		t.Error("round trip invented a value")
	}
	if again.Children[1].Color != "#f59e0b" {
		t.Errorf("color lost in round trip: %q", again.Children[1].Color)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"name": `)); err == nil {
		t.Error("Read accepted malformed JSON")
	}
}
