package interaction

import (
	"testing"

	"github.com/helioviz/sunburst/pkg/sunburst"
	"github.com/helioviz/sunburst/pkg/tree"
)

func issuesLayout(t *testing.T) (*tree.Node, []sunburst.Arc) {
	t.Helper()
	root := &tree.Node{Name: "3 Issues", Children: []*tree.Node{
		{Name: "High", Value: 1, HasValue: true, Color: "#e11d48"},
		{Name: "Medium", Value: 2, HasValue: true, Color: "#f59e0b"},
	}}
	arcs := sunburst.Layout(root, 1, 40)
	if len(arcs) != 2 {
		t.Fatalf("layout produced %d arcs, want 2", len(arcs))
	}
	return root, arcs
}

func TestHoverStates(t *testing.T) {
	h := NoHover()
	if h.Active() || h.ID() != "" {
		t.Errorf("NoHover() = (%v, %q), want inactive empty", h.Active(), h.ID())
	}

	h = Hovered("0.1")
	if !h.Active() || h.ID() != "0.1" {
		t.Errorf("Hovered() = (%v, %q), want (true, 0.1)", h.Active(), h.ID())
	}

	// The zero value is the no-hover state.
	var zero Hover
	if zero.Active() {
		t.Error("zero Hover must be inactive")
	}
}

func TestLayerLabel(t *testing.T) {
	root, arcs := issuesLayout(t)
	layer := NewLayer(root.Name, arcs, 0, 0)

	if got := layer.Label(); got != "3 Issues" {
		t.Errorf("initial label = %q, want root label", got)
	}

	layer.PointerEnter(arcs[0])
	if got := layer.Label(); got != "High: 1" {
		t.Errorf("hovered label = %q, want %q", got, "High: 1")
	}
	if !layer.Hover().Active() {
		t.Error("hover not active after PointerEnter")
	}

	layer.PointerEnter(arcs[1])
	if got := layer.Label(); got != "Medium: 2" {
		t.Errorf("re-hovered label = %q, want %q", got, "Medium: 2")
	}

	layer.PointerLeave()
	if got := layer.Label(); got != "3 Issues" {
		t.Errorf("label after leave = %q, want root label", got)
	}
	if layer.Hover().Active() {
		t.Error("hover still active after PointerLeave")
	}
}

func TestLayerLabelStaleSelection(t *testing.T) {
	root, arcs := issuesLayout(t)
	layer := NewLayer(root.Name, arcs[:1], 0, 0)

	// Hover an arc the layer does not know about.
	layer.PointerEnter(arcs[1])
	if got := layer.Label(); got != "3 Issues" {
		t.Errorf("stale hover label = %q, want root label", got)
	}
}

func TestLayerClick(t *testing.T) {
	root, arcs := issuesLayout(t)
	layer := NewLayer(root.Name, arcs, 0, 0)

	var clicks []*tree.Node
	layer.OnClick(func(n *tree.Node) {
		clicks = append(clicks, n)
	})

	layer.Click(arcs[1])

	if len(clicks) != 1 {
		t.Fatalf("callback ran %d times, want exactly 1", len(clicks))
	}
	if clicks[0] != arcs[1].Node {
		t.Error("callback did not receive the arc's source node")
	}

	// A nil handler disables clicks without panicking.
	layer.OnClick(nil)
	layer.Click(arcs[0])
	if len(clicks) != 1 {
		t.Errorf("nil handler still recorded a click")
	}
}

func TestHitTest(t *testing.T) {
	root, arcs := issuesLayout(t)
	layer := NewLayer(root.Name, arcs, 300, 300)

	tests := []struct {
		name     string
		x, y     float64
		wantName string
		wantHit  bool
	}{
		// 60° at radius 20 falls inside High's [0°, 120°) span.
		{"inside High", 300 + 17.32, 300 - 10, "High", true},
		// 240° at radius 20 falls inside Medium's [120°, 360°) span.
		{"inside Medium", 300 - 17.32, 300 + 10, "Medium", true},
		{"center point", 300, 300, "High", true},
		{"outside radius", 300, 250, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, ok := layer.HitTest(tt.x, tt.y)
			if ok != tt.wantHit {
				t.Fatalf("HitTest hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && arc.Node.Name != tt.wantName {
				t.Errorf("HitTest node = %q, want %q", arc.Node.Name, tt.wantName)
			}
		})
	}
}

func TestHitTestZeroWidthArc(t *testing.T) {
	root := &tree.Node{Name: "root", Children: []*tree.Node{
		{Name: "a", Value: 1, HasValue: true},
		{Name: "empty", Value: 0, HasValue: true},
	}}
	arcs := sunburst.Layout(root, 1, 40)
	layer := NewLayer(root.Name, arcs, 0, 0)

	// Every point that hits anything hits "a"; the zero-width arc occupies
	// no angular space.
	arc, ok := layer.HitTest(0, -20)
	if !ok || arc.Node.Name != "a" {
		t.Errorf("HitTest = (%v, %v), want a", arc.Node, ok)
	}
}

func TestArcLabelFormatting(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"integral", 2, "n: 2"},
		{"fractional", 2.5, "n: 2.5"},
		{"zero", 0, "n: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sunburst.Arc{Node: &tree.Node{Name: "n", Value: tt.value, HasValue: true}}
			if got := ArcLabel(a); got != tt.want {
				t.Errorf("ArcLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
