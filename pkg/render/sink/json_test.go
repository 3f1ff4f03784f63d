package sink

import (
	"encoding/json"
	"testing"

	"github.com/helioviz/sunburst/pkg/sunburst"
	"github.com/helioviz/sunburst/pkg/tree"
)

func TestRenderJSON(t *testing.T) {
	arcs := issuesArcs(t)

	data, err := RenderJSON(arcs,
		WithJSONSize(600, 600),
		WithJSONStyle("simple"),
		WithJSONLevels(1, 250),
		WithJSONRootLabel("3 Issues"),
	)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Width     float64 `json:"width"`
		Style     string  `json:"style"`
		Levels    int     `json:"levels"`
		Radius    float64 `json:"radius"`
		RootLabel string  `json:"root_label"`
		Arcs      []struct {
			ID         string  `json:"id"`
			Name       string  `json:"name"`
			Value      float64 `json:"value"`
			StartAngle float64 `json:"start_angle"`
			EndAngle   float64 `json:"end_angle"`
			PathD      string  `json:"d"`
		} `json:"arcs"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Width != 600 || out.Style != "simple" || out.Levels != 1 || out.Radius != 250 {
		t.Errorf("frame metadata = %+v", out)
	}
	if out.RootLabel != "3 Issues" {
		t.Errorf("root label = %q", out.RootLabel)
	}
	if len(out.Arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(out.Arcs))
	}
	if out.Arcs[0].Name != "High" || out.Arcs[0].ID != "0" {
		t.Errorf("first arc = %+v, want High/0", out.Arcs[0])
	}
	if out.Arcs[0].PathD == "" {
		t.Error("visible arc has no resolved path data")
	}
	if out.Arcs[1].Value != 2 {
		t.Errorf("Medium value = %v, want 2", out.Arcs[1].Value)
	}
}

func TestRenderJSONIncludesZeroWidth(t *testing.T) {
	root := &tree.Node{Name: "root", Children: []*tree.Node{
		{Name: "a", Value: 1, HasValue: true},
		{Name: "empty", Value: 0, HasValue: true},
	}}
	arcs := sunburst.Layout(root, 1, 250)

	// The layout drops the zero-weight node, so the document mirrors that.
	data, err := RenderJSON(arcs, WithJSONSize(600, 600))
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Arcs []struct {
			Name  string `json:"name"`
			PathD string `json:"d"`
		} `json:"arcs"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Arcs) != len(arcs) {
		t.Errorf("document has %d arcs, layout has %d", len(out.Arcs), len(arcs))
	}
}

func TestRenderJSONEmptyArcs(t *testing.T) {
	data, err := RenderJSON(nil)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Arcs []any `json:"arcs"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Arcs == nil {
		t.Error(`"arcs" must serialize as [], not null`)
	}
}
