package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/helioviz/sunburst/pkg/cache"
	"github.com/helioviz/sunburst/pkg/tree"
)

func issuesTree() *tree.Node {
	return &tree.Node{Name: "3 Issues", Children: []*tree.Node{
		{Name: "High", Value: 1, HasValue: true, Color: "#e11d48"},
		{Name: "Medium", Value: 2, HasValue: true, Color: "#f59e0b"},
	}}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), issuesTree(), Options{
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.NodeCount != 3 {
		t.Errorf("node count = %d, want 3", result.Stats.NodeCount)
	}
	if result.Stats.ArcCount != 2 {
		t.Errorf("arc count = %d, want 2", result.Stats.ArcCount)
	}
	if result.Levels != 1 {
		t.Errorf("levels = %d, want 1 (derived from depth)", result.Levels)
	}
	if result.Radius != 290 {
		t.Errorf("radius = %v, want 290", result.Radius)
	}
	if result.TreeHash == "" {
		t.Error("tree hash not set")
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.Contains(svg, "#e11d48") {
		t.Error("SVG artifact missing sector fill")
	}
	if !strings.Contains(svg, ">3 Issues</text>") {
		t.Error("SVG artifact missing center label")
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"name": "Medium"`) {
		t.Error("JSON artifact missing arc")
	}
}

func TestRunnerExecuteNilRoot(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), nil, Options{}); err == nil {
		t.Error("Execute accepted a nil root")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), issuesTree(), Options{Formats: []string{"png"}})
	if err == nil {
		t.Error("Execute accepted an unknown format")
	}
}

func TestRunnerExecuteRejectsControlCharacters(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	root := issuesTree()
	root.Children[0].Name = "bad\x00name"

	if _, err := runner.Execute(context.Background(), root, Options{}); err == nil {
		t.Error("Execute accepted a node name with a null byte")
	}
}

func TestRunnerCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	first, err := runner.Execute(context.Background(), issuesTree(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.RenderHits[FormatSVG] {
		t.Error("first run reported a cache hit")
	}

	second, err := runner.Execute(context.Background(), issuesTree(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHits[FormatSVG] {
		t.Error("second run missed the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// A different frame renders under a different key.
	third, err := runner.Execute(context.Background(), issuesTree(), Options{Width: 800, Height: 800})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.RenderHits[FormatSVG] {
		t.Error("differently sized render hit the old key")
	}

	// Toggling labels changes the artifact bytes and must miss the
	// label-less entry cached above.
	labeled, err := runner.Execute(context.Background(), issuesTree(), Options{Labels: true})
	if err != nil {
		t.Fatal(err)
	}
	if labeled.CacheInfo.RenderHits[FormatSVG] {
		t.Error("labeled render hit the label-less key")
	}
	if !strings.Contains(string(labeled.Artifacts[FormatSVG]), `class="arc-label"`) {
		t.Error("labeled artifact missing label text")
	}

	// So does an explicit radius.
	sized, err := runner.Execute(context.Background(), issuesTree(), Options{Radius: 120})
	if err != nil {
		t.Fatal(err)
	}
	if sized.CacheInfo.RenderHits[FormatSVG] {
		t.Error("explicit-radius render hit the default-radius key")
	}

	// And splitting full-circle sectors.
	split, err := runner.Execute(context.Background(), issuesTree(), Options{SplitFullCircle: true})
	if err != nil {
		t.Fatal(err)
	}
	if split.CacheInfo.RenderHits[FormatSVG] {
		t.Error("split-full-circle render hit the unsplit key")
	}
}

func TestRunnerTreeHashStable(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	a, err := runner.Execute(context.Background(), issuesTree(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := runner.Execute(context.Background(), issuesTree(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.TreeHash != b.TreeHash {
		t.Error("identical trees produced different hashes")
	}

	other := issuesTree()
	other.Children[0].Value = 9
	c, err := runner.Execute(context.Background(), other, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c.TreeHash == a.TreeHash {
		t.Error("different trees produced the same hash")
	}
}
