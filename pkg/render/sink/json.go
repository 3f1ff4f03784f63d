package sink

import (
	"encoding/json"

	"github.com/helioviz/sunburst/pkg/sunburst"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height float64
	style         string
	levels        int
	radius        float64
	rootLabel     string
}

// WithJSONSize records the frame dimensions in the JSON output.
func WithJSONSize(w, h float64) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = w, h }
}

// WithJSONStyle records the style name in the JSON output for round-trip
// rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONLevels records the ring count and chart radius used by the layout.
func WithJSONLevels(levels int, radius float64) JSONOption {
	return func(r *jsonRenderer) { r.levels, r.radius = levels, radius }
}

// WithJSONRootLabel records the center label shown when nothing is hovered.
func WithJSONRootLabel(s string) JSONOption { return func(r *jsonRenderer) { r.rootLabel = s } }

type jsonOutput struct {
	Width     float64   `json:"width,omitempty"`
	Height    float64   `json:"height,omitempty"`
	Style     string    `json:"style,omitempty"`
	Levels    int       `json:"levels,omitempty"`
	Radius    float64   `json:"radius,omitempty"`
	RootLabel string    `json:"root_label,omitempty"`
	Arcs      []jsonArc `json:"arcs"`
}

type jsonArc struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Color       string  `json:"color"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	StartAngle  float64 `json:"start_angle"`
	EndAngle    float64 `json:"end_angle"`
	PathD       string  `json:"d,omitempty"`
	FullCircle  bool    `json:"full_circle,omitempty"`
}

// RenderJSON exports the arc list as a pretty-printed JSON document, the
// primary interchange format for external tooling. Path data is resolved
// against the recorded frame so a consumer can render without re-running
// the geometry. Zero-width arcs are included (with empty path data) so the
// document mirrors the layout's arc list one-to-one.
//
// RenderJSON does not modify arcs and is safe to call concurrently.
func RenderJSON(arcs []sunburst.Arc, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	cx, cy := r.width/2, r.height/2

	out := jsonOutput{
		Width:     r.width,
		Height:    r.height,
		Style:     r.style,
		Levels:    r.levels,
		Radius:    r.radius,
		RootLabel: r.rootLabel,
		Arcs:      make([]jsonArc, 0, len(arcs)),
	}

	for _, a := range arcs {
		ja := jsonArc{
			ID:          a.ID(),
			Name:        a.Node.Name,
			Value:       a.Node.Weight(),
			Color:       a.Color,
			InnerRadius: a.InnerRadius,
			OuterRadius: a.OuterRadius,
			StartAngle:  a.StartAngle,
			EndAngle:    a.EndAngle,
		}
		if a.Visible() {
			path := sunburst.ArcPath(a, cx, cy)
			ja.PathD = path.D
			ja.FullCircle = path.FullCircle
		}
		out.Arcs = append(out.Arcs, ja)
	}

	return json.MarshalIndent(out, "", "  ")
}
