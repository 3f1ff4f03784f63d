// Package render provides output rendering for computed sunburst layouts.
//
// # Overview
//
// This package groups the output side of the chart pipeline:
//
//   - [sink]: output formats (SVG, JSON)
//   - [styles]: visual styles applied by the SVG sink
//
// # Sinks
//
// The SVG sink produces a self-contained document: sector paths, optional
// inline labels, a center label, and a small script that mirrors the
// interaction layer's hover behavior for static output.
//
//	svg := sink.RenderSVG(arcs,
//	    sink.WithSize(600, 600),
//	    sink.WithCenterLabel(root.Name),
//	)
//
// The JSON sink serializes the arc list with resolved path data so external
// tooling can render without re-running the geometry.
//
//	data, err := sink.RenderJSON(arcs, sink.WithJSONSize(600, 600))
//
// # Styles
//
// A [styles.Style] writes defs, sector paths, and labels. The simple style
// renders flat sectors with white separators; additional styles implement
// the same interface.
//
// [sink]: github.com/helioviz/sunburst/pkg/render/sink
// [styles]: github.com/helioviz/sunburst/pkg/render/styles
package render
