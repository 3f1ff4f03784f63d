// Package pkg provides the core libraries for Sunburst chart rendering.
//
// # Overview
//
// Sunburst turns arbitrary-depth weighted trees into radial hierarchy
// charts: depth maps to radius bands and sibling weight maps to angular
// width. The pkg directory is organized into five areas:
//
//  1. [tree] - Weighted hierarchy model and normalization
//  2. [sunburst] - Layout engine and arc geometry
//  3. [render] - Output sinks (SVG, JSON) and visual styles
//  4. [interaction] - Hover state, labels, click dispatch, hit-testing
//  5. [pipeline] - Orchestration (normalize → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Sunburst:
//
//	Weighted tree (JSON)
//	         ↓
//	    [tree] package (normalize values and colors)
//	         ↓
//	    [sunburst] package (angles + radius bands → arcs)
//	         ↓
//	    [render] package (SVG/JSON output)
//
// # Quick Start
//
// Load a tree and render it:
//
//	import (
//	    "github.com/helioviz/sunburst/pkg/render/sink"
//	    "github.com/helioviz/sunburst/pkg/sunburst"
//	    "github.com/helioviz/sunburst/pkg/tree"
//	)
//
//	// 1. Load and normalize
//	root, _ := tree.ReadFile("issues.json")
//	norm := tree.Normalize(root)
//
//	// 2. Compute the layout
//	arcs := sunburst.Layout(norm, tree.Depth(norm), 280)
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(arcs, sink.WithCenterLabel(norm.Name))
//
// # Main Packages
//
// [tree] - The weighted hierarchy consumed by the layout. Normalization
// clamps malformed values, fills default colors, and aggregates container
// weights from descendant leaves.
//
// [sunburst] - The pure layout function plus SVG arc-path construction.
// Layout output is deterministic: the same tree and parameters always
// produce the same arcs.
//
// [render] - Output sinks and styles. The SVG sink emits a self-contained
// document with hover behavior; the JSON sink is the interchange format
// for external tooling.
//
// [interaction] - Maps pointer events back to tree nodes: hover selection,
// center-label text, click dispatch, and polar hit-testing.
//
// [pipeline] - The normalize → layout → render pipeline shared by the CLI
// and the HTTP server, with per-format render caching keyed by the
// normalized tree's fingerprint.
//
// [cache] - Render cache backends (file, redis, null) and key derivation.
//
// [errors] - Structured error codes shared across CLI and server.
//
// [observability] - Pluggable pipeline and cache hooks.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sunburst/... # Specific package
//	go test -run Example       # Examples only
//
// [tree]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/tree
// [sunburst]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/sunburst
// [render]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/render
// [interaction]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/interaction
// [pipeline]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/cache
// [errors]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/helioviz/sunburst/pkg/observability
package pkg
