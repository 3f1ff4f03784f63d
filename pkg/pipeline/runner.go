package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/helioviz/sunburst/pkg/cache"
	"github.com/helioviz/sunburst/pkg/errors"
	"github.com/helioviz/sunburst/pkg/observability"
	"github.com/helioviz/sunburst/pkg/render/sink"
	"github.com/helioviz/sunburst/pkg/render/styles"
	"github.com/helioviz/sunburst/pkg/sunburst"
	"github.com/helioviz/sunburst/pkg/tree"
)

// Runner encapsulates pipeline execution with render caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Close releases the runner's cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete normalize → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, root *tree.Node, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	if root == nil {
		return nil, fmt.Errorf("invalid tree: nil root")
	}

	// Stage 1: Normalize. The normalized tree is both the layout input and
	// the basis of the cache fingerprint.
	norm := tree.Normalize(root)
	nodeCount := tree.Count(norm)
	if err := validateTree(norm, 0); err != nil {
		return nil, err
	}

	var treeBuf bytes.Buffer
	if err := tree.Write(norm, &treeBuf); err != nil {
		return nil, fmt.Errorf("fingerprint tree: %w", err)
	}
	treeHash := cache.Hash(treeBuf.Bytes())

	levels := opts.Levels
	if levels == 0 {
		levels = tree.Depth(norm)
		if levels == 0 {
			levels = 1
		}
	}
	radius := opts.chartRadius()

	result := &Result{
		Artifacts: make(map[string][]byte),
		TreeHash:  treeHash,
		Levels:    levels,
		Radius:    radius,
		CacheInfo: CacheInfo{RenderHits: make(map[string]bool)},
	}
	result.Stats.NodeCount = nodeCount

	// Stage 2: Layout.
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, nodeCount)
	arcs := sunburst.Layout(norm, levels, radius)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ArcCount = len(arcs)
	observability.Pipeline().OnLayoutComplete(ctx, len(arcs), result.Stats.LayoutTime, nil)
	result.Arcs = arcs

	logger.Info("computed layout",
		"nodes", nodeCount,
		"arcs", len(arcs),
		"levels", levels,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render, with per-format caching.
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, hit, err := r.renderCached(ctx, norm, arcs, format, treeHash, levels, radius, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheInfo.RenderHits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderCached renders one artifact, consulting the cache first.
func (r *Runner) renderCached(ctx context.Context, norm *tree.Node, arcs []sunburst.Arc, format, treeHash string, levels int, radius float64, opts Options) ([]byte, bool, error) {
	key := r.Keyer.RenderKey(cache.RenderKeyInputs{
		TreeHash:        treeHash,
		Format:          format,
		Style:           opts.Style,
		Width:           opts.Width,
		Height:          opts.Height,
		Radius:          radius,
		Levels:          levels,
		Labels:          opts.Labels,
		SplitFullCircle: opts.SplitFullCircle,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "render")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	data, err := r.render(norm, arcs, format, levels, radius, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
		// A failing cache write must not fail the render.
		r.Logger.Debug("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}
	return data, false, nil
}

func (r *Runner) render(norm *tree.Node, arcs []sunburst.Arc, format string, levels int, radius float64, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := []sink.SVGOption{
			sink.WithSize(opts.Width, opts.Height),
			sink.WithStyle(styleFor(opts.Style)),
			sink.WithCenterLabel(norm.Name),
		}
		if opts.Labels {
			svgOpts = append(svgOpts, sink.WithLabels())
		}
		if opts.SplitFullCircle {
			svgOpts = append(svgOpts, sink.WithSplitFullCircle())
		}
		return sink.RenderSVG(arcs, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(arcs,
			sink.WithJSONSize(opts.Width, opts.Height),
			sink.WithJSONStyle(opts.Style),
			sink.WithJSONLevels(levels, radius),
			sink.WithJSONRootLabel(norm.Name),
		)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// validateTree rejects node names that are unsafe to embed in rendered
// documents, and bounds recursion depth.
func validateTree(n *tree.Node, depth int) error {
	if depth > errors.MaxTreeDepth {
		return errors.New(errors.ErrCodeInvalidTree, "tree exceeds maximum depth of %d", errors.MaxTreeDepth)
	}
	if err := errors.ValidateNodeName(n.Name); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := validateTree(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func styleFor(name string) styles.Style {
	// Only one style today; validation already rejected unknown names.
	return styles.Simple{}
}
