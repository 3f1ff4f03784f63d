// Package pipeline provides the core chart pipeline for Sunburst.
//
// This package implements the complete normalize → layout → render pipeline
// used by both the CLI and the HTTP server. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Normalize: canonicalize the input tree (clamping, default colors)
//  2. Layout: partition angular space and assign radius bands
//  3. Render: generate output in the requested formats (SVG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:   600,
//	    Height:  600,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, root, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/helioviz/sunburst/pkg/errors"
	"github.com/helioviz/sunburst/pkg/sunburst"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 600.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// DefaultPadding is the margin between the outermost ring and the frame
	// edge when the radius is derived from the frame.
	DefaultPadding = 10.0

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultCacheTTL bounds how long rendered artifacts stay cached.
	DefaultCacheTTL = 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// Options controls a pipeline run. The zero value plus
// [Options.ValidateAndSetDefaults] yields a 600x600 SVG chart with rings
// derived from the tree's depth.
type Options struct {
	// Width and Height are the frame dimensions in pixels.
	Width  float64
	Height float64

	// Levels is the ring count. Zero derives it from the tree's depth so the
	// outermost ring equals the deepest level present.
	Levels int

	// Radius is the overall chart radius. Zero derives it from the frame:
	// half the smaller dimension minus DefaultPadding.
	Radius float64

	// Style selects the visual style for SVG output.
	Style string

	// Formats lists the artifacts to produce ("svg", "json").
	Formats []string

	// Labels draws inline sector labels in SVG output.
	Labels bool

	// SplitFullCircle renders 360° sectors as two half arcs (see the
	// arc-path builder's notes on the degenerate full-circle case).
	SplitFullCircle bool

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// ValidateAndSetDefaults fills zero fields with defaults and validates the
// result. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}

	if err := errors.ValidateFrame(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := errors.ValidateLevels(o.Levels); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// chartRadius returns the configured radius, deriving it from the frame
// when unset.
func (o *Options) chartRadius() float64 {
	if o.Radius > 0 {
		return o.Radius
	}
	r := min(o.Width, o.Height)/2 - DefaultPadding
	if r <= 0 {
		r = min(o.Width, o.Height) / 2
	}
	return r
}

// Stats captures timing and size information for a pipeline run.
type Stats struct {
	NodeCount  int
	ArcCount   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which artifacts were served from cache.
type CacheInfo struct {
	// RenderHits maps format → whether the artifact was a cache hit.
	RenderHits map[string]bool
}

// Result is the output of a pipeline run.
type Result struct {
	// Arcs is the computed layout, in traversal order.
	Arcs []sunburst.Arc

	// Artifacts maps format ("svg", "json") to rendered bytes.
	Artifacts map[string][]byte

	// TreeHash fingerprints the normalized input tree.
	TreeHash string

	// Levels and Radius are the resolved layout parameters.
	Levels int
	Radius float64

	Stats     Stats
	CacheInfo CacheInfo
}
