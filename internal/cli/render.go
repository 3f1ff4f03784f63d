package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/helioviz/sunburst/pkg/cache"
	"github.com/helioviz/sunburst/pkg/errors"
	"github.com/helioviz/sunburst/pkg/pipeline"
	"github.com/helioviz/sunburst/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output          string   // output file path (or base path for multiple formats)
	formats         []string // output formats: "svg", "json"
	width           float64  // viewport width in pixels
	height          float64  // viewport height in pixels
	levels          int      // ring count; 0 derives from tree depth
	radius          float64  // chart radius; 0 derives from the frame
	style           string   // visual style
	labels          bool     // draw inline sector labels
	splitFullCircle bool     // split 360° sectors into two half arcs
	noCache         bool     // disable the render cache
	configFile      string   // alternate config file path
}

// newRenderCmd creates the render command for generating charts.
// It reads a tree JSON file (or stdin with "-") and writes one artifact per
// requested format.
//
// Default settings come from the config file, falling back to a 600x600
// simple-style SVG with rings derived from the tree's depth.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <tree.json>",
		Short: "Render a weighted tree to a sunburst chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height (default from config)")
	cmd.Flags().IntVar(&opts.levels, "levels", 0, "ring count (default: tree depth)")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "chart radius (default: derived from frame)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw inline sector labels")
	cmd.Flags().BoolVar(&opts.splitFullCircle, "split-full-circle", false, "render 360° sectors as two half arcs")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default: ~/.config/sunburst/config.toml)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// runRender loads the tree, runs the pipeline, and writes the artifacts.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := LoadConfig(opts.configFile)
	if err != nil {
		return err
	}

	root, err := readTree(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", "nodes", tree.Count(root), "depth", tree.Depth(root))

	c, err := buildCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	p := newProgress(logger)
	result, err := runner.Execute(ctx, root, pipeline.Options{
		Width:           firstNonZero(opts.width, cfg.Chart.Width),
		Height:          firstNonZero(opts.height, cfg.Chart.Height),
		Levels:          opts.levels,
		Radius:          opts.radius,
		Style:           firstNonEmpty(opts.style, cfg.Chart.Style),
		Formats:         opts.formats,
		Labels:          opts.labels || cfg.Chart.Labels,
		SplitFullCircle: opts.splitFullCircle,
		CacheTTL:        time.Duration(cfg.Cache.TTLHours) * time.Hour,
	})
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(input, opts.output, format, len(opts.formats) > 1)
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("wrote artifact", "path", path, "bytes", len(result.Artifacts[format]), "cached", result.CacheInfo.RenderHits[format])
	}

	p.done(fmt.Sprintf("Rendered %d arcs", result.Stats.ArcCount))
	return nil
}

// readTree loads a tree from a file, or stdin when input is "-".
func readTree(input string) (*tree.Node, error) {
	if input == "-" {
		return tree.Read(os.Stdin)
	}
	return tree.ReadFile(input)
}

// outputPath resolves the destination for one artifact.
// With multiple formats, an explicit output acts as a base path and the
// format becomes the extension.
func outputPath(input, output, format string, multi bool) string {
	if output != "" {
		if multi {
			return output + "." + format
		}
		return output
	}
	base := input
	if base == "-" {
		base = "chart"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + format
}

// buildCache constructs the configured cache backend.
func buildCache(ctx context.Context, cfg Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		dir, err := cfg.cacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		return cache.NewFileCache(dir)
	}
}

func firstNonZero(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
