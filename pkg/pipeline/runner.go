package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/observability"
)

// Runner executes the pipeline against a cache. It holds no per-run state
// and may be shared by goroutines running different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer uses
// [cache.NewDefaultKeyer] and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds the layout and renders every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	start := time.Now()
	l, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result := &Result{Layout: l}
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.Labels = len(l.Placements())

	result.LayoutHash, err = LayoutHash(l)
	if err != nil {
		return nil, fmt.Errorf("hash layout: %w", err)
	}
	plot := l.PlotArea()
	logger.Info("computed layout",
		"width", l.Width(),
		"height", l.Height(),
		"plot", fmt.Sprintf("%gx%g", plot.Width, plot.Height),
		"duration", result.Stats.LayoutTime)

	start = time.Now()
	artifacts, hits, err := r.renderCached(ctx, l, result.LayoutHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Layout resolves the options into a layout.
func (r *Runner) Layout(ctx context.Context, opts Options) (*layout.Layout, error) {
	cfg := opts.LayoutConfig()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, cfg.Width, cfg.Height)

	start := time.Now()
	l, err := layout.New(cfg)
	hooks.OnLayoutComplete(ctx, time.Since(start), err)
	return l, err
}

// Render draws l in every requested format, consulting the cache first.
func (r *Runner) Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hash, err := LayoutHash(l)
	if err != nil {
		return nil, err
	}
	artifacts, _, err := r.renderCached(ctx, l, hash, opts)
	return artifacts, err
}

func (r *Runner) renderCached(ctx context.Context, l *layout.Layout, hash string, opts Options) (map[string][]byte, []string, error) {
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	logger := r.logger(opts)

	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			data, ok, err := r.Cache.Get(ctx, key)
			if err != nil {
				logger.Warn("cache read failed", "format", format, "err", err)
			}
			if ok {
				cacheHooks.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			cacheHooks.OnCacheMiss(ctx, "artifact")
		}

		data, err := RenderFormat(l, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, hits, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// layoutState is the content hashed by [LayoutHash]. Geometry is kept as
// formatted numbers so degenerate layouts with NaN or infinite sizes still
// hash.
type layoutState struct {
	Geometry [6]string    `json:"geometry"` // width, height, top, right, bottom, left
	Labels   layout.Labels `json:"labels"`
}

// LayoutHash returns a content hash of the resolved geometry and labels.
func LayoutHash(l *layout.Layout) (string, error) {
	m := l.Margins()
	var state layoutState
	for i, v := range []float64{l.Width(), l.Height(), m.Top, m.Right, m.Bottom, m.Left} {
		state.Geometry[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	state.Labels = l.Labels()
	return cache.HashJSON(state)
}
