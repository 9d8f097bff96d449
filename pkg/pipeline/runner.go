package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steprepeat/pkg/cache"
	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// The CLI, the editor and the preview server all use it so caching and
// instrumentation live in one place.
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
// If cache is nil, a NullCache is used (caching disabled).
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
//
// Layout errors are returned unwrapped so callers can inspect their code
// and field with the errors package.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	outcome, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	best := outcome.Best()
	result.Outcome = outcome
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Orientation = best.Orientation
	result.Stats.Columns = best.Result.MaxColumns
	result.Stats.Rows = best.Result.MaxRows
	result.Stats.Items = best.Result.Count()

	r.Logger.Info("computed layout",
		"orientation", best.Orientation,
		"columns", best.Result.MaxColumns,
		"rows", best.Result.MaxRows,
		"items", best.Result.Count(),
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, outcome, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"artifacts", len(artifacts),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout snapshots the layout inputs of opts and selects an orientation.
func (r *Runner) Layout(ctx context.Context, opts Options) (layout.Outcome, error) {
	req := opts.Request()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx)

	start := time.Now()
	outcome, err := layout.SelectOrientationRequest(req)
	if err != nil {
		hooks.OnLayoutComplete(ctx, "", 0, time.Since(start), err)
		return layout.Outcome{}, err
	}
	best := outcome.Best()
	hooks.OnLayoutComplete(ctx, best.Orientation.String(), best.Result.Count(), time.Since(start), nil)
	r.Logger.Debug("selected orientation", "inputs", opts.String(), "outcome", outcome.String())
	return outcome, nil
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, o layout.Outcome, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)
	if len(o.Candidates) == 0 {
		return nil, false, fmt.Errorf("outcome has no candidates")
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte)
	allCached := true
	for _, a := range plan(o, opts) {
		key, err := r.artifactKey(o, a, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, fmt.Errorf("cache key for %s: %w", a.name, err)
		}

		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, a.format)
			artifacts[a.name] = data
			continue
		} else if err != nil {
			r.Logger.Warn("cache read failed", "artifact", a.name, "err", err)
		}
		cacheHooks.OnCacheMiss(ctx, a.format)
		allCached = false

		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		data, err := renderOne(o, a, opts)
		if err != nil {
			err = fmt.Errorf("%s: %w", a.name, err)
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[a.name] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "artifact", a.name, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, a.format, len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, o layout.Outcome, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, o, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactKey hashes the data an artifact is drawn from together with the
// render settings that affect its bytes.
func (r *Runner) artifactKey(o layout.Outcome, a artifact, opts Options) (string, error) {
	var src any = a.candidate.Result
	if a.format == FormatJSON {
		src = o
	}
	h, err := cache.HashJSON(src)
	if err != nil {
		return "", err
	}
	return r.Keyer.ArtifactKey(h, opts.ArtifactKeyOpts(a.format, a.candidate.Orientation)), nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
