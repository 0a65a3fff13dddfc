package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"jobads/internal/core/domain"
	"jobads/internal/taxonomy"
	"jobads/internal/validation"
)

// Engine runs the full pipeline (resolve, compile, validate) against the
// current taxonomy snapshot. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	store    *taxonomy.Store
	backends map[domain.Platform]*Backend
	logger   *slog.Logger
	limit    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency bounds how many platforms CompileAll compiles at once.
// n <= 0 means no bound.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithBackends replaces the registered backends.
func WithBackends(b map[domain.Platform]*Backend) Option {
	return func(e *Engine) { e.backends = b }
}

func NewEngine(store *taxonomy.Store, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{store: store, backends: Backends(), logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile compiles rec for a single platform. Exactly one of the result's
// Bundle and Err is set.
func (e *Engine) Compile(rec domain.AdRecord, desc domain.TargetingDescriptor, p domain.Platform, cfg domain.PlatformConfig) domain.Result {
	tables := e.store.Load()
	res := domain.Result{Platform: p, Stage: domain.StageDraft}

	backend, ok := e.backends[p]
	if !ok {
		res.Err = &domain.ConfigurationError{Platform: p, Field: "platform", Reason: "no compiler registered"}
		return res
	}

	rt := tables.Resolve(p, desc)
	res.Warnings = rt.Warnings
	for _, w := range rt.Warnings {
		e.logger.Warn("unmapped taxonomy code",
			slog.String("ad_id", rec.ID),
			slog.String("platform", string(w.Platform)),
			slog.String("dimension", string(w.Dimension)),
			slog.String("code", w.Code))
	}

	bundle, err := New(backend, tables).Compile(rec, rt, cfg)
	if err != nil {
		e.logger.Info("compilation rejected",
			slog.String("ad_id", rec.ID),
			slog.String("platform", string(p)),
			slog.Any("error", err))
		res.Err = err
		return res
	}
	res.Stage = domain.StageCompiled

	if failures := validation.Validate(bundle); len(failures) > 0 {
		e.logger.Info("bundle failed validation",
			slog.String("ad_id", rec.ID),
			slog.String("platform", string(p)),
			slog.Int("failures", len(failures)))
		res.Err = &domain.ValidationError{Platform: p, Failures: failures}
		return res
	}

	res.Stage = domain.StageValidated
	res.Bundle = bundle
	return res
}

// CompileAll compiles rec for every platform in platforms, or for the
// record's enabled platforms when platforms is empty. Results are sorted by
// platform. A failure on one platform never affects the others; the only
// error returned is a cancelled ctx or an empty platform list.
func (e *Engine) CompileAll(
	ctx context.Context,
	rec domain.AdRecord,
	desc domain.TargetingDescriptor,
	platforms []domain.Platform,
	configs map[domain.Platform]domain.PlatformConfig,
) ([]domain.Result, error) {
	if len(platforms) == 0 {
		platforms = rec.EnabledPlatforms
	}
	platforms = uniquePlatforms(platforms)
	if len(platforms) == 0 {
		return nil, fmt.Errorf("ad %q: %w", rec.ID, domain.ErrNoPlatforms)
	}

	results := make([]domain.Result, len(platforms))
	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i, p := range platforms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Compile(rec, desc, p, configs[p])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Platform < results[j].Platform })
	return results, nil
}

// Resolve previews the targeting of desc on platform p.
func (e *Engine) Resolve(p domain.Platform, desc domain.TargetingDescriptor) domain.ResolvedTargeting {
	return e.store.Load().Resolve(p, desc)
}

// Tables returns the current taxonomy snapshot.
func (e *Engine) Tables() *taxonomy.Tables {
	return e.store.Load()
}

// ReloadTaxonomy rebuilds the taxonomy tables and swaps them in.
func (e *Engine) ReloadTaxonomy() (*taxonomy.Tables, error) {
	return e.store.Reload()
}

func uniquePlatforms(in []domain.Platform) []domain.Platform {
	seen := make(map[domain.Platform]struct{}, len(in))
	out := make([]domain.Platform, 0, len(in))
	for _, p := range in {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
