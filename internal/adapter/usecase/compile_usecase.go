package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"jobads/internal/compiler"
	"jobads/internal/core/domain"
	"jobads/internal/core/port"
	"jobads/internal/metrics"
)

// CompileUseCase orchestrates the compilation engine, the audit repository
// and metrics to implement port.CompileUseCase.
type CompileUseCase struct {
	engine  *compiler.Engine
	repo    port.CompilationRepository
	configs map[domain.Platform]domain.PlatformConfig
	metrics *metrics.Collector
	logger  *slog.Logger
	now     func() time.Time
}

// NewCompileUseCase creates a use case. repo and m may be nil: without a
// repository nothing is audited and History reports port.ErrAuditDisabled.
func NewCompileUseCase(
	engine *compiler.Engine,
	repo port.CompilationRepository,
	configs map[domain.Platform]domain.PlatformConfig,
	m *metrics.Collector,
	logger *slog.Logger,
) *CompileUseCase {
	return &CompileUseCase{
		engine:  engine,
		repo:    repo,
		configs: configs,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Compile compiles req.Record for every requested platform and records the
// results in the audit trail when one is configured.
func (u *CompileUseCase) Compile(ctx context.Context, req port.CompileReq) (*port.CompileResp, error) {
	start := u.now()
	results, err := u.engine.CompileAll(ctx, req.Record, req.Targeting, req.Platforms, u.configs)
	if err != nil {
		return nil, err
	}
	if u.metrics != nil {
		u.metrics.ObserveResults(results, u.now().Sub(start))
	}

	id := uuid.New()
	if u.repo != nil {
		entries, err := u.entries(id, req.Record.ID, results)
		if err != nil {
			return nil, err
		}
		if err = u.repo.SaveCompilation(ctx, entries); err != nil {
			u.logger.Error("failed to save compilation",
				slog.String("compilation_id", id.String()),
				slog.Any("error", err))
			return nil, fmt.Errorf("save compilation %s: %w", id, err)
		}
	}

	ok := 0
	for _, r := range results {
		if r.OK() {
			ok++
		}
	}
	u.logger.Info("ad compiled",
		slog.String("compilation_id", id.String()),
		slog.String("ad_id", req.Record.ID),
		slog.Int("platforms", len(results)),
		slog.Int("validated", ok))

	return &port.CompileResp{CompilationID: id, Results: results}, nil
}

func (u *CompileUseCase) entries(id uuid.UUID, adID string, results []domain.Result) ([]domain.CompilationEntry, error) {
	createdAt := u.now().UTC()
	entries := make([]domain.CompilationEntry, 0, len(results))
	for _, r := range results {
		entry := domain.CompilationEntry{
			ID:            uuid.New(),
			CompilationID: id,
			AdID:          adID,
			Platform:      r.Platform,
			Stage:         r.Stage,
			Outcome:       domain.OutcomeOf(r.Err),
			CreatedAt:     createdAt,
		}
		if r.Bundle != nil {
			raw, err := json.Marshal(r.Bundle)
			if err != nil {
				return nil, fmt.Errorf("encode %s bundle: %w", r.Platform, err)
			}
			entry.Bundle = raw
		}
		if f := domain.FailureOf(r.Err); f != nil {
			raw, err := json.Marshal(f)
			if err != nil {
				return nil, fmt.Errorf("encode %s failure: %w", r.Platform, err)
			}
			entry.Failure = raw
		}
		for _, w := range r.Warnings {
			entry.UnmappedCodes = append(entry.UnmappedCodes, string(w.Dimension)+":"+w.Code)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Resolve previews how desc maps onto platform.
func (u *CompileUseCase) Resolve(_ context.Context, platform domain.Platform, desc domain.TargetingDescriptor) (domain.ResolvedTargeting, error) {
	p, err := domain.ParsePlatform(string(platform))
	if err != nil {
		return domain.ResolvedTargeting{}, err
	}
	return u.engine.Resolve(p, desc), nil
}

// History returns the audit entries of compilation id.
func (u *CompileUseCase) History(ctx context.Context, id uuid.UUID) ([]domain.CompilationEntry, error) {
	if u.repo == nil {
		return nil, port.ErrAuditDisabled
	}
	return u.repo.ListCompilation(ctx, id)
}

// Taxonomy describes the taxonomy snapshot currently in use.
func (u *CompileUseCase) Taxonomy(_ context.Context) port.TaxonomyInfo {
	t := u.engine.Tables()
	return port.TaxonomyInfo{Version: t.Version(), Coverage: t.Coverage()}
}

// ReloadTaxonomy swaps in freshly loaded tables. On failure the returned
// info describes the tables still in use.
func (u *CompileUseCase) ReloadTaxonomy(ctx context.Context) (port.TaxonomyInfo, error) {
	_, err := u.engine.ReloadTaxonomy()
	if u.metrics != nil {
		u.metrics.ObserveReload(err)
	}
	return u.Taxonomy(ctx), err
}
