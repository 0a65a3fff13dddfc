package port

import (
	"context"

	"github.com/google/uuid"

	"jobads/internal/core/domain"
)

// CompileUseCase defines the business operations exposed by the compilation
// engine. This interface represents the primary port into the application
// domain.
type CompileUseCase interface {
	// Compile compiles the record for the requested platforms, or for its
	// enabled platforms when none are requested. Per-platform failures are
	// reported inside the results; an error is returned only when nothing
	// could be compiled at all.
	Compile(ctx context.Context, req CompileReq) (*CompileResp, error)

	// Resolve previews how a targeting descriptor maps onto one platform.
	Resolve(ctx context.Context, platform domain.Platform, desc domain.TargetingDescriptor) (domain.ResolvedTargeting, error)

	// History returns the audit trail of a previous compilation.
	History(ctx context.Context, id uuid.UUID) ([]domain.CompilationEntry, error)

	// Taxonomy describes the loaded taxonomy tables.
	Taxonomy(ctx context.Context) TaxonomyInfo

	// ReloadTaxonomy rebuilds the taxonomy tables from their source. On
	// failure the previous tables stay in use.
	ReloadTaxonomy(ctx context.Context) (TaxonomyInfo, error)
}

// CompileReq is the input of one compilation request.
type CompileReq struct {
	Record    domain.AdRecord
	Targeting domain.TargetingDescriptor
	Platforms []domain.Platform
}

// CompileResp carries one result per compiled platform, sorted by platform.
type CompileResp struct {
	CompilationID uuid.UUID
	Results       []domain.Result
}

// TaxonomyInfo summarises a taxonomy snapshot.
type TaxonomyInfo struct {
	Version  string                    `json:"version"`
	Coverage []domain.TaxonomyCoverage `json:"coverage"`
}
