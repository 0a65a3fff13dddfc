package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"jobads/internal/core/domain"
)

var (
	ErrCompilationNotFound = errors.New("compilation not found")
	ErrAuditDisabled       = errors.New("compilation audit trail is disabled")
)

// CompilationRepository persists the audit trail of compilations. It is an
// outbound port in hexagonal architecture. Implementations must store all
// entries of one compilation atomically.
type CompilationRepository interface {
	// SaveCompilation stores every per-platform entry of one compilation.
	SaveCompilation(ctx context.Context, entries []domain.CompilationEntry) error
	// ListCompilation returns the entries of a compilation ordered by
	// platform. It returns ErrCompilationNotFound when there are none.
	ListCompilation(ctx context.Context, id uuid.UUID) ([]domain.CompilationEntry, error)
}
