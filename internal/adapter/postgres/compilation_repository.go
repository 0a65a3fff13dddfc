package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"jobads/internal/core/domain"
	"jobads/internal/core/port"
)

// CompilationRepository implements port.CompilationRepository using pgxpool
// for PostgreSQL.
type CompilationRepository struct {
	pool *pgxpool.Pool
}

// NewCompilationRepository returns a new repository instance.
func NewCompilationRepository(pool *pgxpool.Pool) *CompilationRepository {
	return &CompilationRepository{pool: pool}
}

// SaveCompilation inserts all entries of one compilation in a single
// transaction.
func (r *CompilationRepository) SaveCompilation(ctx context.Context, entries []domain.CompilationEntry) (err error) {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, e := range entries {
		codes := pq.StringArray(e.UnmappedCodes)
		if codes == nil {
			codes = pq.StringArray{}
		}
		_, err = tx.Exec(ctx, `INSERT INTO compilations
    (id, compilation_id, ad_id, platform, stage, outcome, bundle, failure, unmapped_codes, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			e.ID,
			e.CompilationID,
			e.AdID,
			string(e.Platform),
			string(e.Stage),
			e.Outcome,
			nullJSON(e.Bundle),
			nullJSON(e.Failure),
			codes,
			e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert %s entry: %w", e.Platform, err)
		}
	}
	return nil
}

// ListCompilation returns the entries of one compilation ordered by
// platform.
func (r *CompilationRepository) ListCompilation(ctx context.Context, id uuid.UUID) ([]domain.CompilationEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, compilation_id, ad_id, platform, stage, outcome, bundle, failure, unmapped_codes, created_at
        FROM compilations
        WHERE compilation_id = $1
        ORDER BY platform`, id)
	if err != nil {
		return nil, err
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CompilationEntry, error) {
		var (
			e               domain.CompilationEntry
			platform, stage string
			bundle, failure []byte
		)
		err := row.Scan(
			&e.ID,
			&e.CompilationID,
			&e.AdID,
			&platform,
			&stage,
			&e.Outcome,
			&bundle,
			&failure,
			&e.UnmappedCodes,
			&e.CreatedAt,
		)
		e.Platform = domain.Platform(platform)
		e.Stage = domain.Stage(stage)
		if len(bundle) > 0 {
			e.Bundle = json.RawMessage(bundle)
		}
		if len(failure) > 0 {
			e.Failure = json.RawMessage(failure)
		}
		return e, err
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, port.ErrCompilationNotFound
	}
	return entries, nil
}

// nullJSON maps an empty document to SQL NULL.
func nullJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
