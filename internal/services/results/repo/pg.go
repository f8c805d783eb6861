// Package repo stores OCR results in Postgres and, when configured, ClickHouse
package repo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"bankocr/internal/modkit/repokit"
	"bankocr/internal/platform/store"
	"bankocr/internal/services/results/domain"

	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the Postgres DDL applied by EnsureSchema
func Schema() string { return schemaSQL }

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the Postgres results repository
type Storage interface {
	EnsureSchema(ctx context.Context) error
	WriteBatch(ctx context.Context, xs []domain.ResultWrite) error
	ListByBatch(ctx context.Context, f domain.Filters, after domain.AfterKey, limit int) ([]domain.Result, domain.AfterKey, error)
	CountByDisposition(ctx context.Context, batchID uuid.UUID) ([]domain.DispositionCount, error)
}

const writeCols = 9

// EnsureSchema implements Storage
func (s *pg) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, schemaSQL)
	return err
}

// WriteBatch implements Storage
func (s *pg) WriteBatch(ctx context.Context, xs []domain.ResultWrite) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO ocr_results
		(image_id, batch_id, position, decoded, account, disposition, candidates, line, created_at) VALUES `)

	args := make([]any, 0, len(xs)*writeCols)
	for i, r := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*writeCols + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)

		cands := r.Candidates
		if cands == nil {
			cands = []string{}
		}
		args = append(args,
			r.ImageID, r.BatchID, r.Position, r.Decoded, r.Account,
			r.Disposition, cands, r.Line, r.CreatedAt,
		)
	}
	// a chunk replayed after a failed write is a no-op
	sb.WriteString(` ON CONFLICT (batch_id, position) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// ListByBatch implements Storage
func (s *pg) ListByBatch(
	ctx context.Context,
	f domain.Filters,
	after domain.AfterKey,
	limit int,
) ([]domain.Result, domain.AfterKey, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT image_id, batch_id, position, decoded, account, disposition, candidates, line, created_at
		FROM ocr_results
		WHERE batch_id = ` + arg(f.BatchID) + "\n")
	if after.Set {
		sb.WriteString("  AND position > " + arg(after.Position) + "\n")
	}
	if f.Disposition != "" {
		sb.WriteString("  AND disposition = " + arg(f.Disposition) + "\n")
	}
	sb.WriteString("ORDER BY position\nLIMIT " + arg(limit))

	out, err := store.Many(ctx, s.q, scanResult, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}
	if len(out) == 0 {
		return []domain.Result{}, domain.AfterKey{}, nil
	}
	return out, domain.AfterKey{Position: out[len(out)-1].Position, Set: true}, nil
}

func scanResult(row repokit.Row) (domain.Result, error) {
	var r domain.Result
	err := row.Scan(
		&r.ImageID, &r.BatchID, &r.Position, &r.Decoded, &r.Account,
		&r.Disposition, &r.Candidates, &r.Line, &r.CreatedAt,
	)
	return r, err
}

// CountByDisposition implements Storage
func (s *pg) CountByDisposition(ctx context.Context, batchID uuid.UUID) ([]domain.DispositionCount, error) {
	const q = `
		SELECT disposition, COUNT(*) AS n
		FROM ocr_results
		WHERE batch_id = $1
		GROUP BY disposition
		ORDER BY disposition`
	return store.Many(ctx, s.q, func(row repokit.Row) (domain.DispositionCount, error) {
		var c domain.DispositionCount
		err := row.Scan(&c.Disposition, &c.Count)
		return c, err
	}, q, batchID)
}
